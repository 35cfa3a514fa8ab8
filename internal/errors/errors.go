// Package errors formats command failures for the terminal.
package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/littleday/internal/logger"
)

const prefix = "Error: "

// Format renders err for stderr; nil renders as "".
func Format(err error) string {
	if err == nil {
		return ""
	}
	return prefix + err.Error()
}

func Formatf(format string, args ...interface{}) string {
	return prefix + fmt.Sprintf(format, args...)
}

// Fatal reports err and exits with status 1. A nil err is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	exit(err.Error(), Format(err))
}

func Fatalf(format string, args ...interface{}) {
	exit(fmt.Sprintf(format, args...), Formatf(format, args...))
}

func exit(cause, line string) {
	logger.Error("Command failed", "error", cause)
	fmt.Fprintln(os.Stderr, line)
	os.Exit(1)
}

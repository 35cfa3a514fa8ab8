// Package logger holds the process-wide structured logger. Nothing is
// written until Init runs, so library packages can log freely under test.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/littleday/internal/constants"
)

// Rotation limits for the log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

var (
	Logger *log.Logger
	sink   *lumberjack.Logger
)

type Config struct {
	// Debug lowers the level to debug, reports callers and tees to stderr.
	Debug bool
	// ConfigDir is the application directory; logs go to its logs/ child.
	ConfigDir string
}

// Path returns the log file used for configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, "logs", constants.AppName+".log")
}

// Init replaces the global logger. A previous log file is closed first.
func Init(cfg Config) error {
	path := Path(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	if sink != nil {
		_ = sink.Close()
	}
	sink = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	opts := log.Options{
		Level:           log.WarnLevel,
		Prefix:          constants.AppName,
		ReportTimestamp: true,
	}
	var out io.Writer = sink
	if cfg.Debug {
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
		// Report the caller of Debug/Info/..., not emit
		opts.CallerOffset = 2
		out = io.MultiWriter(os.Stderr, sink)
	}

	Logger = log.NewWithOptions(out, opts)
	return nil
}

func emit(level log.Level, msg string, keyvals []interface{}) {
	if Logger == nil {
		return
	}
	Logger.Log(level, msg, keyvals...)
}

func Debug(msg string, keyvals ...interface{}) { emit(log.DebugLevel, msg, keyvals) }

func Info(msg string, keyvals ...interface{}) { emit(log.InfoLevel, msg, keyvals) }

func Warn(msg string, keyvals ...interface{}) { emit(log.WarnLevel, msg, keyvals) }

func Error(msg string, keyvals ...interface{}) { emit(log.ErrorLevel, msg, keyvals) }

// Fatal logs at error level and exits with status 1, initialized or not.
func Fatal(msg string, keyvals ...interface{}) {
	emit(log.ErrorLevel, msg, keyvals)
	os.Exit(1)
}

package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/littleday/internal/cli"
)

type DebugCmd struct {
	DBPath    *DebugDBPathCmd    `cmd:"" help:"Show database path."`
	DumpPlan  *DebugDumpPlanCmd  `cmd:"" help:"Dump plan data as JSON."`
	DumpPrefs *DebugDumpPrefsCmd `cmd:"" help:"Dump preferences as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(map[string]string{
		"path": ctx.Store.GetConfigPath(),
	})
}

type DebugDumpPlanCmd struct {
	Date string `arg:"" help:"Date of the plan to dump (YYYY-MM-DD or 'today')." default:"today"`
}

func (cmd *DebugDumpPlanCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(cmd.Date)
	if err != nil {
		return err
	}
	plan, err := ctx.Store.GetPlan(date)
	if err != nil {
		return fmt.Errorf("failed to get plan: %w", err)
	}
	return printJSON(plan)
}

type DebugDumpPrefsCmd struct{}

func (cmd *DebugDumpPrefsCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}
	return printJSON(prefs)
}

func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

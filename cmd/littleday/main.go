package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/littleday/internal/activities"
	"github.com/julianstephens/littleday/internal/cli"
	"github.com/julianstephens/littleday/internal/cli/backups"
	"github.com/julianstephens/littleday/internal/cli/plans"
	"github.com/julianstephens/littleday/internal/cli/settings"
	"github.com/julianstephens/littleday/internal/cli/system"
	"github.com/julianstephens/littleday/internal/constants"
	"github.com/julianstephens/littleday/internal/errors"
	"github.com/julianstephens/littleday/internal/logger"
	"github.com/julianstephens/littleday/internal/scheduler"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path or PostgreSQL connection string. PostgreSQL credentials must NOT be embedded; use the OS keyring or LITTLEDAY_DB_CONNECTION instead." env:"LITTLEDAY_CONFIG" default:"${default_config}"`
	Catalog string `help:"Optional JSON file replacing the built-in activity catalog." type:"path"`
	Verbose bool   `help:"Log debug output to stderr." env:"LITTLEDAY_DEBUG"`

	Init       system.InitCmd       `cmd:"" help:"Initialize littleday storage."`
	Doctor     system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui        system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Plan       plans.PlanCmd        `cmd:"" help:"Generate the schedule for a day."`
	Day        plans.DayCmd         `cmd:"" help:"Show the schedule for a day."`
	Done       plans.DoneCmd        `cmd:"" help:"Mark a scheduled item as done."`
	Replace    plans.ReplaceCmd     `cmd:"" help:"Swap a bonus activity for another one."`
	Validate   plans.ValidateCmd    `cmd:"" help:"Check saved schedules for conflicts."`
	Parse      system.ParseCmd      `cmd:"" help:"Show how appointment text is understood."`
	Activities system.ActivitiesCmd `cmd:"" help:"List the bonus activity catalog."`
	Debug      system.DebugCmd      `cmd:"" help:"Debug commands for troubleshooting."`
	Prefs      struct {
		Show settings.PrefsShowCmd `cmd:"" help:"Show preferences." default:"1"`
		Set  settings.PrefsSetCmd  `cmd:"" help:"Update preferences."`
		Edit settings.PrefsEditCmd `cmd:"" help:"Edit preferences interactively."`
	} `cmd:"" help:"Manage feeding, nap and task preferences."`
	Plans struct {
		List   plans.PlanListCmd   `cmd:"" help:"List saved schedules." default:"1"`
		Delete plans.PlanDeleteCmd `cmd:"" help:"Delete a saved schedule."`
	} `cmd:"" help:"Manage saved schedules."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Report keyring availability." default:"1"`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

// Commands that manage storage themselves or never touch it.
var skipLoad = map[string]bool{
	"init":       true,
	"parse":      true,
	"activities": true,
	"keyring":    true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily schedule planner for a baby's feeds, naps and activities"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, constants.DefaultConfigFile),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	configDir, err := cli.ExpandPath(filepath.Dir(constants.DefaultConfigPath))
	if err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Verbose, ConfigDir: configDir}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	store, err := cli.OpenStore(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	catalog := activities.DefaultCatalog()
	if CLI.Catalog != "" {
		if catalog, err = activities.LoadCatalog(CLI.Catalog); err != nil {
			errors.Fatal(err)
		}
		logger.Debug("Loaded activity catalog", "path", CLI.Catalog, "activities", catalog.Len())
	}

	appCtx := &cli.Context{
		Store:     store,
		Generator: scheduler.New(activities.NewSelector(catalog, activities.NewScorer(activities.WithMoodBonus()))),
	}

	command := strings.Fields(ctx.Command())
	if len(command) == 0 || !skipLoad[command[0]] {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	logger.Debug("Running command", "command", ctx.Command())
	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/littleday/internal/backup"
	"github.com/julianstephens/littleday/internal/cli"
	"github.com/julianstephens/littleday/internal/keyring"
	"github.com/julianstephens/littleday/internal/utils"
	"github.com/julianstephens/littleday/internal/validation"
)

type schemaReporter interface {
	SchemaVersions() (current, latest int, err error)
}

type DoctorCmd struct{}

type check struct {
	name     string
	run      func(*cli.Context) error
	opensDB  bool
	needsDB  bool
	warnOnly bool
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable, opensDB: true},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Preferences", run: checkPreferences, needsDB: true},
	{name: "Stored plans", run: checkPlans, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "OS keyring", run: checkKeyring, warnOnly: true},
	{name: "Clock/timezone", run: checkClockTimezone, needsDB: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false
	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
			dbReachable = dbReachable || c.opensDB
		case c.warnOnly:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	reporter, ok := ctx.Store.(schemaReporter)
	if !ok {
		return nil
	}
	current, latest, err := reporter.SchemaVersions()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d; run 'littleday init'", current, latest)
	}
	return nil
}

func checkPreferences(ctx *cli.Context) error {
	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}
	for _, ft := range prefs.FeedingTimes {
		if !utils.ValidateClockTime(ft) {
			return fmt.Errorf("feeding time %q cannot be parsed and will be skipped", ft)
		}
	}
	if prefs.BirthDate != "" {
		if _, err := utils.AgeInMonths(prefs.BirthDate, time.Now()); err != nil {
			return err
		}
	}
	return nil
}

func checkPlans(ctx *cli.Context) error {
	plans, err := ctx.Store.ListPlans()
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}
	validator := validation.New()
	for _, p := range plans {
		result := validator.ValidatePlan(p)
		if n := result.Count(validation.ConflictInvalidDateTime); n > 0 {
			return fmt.Errorf("plan %s has %d invalid dates", p.Date, n)
		}
		seen := make(map[string]bool, len(p.Items))
		for _, item := range p.Items {
			if seen[item.ID] {
				return fmt.Errorf("duplicate item ID %s in plan %s", item.ID, p.Date)
			}
			seen[item.ID] = true
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if !ctx.IsSQLite() {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'littleday backup create'")
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if ctx.IsSQLite() {
		return nil
	}
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return err
	}
	if !utils.ValidateTimezone(prefs.Timezone) {
		return fmt.Errorf("configured timezone %q is not recognized", prefs.Timezone)
	}
	return nil
}

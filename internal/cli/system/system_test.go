package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/littleday/internal/activities"
	"github.com/julianstephens/littleday/internal/cli"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/scheduler"
	"github.com/julianstephens/littleday/internal/storage/sqlite"
)

func newContext(t *testing.T, dbPath string) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(dbPath)
	t.Cleanup(func() { _ = store.Close() })
	return &cli.Context{
		Store:     store,
		Generator: scheduler.New(activities.NewSelector(activities.DefaultCatalog(), activities.NewScorer())),
	}
}

func TestInitCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "littleday.db")
	ctx := newContext(t, dbPath)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("database not created: %v", err)
	}
	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		t.Fatalf("failed to get preferences: %v", err)
	}
	if len(prefs.FeedingTimes) == 0 {
		t.Error("expected default feeding times after init")
	}
}

func TestInitCmd_ForceResets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "littleday.db")
	ctx := newContext(t, dbPath)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	prefs := models.DefaultPreferences()
	prefs.NapCount = 5
	if err := ctx.Store.SavePreferences(prefs); err != nil {
		t.Fatalf("failed to save preferences: %v", err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	got, err := ctx.Store.GetPreferences()
	if err != nil {
		t.Fatalf("failed to get preferences: %v", err)
	}
	if got.NapCount == 5 {
		t.Error("preferences survived a forced reset")
	}
}

func TestInitCmd_CopiesFromSource(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "source.db")
	src := sqlite.NewStore(srcPath)
	if err := src.Init(); err != nil {
		t.Fatalf("failed to init source: %v", err)
	}
	prefs := models.DefaultPreferences()
	prefs.NapCount = 3
	if err := src.SavePreferences(prefs); err != nil {
		t.Fatalf("failed to save source preferences: %v", err)
	}
	plan := models.DayPlan{Date: "2026-10-14", Items: []models.ScheduledItem{{ID: "a", Task: "Feeding", Type: models.ItemFeeding}}}
	if err := src.SavePlan(plan); err != nil {
		t.Fatalf("failed to save source plan: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("failed to close source: %v", err)
	}

	ctx := newContext(t, filepath.Join(dir, "dest.db"))
	if err := (&InitCmd{Source: srcPath}).Run(ctx); err != nil {
		t.Fatalf("init --source failed: %v", err)
	}

	got, err := ctx.Store.GetPreferences()
	if err != nil || got.NapCount != 3 {
		t.Errorf("preferences not copied: %+v, %v", got, err)
	}
	if _, err := ctx.Store.GetPlan("2026-10-14"); err != nil {
		t.Errorf("plan not copied: %v", err)
	}
}

func TestInitCmd_ForceWithSameSource(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "littleday.db")
	ctx := newContext(t, dbPath)
	if err := (&InitCmd{Force: true, Source: dbPath}).Run(ctx); err == nil {
		t.Error("expected error when source equals destination")
	}
}

func TestDoctorCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "littleday.db")
	ctx := newContext(t, dbPath)

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("expected failure before init")
	}

	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor failed on a fresh database: %v", err)
	}
}

func TestParseAndActivitiesCmd(t *testing.T) {
	ctx := newContext(t, filepath.Join(t.TempDir(), "unused.db"))

	if err := (&ParseCmd{Text: []string{"doctor", "at", "10am,", "grandma", "visiting", "2-4pm"}}).Run(ctx); err != nil {
		t.Errorf("parse failed: %v", err)
	}
	if err := (&ParseCmd{Text: []string{"nothing planned"}, JSON: true}).Run(ctx); err != nil {
		t.Errorf("parse --json failed: %v", err)
	}

	age := 12
	if err := (&ActivitiesCmd{Category: "motor", Age: &age}).Run(ctx); err != nil {
		t.Errorf("activities failed: %v", err)
	}
	if err := (&ActivitiesCmd{Category: "juggling"}).Run(ctx); err == nil {
		t.Error("expected error for unknown category")
	}
}

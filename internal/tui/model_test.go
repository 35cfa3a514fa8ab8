package tui

import (
	"fmt"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/littleday/internal/activities"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/scheduler"
	"github.com/julianstephens/littleday/internal/storage/sqlite"
)

const testDate = "2026-10-14"

func newTestModel(t *testing.T, withPlan bool) (Model, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	n := 0
	gen := scheduler.New(
		activities.NewSelector(activities.DefaultCatalog(), activities.NewScorer(activities.WithoutNoise())),
		scheduler.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("item-%02d", n)
		}),
	)

	if withPlan {
		survey := models.SurveyContext{EnergyLevel: models.EnergyMedium, StayingHome: true, AgeMonths: 12}
		plan := gen.GeneratePlan(testDate, survey, models.WeatherData{}, models.DefaultPreferences())
		if err := store.SavePlan(plan); err != nil {
			t.Fatalf("failed to save plan: %v", err)
		}
	}
	return NewModel(store, gen, testDate), store
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

func TestNewModelWithoutPlan(t *testing.T) {
	m, _ := newTestModel(t, false)
	if _, ok := m.Plan(); ok {
		t.Fatal("expected no plan")
	}
	m, _ = press(t, m, "x")
	if m.Dirty() {
		t.Error("toggling with no plan should not mark the model dirty")
	}
	if m.View() == "" {
		t.Error("View() should render a placeholder")
	}
}

func TestToggleAndSave(t *testing.T) {
	m, store := newTestModel(t, true)

	m, _ = press(t, m, "x")
	plan, _ := m.Plan()
	if !plan.Items[0].Completed || !m.Dirty() {
		t.Fatal("expected first item completed and unsaved")
	}

	m, _ = press(t, m, "s")
	if m.Dirty() {
		t.Error("expected clean model after save")
	}
	saved, err := store.GetPlan(testDate)
	if err != nil {
		t.Fatalf("failed to get plan: %v", err)
	}
	if !saved.Items[0].Completed {
		t.Error("saved plan does not record completion")
	}
}

func TestReplaceBonusActivity(t *testing.T) {
	m, _ := newTestModel(t, true)
	plan, _ := m.Plan()

	idx := -1
	for i, item := range plan.Items {
		if item.Type == models.ItemBonus {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Fatal("expected a bonus activity")
	}
	original := plan.Items[idx]

	for i := 0; i < idx; i++ {
		m, _ = press(t, m, "j")
	}
	m, _ = press(t, m, "r")

	plan, _ = m.Plan()
	var replaced models.ScheduledItem
	for _, item := range plan.Items {
		if item.ID == original.ID {
			replaced = item
		}
	}
	if replaced.Activity == nil || replaced.Activity.ID == original.Activity.ID {
		t.Errorf("activity not replaced: %+v", replaced.Activity)
	}
	if !m.Dirty() {
		t.Error("replacement should mark the model dirty")
	}
}

func TestReplaceRejectsNonBonus(t *testing.T) {
	m, _ := newTestModel(t, true)
	plan, _ := m.Plan()
	if plan.Items[0].Type == models.ItemBonus {
		t.Skip("first item is a bonus activity")
	}
	m, _ = press(t, m, "r")
	if m.Dirty() {
		t.Error("replacing a non-bonus item should change nothing")
	}
	if m.err == "" {
		t.Error("expected an error message")
	}
}

func TestQuitAsksWhenDirty(t *testing.T) {
	m, _ := newTestModel(t, true)

	m, cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatal("expected quit command on a clean model")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	m, _ = newTestModel(t, true)
	m, _ = press(t, m, "x")
	m, cmd = press(t, m, "q")
	if cmd != nil {
		t.Fatal("first q on a dirty model should not quit")
	}
	_, cmd = press(t, m, "q")
	if cmd == nil {
		t.Fatal("second q should quit")
	}
}

func TestDayNavigation(t *testing.T) {
	m, _ := newTestModel(t, true)

	m, _ = press(t, m, "l")
	if m.Date() != "2026-10-15" {
		t.Errorf("Date() = %s, want 2026-10-15", m.Date())
	}
	if _, ok := m.Plan(); ok {
		t.Error("expected no plan for the next day")
	}

	m, _ = press(t, m, "h")
	if _, ok := m.Plan(); !ok {
		t.Error("expected the plan back after returning")
	}

	m, _ = press(t, m, "x")
	m, _ = press(t, m, "l")
	if m.Date() != testDate {
		t.Error("should not switch days with unsaved changes")
	}
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t, true)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
	if m.View() == "" {
		t.Error("View() returned empty output")
	}
}

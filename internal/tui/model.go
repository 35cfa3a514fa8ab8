// Package tui is the interactive day viewer.
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/littleday/internal/constants"
	"github.com/julianstephens/littleday/internal/logger"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/scheduler"
	"github.com/julianstephens/littleday/internal/storage"
	"github.com/julianstephens/littleday/internal/tui/components/schedule"
	"github.com/julianstephens/littleday/internal/tui/forms"
	"github.com/julianstephens/littleday/internal/utils"
	"github.com/julianstephens/littleday/internal/validation"
)

type SessionState int

const (
	StatePlan SessionState = iota
	StateSurvey
	StateEditPrefs
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 6
)

type Model struct {
	store      storage.Provider
	generator  *scheduler.Generator
	state      SessionState
	keys       KeyMap
	help       help.Model
	schedule   schedule.Model
	form       *huh.Form
	surveyForm *forms.SurveyFormModel
	prefsForm  *forms.PreferencesFormModel
	prefs      models.UserPreferences
	date       string
	dirty      bool
	quitArmed  bool
	status     string
	err        string
	warnings   int
	quitting   bool
	width      int
	height     int
}

// NewModel opens the viewer on date (YYYY-MM-DD).
func NewModel(store storage.Provider, generator *scheduler.Generator, date string) Model {
	prefs, err := store.GetPreferences()
	if err != nil {
		prefs = models.DefaultPreferences()
	}
	models.ApplyDefaultPreferences(&prefs)

	m := Model{
		store:     store,
		generator: generator,
		state:     StatePlan,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		schedule:  schedule.New(defaultWidth, defaultHeight-chromeHeight),
		prefs:     prefs,
		date:      date,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.loadPlan()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Date returns the day being viewed.
func (m Model) Date() string {
	return m.date
}

// Plan returns the plan being viewed, if any.
func (m Model) Plan() (models.DayPlan, bool) {
	if m.schedule.Plan == nil {
		return models.DayPlan{}, false
	}
	return *m.schedule.Plan, true
}

// Dirty reports whether there are unsaved changes.
func (m Model) Dirty() bool {
	return m.dirty
}

func (m *Model) loadPlan() {
	m.schedule.Plan = nil
	m.schedule.Cursor = 0
	m.dirty = false
	m.warnings = 0

	plan, err := m.store.GetPlan(m.date)
	switch {
	case err == nil:
		m.schedule.SetPlan(plan)
		m.revalidate()
	case errors.Is(err, storage.ErrNotFound):
		m.schedule.Render()
	default:
		m.err = "Failed to load plan: " + err.Error()
		logger.Error("Failed to load plan", "date", m.date, "error", err)
	}
}

func (m *Model) revalidate() {
	plan, ok := m.Plan()
	if !ok {
		m.warnings = 0
		return
	}
	result := validation.New().ValidatePlan(plan)
	m.warnings = len(result.Conflicts)
}

func (m *Model) shiftDay(days int) {
	d, err := time.Parse(constants.DateFormat, m.date)
	if err != nil {
		return
	}
	m.date = d.AddDate(0, 0, days).Format(constants.DateFormat)
	m.status = ""
	m.err = ""
	m.loadPlan()
}

func (m *Model) toggleSelected() {
	if m.schedule.Plan == nil {
		return
	}
	i := m.schedule.Cursor
	if i < 0 || i >= len(m.schedule.Plan.Items) {
		return
	}
	m.schedule.Plan.Items[i].Completed = !m.schedule.Plan.Items[i].Completed
	m.dirty = true
	m.schedule.Render()
}

func (m *Model) replaceSelected() {
	item, ok := m.schedule.Selected()
	if !ok {
		return
	}
	plan := m.schedule.Plan
	items, err := m.generator.ReplaceActivity(*plan, item.ID)
	if err != nil {
		m.err = err.Error()
		return
	}
	plan.Items = items
	for i, it := range items {
		if it.ID == item.ID {
			m.schedule.Cursor = i
			m.status = "Replaced with " + it.Task
			break
		}
	}
	m.err = ""
	m.dirty = true
	m.schedule.Render()
	m.revalidate()
}

func (m *Model) save() {
	plan, ok := m.Plan()
	if !ok {
		return
	}
	if err := m.store.SavePlan(plan); err != nil {
		m.err = "Failed to save plan: " + err.Error()
		return
	}
	m.dirty = false
	m.err = ""
	m.status = "Saved"
}

func (m *Model) startSurvey() tea.Cmd {
	survey := models.SurveyContext{EnergyLevel: models.EnergyMedium, StayingHome: true}
	var weather models.WeatherData
	if plan, ok := m.Plan(); ok {
		survey, weather = plan.Survey, plan.Weather
	}
	m.surveyForm = forms.NewSurveyFormModel(survey, weather)
	m.form = forms.NewSurveyForm(m.surveyForm)
	m.state = StateSurvey
	return m.form.Init()
}

// generate builds a new plan for the current day from the survey answers.
func (m *Model) generate() {
	survey := models.SurveyContext{}
	var weather models.WeatherData
	m.surveyForm.Apply(&survey, &weather)

	age, err := utils.BabyAgeMonths(m.prefs.BirthDate, m.prefs.Timezone)
	if err != nil {
		m.err = err.Error()
	}
	survey.AgeMonths = age

	plan := m.generator.GeneratePlan(m.date, survey, weather, m.prefs)
	m.schedule.Cursor = 0
	m.schedule.SetPlan(plan)
	m.dirty = true
	m.status = "Generated a new plan, press s to save"
	m.revalidate()
}

func (m *Model) startPrefs() tea.Cmd {
	m.prefsForm = forms.NewPreferencesFormModel(m.prefs)
	m.form = forms.NewPreferencesForm(m.prefsForm)
	m.state = StateEditPrefs
	return m.form.Init()
}

func (m *Model) savePrefs() {
	prefs, err := m.prefsForm.Preferences()
	if err != nil {
		m.err = err.Error()
		return
	}
	if err := m.store.SavePreferences(prefs); err != nil {
		m.err = "Failed to save preferences: " + err.Error()
		return
	}
	models.ApplyDefaultPreferences(&prefs)
	m.prefs = prefs
	m.err = ""
	m.status = "Preferences saved"
}

// Package forms holds the huh forms shared by the CLI and the TUI.
package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/littleday/internal/constants"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/utils"
)

// PreferencesFormModel is the string-typed state behind the preferences form.
type PreferencesFormModel struct {
	FeedingTimes   string
	NapCount       string
	NapDuration    string
	RecurringTasks string
	BirthDate      string
	Timezone       string
}

func NewPreferencesFormModel(prefs models.UserPreferences) *PreferencesFormModel {
	tasks := make([]string, 0, len(prefs.RecurringTasks))
	for _, t := range prefs.RecurringTasks {
		tasks = append(tasks, t.String())
	}
	return &PreferencesFormModel{
		FeedingTimes:   strings.Join(prefs.FeedingTimes, ", "),
		NapCount:       strconv.Itoa(prefs.NapCount),
		NapDuration:    strconv.Itoa(prefs.NapDurationMinutes),
		RecurringTasks: strings.Join(tasks, ", "),
		BirthDate:      prefs.BirthDate,
		Timezone:       prefs.Timezone,
	}
}

// Preferences converts the form state back into preferences.
func (fm *PreferencesFormModel) Preferences() (models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := ValidateFeedingTimes(fm.FeedingTimes); err != nil {
		return prefs, err
	}
	prefs.FeedingTimes = SplitList(fm.FeedingTimes)

	n, err := nonNegative(fm.NapCount)
	if err != nil {
		return prefs, fmt.Errorf("nap count: %w", err)
	}
	prefs.NapCount = n

	d, err := nonNegative(fm.NapDuration)
	if err != nil {
		return prefs, fmt.Errorf("nap duration: %w", err)
	}
	prefs.NapDurationMinutes = d

	for _, entry := range SplitList(fm.RecurringTasks) {
		prefs.RecurringTasks = append(prefs.RecurringTasks, models.ParseRecurringTask(entry))
	}

	if err := ValidateBirthDate(fm.BirthDate); err != nil {
		return prefs, err
	}
	prefs.BirthDate = strings.TrimSpace(fm.BirthDate)

	if !utils.ValidateTimezone(fm.Timezone) {
		return prefs, fmt.Errorf("invalid timezone %q", fm.Timezone)
	}
	prefs.Timezone = fm.Timezone
	return prefs, nil
}

func NewPreferencesForm(fm *PreferencesFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Feeding times").
				Description("Comma separated, e.g. 7:00 AM, 11:00 AM, 3:00 PM").
				Value(&fm.FeedingTimes).
				Validate(ValidateFeedingTimes),
			huh.NewInput().
				Title("Naps per day").
				Value(&fm.NapCount).
				Validate(func(s string) error {
					_, err := nonNegative(s)
					return err
				}),
			huh.NewInput().
				Title("Nap length (minutes)").
				Value(&fm.NapDuration).
				Validate(func(s string) error {
					_, err := nonNegative(s)
					return err
				}),
			huh.NewInput().
				Title("Recurring tasks").
				Description("Kinds or labels: walk, bath, tummy_time, reading, playtime, or any custom name").
				Value(&fm.RecurringTasks),
			huh.NewInput().
				Title("Birth date (YYYY-MM-DD)").
				Value(&fm.BirthDate).
				Validate(ValidateBirthDate),
			huh.NewInput().
				Title("Timezone (IANA name or 'Local')").
				Description("Examples: Local, UTC, America/New_York, Europe/London").
				Value(&fm.Timezone).
				Validate(func(s string) error {
					if !utils.ValidateTimezone(s) {
						return fmt.Errorf("invalid timezone name")
					}
					return nil
				}),
		),
	)
}

// SurveyFormModel is the state behind the morning survey.
type SurveyFormModel struct {
	Energy       string
	StayingHome  bool
	WantsCrafts  bool
	Moods        []string
	Appointments string
	Rainy        bool
	GoodWeather  bool
}

func NewSurveyFormModel(survey models.SurveyContext, weather models.WeatherData) *SurveyFormModel {
	energy := string(survey.EnergyLevel)
	if energy == "" {
		energy = string(models.EnergyMedium)
	}
	return &SurveyFormModel{
		Energy:       energy,
		StayingHome:  survey.StayingHome,
		WantsCrafts:  survey.WantsCrafts,
		Moods:        append([]string(nil), survey.ActivityMoods...),
		Appointments: survey.AppointmentsText,
		Rainy:        weather.IsRainy,
		GoodWeather:  weather.IsGoodWeather,
	}
}

// Apply copies the answers onto survey and weather; age is left alone.
func (fm *SurveyFormModel) Apply(survey *models.SurveyContext, weather *models.WeatherData) {
	survey.EnergyLevel = models.EnergyLevel(fm.Energy)
	survey.StayingHome = fm.StayingHome
	survey.WantsCrafts = fm.WantsCrafts
	survey.ActivityMoods = append([]string(nil), fm.Moods...)
	survey.AppointmentsText = strings.TrimSpace(fm.Appointments)
	weather.IsRainy = fm.Rainy
	weather.IsGoodWeather = fm.GoodWeather && !fm.Rainy
}

func NewSurveyForm(fm *SurveyFormModel) *huh.Form {
	moods := make([]huh.Option[string], 0, len(models.Categories))
	for _, c := range models.Categories {
		moods = append(moods, huh.NewOption(string(c), string(c)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How much energy today?").
				Options(
					huh.NewOption("Low", string(models.EnergyLow)),
					huh.NewOption("Medium", string(models.EnergyMedium)),
					huh.NewOption("High", string(models.EnergyHigh)),
				).
				Value(&fm.Energy),
			huh.NewConfirm().
				Title("Staying home today?").
				Value(&fm.StayingHome),
			huh.NewConfirm().
				Title("In the mood for crafts?").
				Value(&fm.WantsCrafts),
			huh.NewMultiSelect[string]().
				Title("Activity moods").
				Options(moods...).
				Value(&fm.Moods),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Anything planned?").
				Description(`e.g. "doctor at 10am, grandma visiting 2-4pm"`).
				Value(&fm.Appointments),
			huh.NewConfirm().
				Title("Is it rainy?").
				Value(&fm.Rainy),
			huh.NewConfirm().
				Title("Is it nice out?").
				Value(&fm.GoodWeather),
		),
	)
}

// ValidateFeedingTimes accepts a comma separated list of clock times.
func ValidateFeedingTimes(s string) error {
	for _, ft := range SplitList(s) {
		if !utils.ValidateClockTime(ft) {
			return fmt.Errorf("invalid feeding time %q, use H:MM AM/PM", ft)
		}
	}
	return nil
}

// ValidateBirthDate accepts an empty value or a YYYY-MM-DD date.
func ValidateBirthDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("invalid birth date %q, use YYYY-MM-DD", s)
	}
	return nil
}

// SplitList splits a comma separated list, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func nonNegative(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("must be a whole number")
	}
	if i < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return i, nil
}

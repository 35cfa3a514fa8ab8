package models

import (
	"fmt"
	"strings"

	"github.com/julianstephens/littleday/internal/constants"
)

// MapToPreferences converts a map of key-value pairs to a UserPreferences struct.
func MapToPreferences(data map[string]string) (UserPreferences, error) {
	prefs := UserPreferences{}

	for key, value := range data {
		switch key {
		case constants.SettingFeedingTimes:
			prefs.FeedingTimes = splitList(value)
		case constants.SettingNapCount:
			if _, err := fmt.Sscanf(value, "%d", &prefs.NapCount); err != nil {
				return UserPreferences{}, fmt.Errorf("parsing nap_count: %w", err)
			}
		case constants.SettingNapDurationMin:
			if _, err := fmt.Sscanf(value, "%d", &prefs.NapDurationMinutes); err != nil {
				return UserPreferences{}, fmt.Errorf("parsing nap_duration_min: %w", err)
			}
		case constants.SettingRecurringTasks:
			for _, entry := range splitList(value) {
				prefs.RecurringTasks = append(prefs.RecurringTasks, ParseRecurringTask(entry))
			}
		case constants.SettingBirthDate:
			prefs.BirthDate = value
		case constants.SettingTimezone:
			prefs.Timezone = value
		}
	}
	return prefs, nil
}

// PreferencesToMap converts a UserPreferences struct to a map of key-value pairs.
func PreferencesToMap(prefs UserPreferences) map[string]string {
	tasks := make([]string, 0, len(prefs.RecurringTasks))
	for _, t := range prefs.RecurringTasks {
		tasks = append(tasks, t.String())
	}
	return map[string]string{
		constants.SettingFeedingTimes:   strings.Join(prefs.FeedingTimes, ","),
		constants.SettingNapCount:       fmt.Sprintf("%d", prefs.NapCount),
		constants.SettingNapDurationMin: fmt.Sprintf("%d", prefs.NapDurationMinutes),
		constants.SettingRecurringTasks: strings.Join(tasks, ","),
		constants.SettingBirthDate:      prefs.BirthDate,
		constants.SettingTimezone:       prefs.Timezone,
	}
}

// ApplyDefaultPreferences applies default values to missing preferences.
// A nap count of zero is a valid choice and is left alone.
func ApplyDefaultPreferences(prefs *UserPreferences) {
	if len(prefs.FeedingTimes) == 0 {
		prefs.FeedingTimes = splitList(constants.DefaultFeedingTimes)
	}
	if prefs.NapDurationMinutes == 0 {
		prefs.NapDurationMinutes = constants.DefaultNapDurationMin
	}
	if prefs.Timezone == "" {
		prefs.Timezone = constants.DefaultTimezone
	}
}

// DefaultPreferences returns the preferences written by a fresh init.
func DefaultPreferences() UserPreferences {
	prefs := UserPreferences{
		NapCount: constants.DefaultNapCount,
		RecurringTasks: []RecurringTask{
			{Kind: TaskKindWalk, Label: TaskKindWalk.DefaultLabel()},
			{Kind: TaskKindBath, Label: TaskKindBath.DefaultLabel()},
		},
	}
	ApplyDefaultPreferences(&prefs)
	return prefs
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

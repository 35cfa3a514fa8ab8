package constants

const (
	// Preference keys in the settings table
	SettingFeedingTimes   = "feeding_times"
	SettingNapCount       = "nap_count"
	SettingNapDurationMin = "nap_duration_min"
	SettingRecurringTasks = "recurring_tasks"
	SettingBirthDate      = "birth_date"
	SettingTimezone       = "timezone"

	// Default preference values
	DefaultFeedingTimes   = "7:00 AM,11:00 AM,3:00 PM"
	DefaultNapCount       = 2
	DefaultNapDurationMin = 60
	DefaultTimezone       = "Local" // Use system local timezone by default
)

package models

// UserPreferences is the settings record consumed by schedule generation.
type UserPreferences struct {
	FeedingTimes       []string        `json:"feeding_times"` // "H:MM AM/PM"
	NapCount           int             `json:"nap_count"`
	NapDurationMinutes int             `json:"nap_duration_minutes"`
	RecurringTasks     []RecurringTask `json:"recurring_tasks"`
	BirthDate          string          `json:"birth_date,omitempty"` // YYYY-MM-DD format
	Timezone           string          `json:"timezone"`             // IANA timezone name or "Local"
}

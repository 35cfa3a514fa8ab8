package models

// DayPlan is a generated schedule as persisted by the storage collaborator.
type DayPlan struct {
	Date         string          `json:"date"` // YYYY-MM-DD format
	Survey       SurveyContext   `json:"survey"`
	Weather      WeatherData     `json:"weather"`
	Appointments []Appointment   `json:"appointments"`
	Items        []ScheduledItem `json:"items"`
	CreatedAt    string          `json:"created_at,omitempty"` // RFC3339 timestamp
	UpdatedAt    string          `json:"updated_at,omitempty"` // RFC3339 timestamp
}

// BonusActivityIDs returns the catalog ids of the plan's bonus activities.
func (p DayPlan) BonusActivityIDs() []string {
	var ids []string
	for _, item := range p.Items {
		if item.Type == ItemBonus && item.Activity != nil {
			ids = append(ids, item.Activity.ID)
		}
	}
	return ids
}

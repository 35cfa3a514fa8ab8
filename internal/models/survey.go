package models

// SurveyContext holds the morning survey answers for one generation run.
type SurveyContext struct {
	EnergyLevel      EnergyLevel `json:"energy_level"`
	StayingHome      bool        `json:"staying_home"`
	WantsCrafts      bool        `json:"wants_crafts"`
	ActivityMoods    []string    `json:"activity_moods,omitempty"`
	AppointmentsText string      `json:"appointments_text,omitempty"`
	AgeMonths        int         `json:"age_months"`
}

// WeatherData is provided by the weather collaborator and treated as opaque.
type WeatherData struct {
	IsRainy       bool    `json:"is_rainy"`
	IsGoodWeather bool    `json:"is_good_weather"`
	TemperatureC  float64 `json:"temperature_c,omitempty"`
	Summary       string  `json:"summary,omitempty"`
}

package models

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

type ActivityCategory string

const (
	CategorySensory   ActivityCategory = "sensory"
	CategoryMotor     ActivityCategory = "motor"
	CategoryCognitive ActivityCategory = "cognitive"
	CategorySocial    ActivityCategory = "social"
	CategoryCreative  ActivityCategory = "creative"
)

// Categories lists every activity category in display order.
var Categories = []ActivityCategory{
	CategorySensory,
	CategoryMotor,
	CategoryCognitive,
	CategorySocial,
	CategoryCreative,
}

type WeatherRequirement string

const (
	WeatherGood WeatherRequirement = "good"
	WeatherBad  WeatherRequirement = "bad"
	WeatherAny  WeatherRequirement = "any"
)

// AgeRange is an inclusive range of ages in months.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether months falls inside the range, bounds included.
func (r AgeRange) Contains(months int) bool {
	return months >= r.Min && months <= r.Max
}

// Activity is an entry of the bonus activity catalog. Catalog entries are
// treated as immutable reference data.
type Activity struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	DurationMinutes  int                `json:"duration_minutes"`
	EnergyRequired   EnergyLevel        `json:"energy_required"`
	Indoor           bool               `json:"indoor"`
	Category         ActivityCategory   `json:"category"`
	AgeRange         AgeRange           `json:"age_range"`
	WeatherDependent WeatherRequirement `json:"weather_dependent,omitempty"`
	Tags             []string           `json:"tags,omitempty"`
}

// HasTag reports whether the activity carries the given tag.
func (a Activity) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

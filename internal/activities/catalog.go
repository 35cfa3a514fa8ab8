// Package activities scores and selects the optional bonus activities of a day.
package activities

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/littleday/internal/models"
)

// Catalog is an immutable set of activities. It is safe to share between
// concurrent generation runs.
type Catalog struct {
	activities []models.Activity
	byID       map[string]int
}

// NewCatalog copies the given activities into a catalog. Ids must be unique.
func NewCatalog(list []models.Activity) (*Catalog, error) {
	c := &Catalog{
		activities: make([]models.Activity, 0, len(list)),
		byID:       make(map[string]int, len(list)),
	}
	for _, a := range list {
		if a.ID == "" {
			return nil, fmt.Errorf("activity %q has no id", a.Title)
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate activity id %q", a.ID)
		}
		if a.DurationMinutes <= 0 {
			return nil, fmt.Errorf("activity %q has non-positive duration", a.ID)
		}
		a.Tags = append([]string(nil), a.Tags...)
		c.byID[a.ID] = len(c.activities)
		c.activities = append(c.activities, a)
	}
	return c, nil
}

// LoadCatalog reads a JSON array of activities from path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	var list []models.Activity
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return NewCatalog(list)
}

// All returns a copy of every activity in catalog order.
func (c *Catalog) All() []models.Activity {
	out := make([]models.Activity, len(c.activities))
	for i, a := range c.activities {
		a.Tags = append([]string(nil), a.Tags...)
		out[i] = a
	}
	return out
}

// Get returns the activity with the given id.
func (c *Catalog) Get(id string) (models.Activity, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Activity{}, false
	}
	a := c.activities[i]
	a.Tags = append([]string(nil), a.Tags...)
	return a, true
}

func (c *Catalog) Len() int {
	return len(c.activities)
}

// DefaultCatalog returns the built-in activity catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultActivities)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultActivities = []models.Activity{
	{
		ID: "sensory-bottles", Title: "Sensory bottles", Description: "Shake and watch bottles filled with water, glitter and beads.",
		DurationMinutes: 15, EnergyRequired: models.EnergyLow, Indoor: true, Category: models.CategorySensory,
		AgeRange: models.AgeRange{Min: 3, Max: 24}, Tags: []string{"calm", "visual"},
	},
	{
		ID: "texture-board", Title: "Texture board exploration", Description: "Touch soft, bumpy and crinkly fabrics on a board.",
		DurationMinutes: 10, EnergyRequired: models.EnergyLow, Indoor: true, Category: models.CategorySensory,
		AgeRange: models.AgeRange{Min: 2, Max: 18}, Tags: []string{"calm", "touch"},
	},
	{
		ID: "water-play", Title: "Water play tray", Description: "Splash, pour and scoop in a shallow tray of water.",
		DurationMinutes: 20, EnergyRequired: models.EnergyMedium, Indoor: true, Category: models.CategorySensory,
		AgeRange: models.AgeRange{Min: 6, Max: 36}, Tags: []string{"messy", "water"},
	},
	{
		ID: "garden-explore", Title: "Garden treasure hunt", Description: "Look for leaves, flowers and bugs in the garden.",
		DurationMinutes: 30, EnergyRequired: models.EnergyMedium, Indoor: false, Category: models.CategorySensory,
		AgeRange: models.AgeRange{Min: 9, Max: 48}, WeatherDependent: models.WeatherGood, Tags: []string{"nature", "outdoor"},
	},
	{
		ID: "tummy-mirror", Title: "Mirror play on the mat", Description: "Prop a mirror in front of baby on the play mat.",
		DurationMinutes: 10, EnergyRequired: models.EnergyLow, Indoor: true, Category: models.CategoryMotor,
		AgeRange: models.AgeRange{Min: 0, Max: 9}, Tags: []string{"calm", "floor"},
	},
	{
		ID: "obstacle-course", Title: "Cushion obstacle course", Description: "Crawl and climb over a course of sofa cushions.",
		DurationMinutes: 20, EnergyRequired: models.EnergyHigh, Indoor: true, Category: models.CategoryMotor,
		AgeRange: models.AgeRange{Min: 8, Max: 36}, Tags: []string{"active", "climbing"},
	},
	{
		ID: "dance-party", Title: "Kitchen dance party", Description: "Put on favourite songs and bounce along together.",
		DurationMinutes: 15, EnergyRequired: models.EnergyHigh, Indoor: true, Category: models.CategoryMotor,
		AgeRange: models.AgeRange{Min: 4, Max: 48}, Tags: []string{"active", "music"},
	},
	{
		ID: "playground-swings", Title: "Playground swings and slide", Description: "Baby swings, a small slide and the sandpit.",
		DurationMinutes: 45, EnergyRequired: models.EnergyHigh, Indoor: false, Category: models.CategoryMotor,
		AgeRange: models.AgeRange{Min: 9, Max: 48}, WeatherDependent: models.WeatherGood, Tags: []string{"active", "outdoor", "playground"},
	},
	{
		ID: "ball-rolling", Title: "Ball rolling", Description: "Roll a soft ball back and forth across the floor.",
		DurationMinutes: 15, EnergyRequired: models.EnergyMedium, Indoor: true, Category: models.CategoryMotor,
		AgeRange: models.AgeRange{Min: 6, Max: 30}, Tags: []string{"floor"},
	},
	{
		ID: "peekaboo", Title: "Peekaboo games", Description: "Hide behind your hands or a scarf and reappear.",
		DurationMinutes: 10, EnergyRequired: models.EnergyLow, Indoor: true, Category: models.CategoryCognitive,
		AgeRange: models.AgeRange{Min: 3, Max: 18}, Tags: []string{"calm", "object-permanence"},
	},
	{
		ID: "stacking-cups", Title: "Stacking cups", Description: "Build towers and knock them down again.",
		DurationMinutes: 15, EnergyRequired: models.EnergyLow, Indoor: true, Category: models.CategoryCognitive,
		AgeRange: models.AgeRange{Min: 6, Max: 30}, Tags: []string{"problem-solving"},
	},
	{
		ID: "shape-sorter", Title: "Shape sorter challenge", Description: "Match blocks to the holes of a shape sorter.",
		DurationMinutes: 15, EnergyRequired: models.EnergyLow, Indoor: true, Category: models.CategoryCognitive,
		AgeRange: models.AgeRange{Min: 10, Max: 36}, Tags: []string{"problem-solving"},
	},
	{
		ID: "picture-book", Title: "Lift-the-flap picture books", Description: "Name animals and colours while lifting flaps.",
		DurationMinutes: 15, EnergyRequired: models.EnergyLow, Indoor: true, Category: models.CategoryCognitive,
		AgeRange: models.AgeRange{Min: 4, Max: 36}, Tags: []string{"calm", "language"},
	},
	{
		ID: "library-rhymes", Title: "Library rhyme time", Description: "Songs and rhymes session at the local library.",
		DurationMinutes: 45, EnergyRequired: models.EnergyMedium, Indoor: false, Category: models.CategorySocial,
		AgeRange: models.AgeRange{Min: 0, Max: 48}, WeatherDependent: models.WeatherAny, Tags: []string{"outing", "music", "group"},
	},
	{
		ID: "baby-group-brunch", Title: "Brunch with the baby group", Description: "Meet other parents and babies for an easy brunch.",
		DurationMinutes: 60, EnergyRequired: models.EnergyMedium, Indoor: false, Category: models.CategorySocial,
		AgeRange: models.AgeRange{Min: 0, Max: 36}, WeatherDependent: models.WeatherAny, Tags: []string{"outing", "food", "group"},
	},
	{
		ID: "cafe-visit", Title: "Cafe trip", Description: "A babyccino and people watching at a family friendly cafe.",
		DurationMinutes: 60, EnergyRequired: models.EnergyLow, Indoor: false, Category: models.CategorySocial,
		AgeRange: models.AgeRange{Min: 0, Max: 48}, WeatherDependent: models.WeatherAny, Tags: []string{"outing", "food", "cafe"},
	},
	{
		ID: "video-call", Title: "Video call with family", Description: "Wave and babble at grandparents on a video call.",
		DurationMinutes: 15, EnergyRequired: models.EnergyLow, Indoor: true, Category: models.CategorySocial,
		AgeRange: models.AgeRange{Min: 0, Max: 48}, Tags: []string{"calm", "family"},
	},
	{
		ID: "puppet-show", Title: "Sock puppet show", Description: "Put on a silly show with sock puppets and voices.",
		DurationMinutes: 15, EnergyRequired: models.EnergyMedium, Indoor: true, Category: models.CategorySocial,
		AgeRange: models.AgeRange{Min: 4, Max: 36}, Tags: []string{"language", "giggles"},
	},
	{
		ID: "finger-painting", Title: "Edible finger painting", Description: "Paint with yoghurt and fruit puree on a tray.",
		DurationMinutes: 20, EnergyRequired: models.EnergyMedium, Indoor: true, Category: models.CategoryCreative,
		AgeRange: models.AgeRange{Min: 8, Max: 36}, Tags: []string{"messy", "art"},
	},
	{
		ID: "handprint-art", Title: "Handprint keepsake", Description: "Make a handprint card with washable paint.",
		DurationMinutes: 15, EnergyRequired: models.EnergyLow, Indoor: true, Category: models.CategoryCreative,
		AgeRange: models.AgeRange{Min: 0, Max: 48}, Tags: []string{"messy", "art", "keepsake"},
	},
	{
		ID: "music-makers", Title: "Homemade shakers", Description: "Fill tubs with rice and pasta to make music.",
		DurationMinutes: 20, EnergyRequired: models.EnergyMedium, Indoor: true, Category: models.CategoryCreative,
		AgeRange: models.AgeRange{Min: 6, Max: 36}, Tags: []string{"music"},
	},
	{
		ID: "chalk-drawing", Title: "Sidewalk chalk drawing", Description: "Scribble big chalk pictures on the patio.",
		DurationMinutes: 30, EnergyRequired: models.EnergyMedium, Indoor: false, Category: models.CategoryCreative,
		AgeRange: models.AgeRange{Min: 12, Max: 48}, WeatherDependent: models.WeatherGood, Tags: []string{"art", "outdoor"},
	},
	{
		ID: "picnic-lunch", Title: "Picnic lunch", Description: "Spread a blanket and eat lunch outside.",
		DurationMinutes: 45, EnergyRequired: models.EnergyLow, Indoor: false, Category: models.CategorySensory,
		AgeRange: models.AgeRange{Min: 6, Max: 48}, WeatherDependent: models.WeatherGood, Tags: []string{"food", "outdoor"},
	},
	{
		ID: "bubble-bath-play", Title: "Bath toys play", Description: "Pouring cups and floating toys in the bath.",
		DurationMinutes: 20, EnergyRequired: models.EnergyLow, Indoor: true, Category: models.CategorySensory,
		AgeRange: models.AgeRange{Min: 6, Max: 36}, Tags: []string{"water", "bath"},
	},
	{
		ID: "nature-stroll", Title: "Nature stroll", Description: "Slow stroll pointing out trees, dogs and birds.",
		DurationMinutes: 30, EnergyRequired: models.EnergyLow, Indoor: false, Category: models.CategorySensory,
		AgeRange: models.AgeRange{Min: 0, Max: 48}, WeatherDependent: models.WeatherGood, Tags: []string{"outdoor", "walk"},
	},
}

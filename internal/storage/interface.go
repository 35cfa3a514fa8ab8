package storage

import (
	"errors"

	"github.com/julianstephens/littleday/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Preferences
	GetPreferences() (models.UserPreferences, error)
	SavePreferences(models.UserPreferences) error

	// Plans
	SavePlan(models.DayPlan) error
	GetPlan(date string) (models.DayPlan, error)
	DeletePlan(date string) error
	// ListPlans returns every stored plan, newest date first.
	ListPlans() ([]models.DayPlan, error)

	// Utils
	GetConfigPath() string
}

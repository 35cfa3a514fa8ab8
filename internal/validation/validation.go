package validation

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/littleday/internal/activities"
	"github.com/julianstephens/littleday/internal/constants"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictOverlappingItems  ConflictType = "overlapping_items"
	ConflictExceedsDayEnd     ConflictType = "exceeds_day_end"
	ConflictFoodAfterCutoff   ConflictType = "food_after_cutoff"
	ConflictFallbackPlacement ConflictType = "fallback_placement"
	ConflictInvalidDateTime   ConflictType = "invalid_datetime"
)

// Conflict represents a detected problem in a schedule
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	Items       []string // Task names involved
	TimeRange   string   // Human-readable time range (if applicable)
	ItemIDs     []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Count returns the number of conflicts of the given type
func (vr *ValidationResult) Count(kind ConflictType) int {
	n := 0
	for _, c := range vr.Conflicts {
		if c.Type == kind {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks generated schedules
type Validator struct {
	boundary int
}

// New creates a new Validator using the standard day-end boundary
func New() *Validator {
	return &Validator{boundary: constants.DayEndMinutes}
}

// ValidateSchedule checks items with a default Validator.
func ValidateSchedule(items []models.ScheduledItem) ValidationResult {
	return New().ValidateSchedule(items)
}

// ValidatePlan checks a stored plan, including its date.
func (v *Validator) ValidatePlan(plan models.DayPlan) ValidationResult {
	if _, err := time.Parse(constants.DateFormat, plan.Date); err != nil {
		return ValidationResult{Conflicts: []Conflict{{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Invalid plan date: %s", plan.Date),
			Date:        plan.Date,
		}}}
	}

	result := v.ValidateSchedule(plan.Items)
	for i := range result.Conflicts {
		result.Conflicts[i].Date = plan.Date
		result.Conflicts[i].Description = plan.Date + ": " + result.Conflicts[i].Description
	}
	return result
}

// ValidateSchedule checks items for overlaps, boundary violations, food
// venues past the cutoff, and fallback placements
func (v *Validator) ValidateSchedule(items []models.ScheduledItem) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	for _, item := range items {
		iv, timed := item.Interval()

		if item.Overlap {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictFallbackPlacement,
				Description: fmt.Sprintf("\"%s\" had no free slot and was kept at %s", item.Task, item.SuggestedTime),
				Items:       []string{item.Task},
				TimeRange:   formatRange(iv),
				ItemIDs:     []string{item.ID},
			})
		}

		if !timed {
			continue
		}

		if boundBy(item) && iv.End > v.boundary {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictExceedsDayEnd,
				Description: fmt.Sprintf("\"%s\" (%s) ends after %s",
					item.Task, formatRange(iv), utils.ToTimeString(v.boundary)),
				Items:     []string{item.Task},
				TimeRange: formatRange(iv),
				ItemIDs:   []string{item.ID},
			})
		}

		if item.Activity != nil && activities.EndsAfterFoodCutoff(*item.Activity, item.StartMinutes) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictFoodAfterCutoff,
				Description: fmt.Sprintf("\"%s\" (%s) runs past %s",
					item.Task, formatRange(iv), utils.ToTimeString(constants.FoodVenueCutoffMinutes)),
				Items:     []string{item.Task},
				TimeRange: formatRange(iv),
				ItemIDs:   []string{item.ID},
			})
		}
	}

	// O(n²) is fine for a single day
	timed := make([]models.ScheduledItem, 0, len(items))
	for _, item := range items {
		if _, ok := item.Interval(); ok && !item.CanOverlap {
			timed = append(timed, item)
		}
	}
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].StartMinutes < timed[j].StartMinutes
	})

	for i := 0; i < len(timed); i++ {
		a, _ := timed[i].Interval()
		for j := i + 1; j < len(timed); j++ {
			b, _ := timed[j].Interval()
			if b.Start >= a.End {
				break
			}
			if !a.Overlaps(b) {
				continue
			}
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictOverlappingItems,
				Description: fmt.Sprintf("%s \"%s\" overlaps \"%s\"",
					formatRange(a), timed[i].Task, timed[j].Task),
				Items:     []string{timed[i].Task, timed[j].Task},
				TimeRange: formatRange(a),
				ItemIDs:   []string{timed[i].ID, timed[j].ID},
			})
		}
	}

	return result
}

// boundBy reports whether the item must end by the day-end boundary. Feeds
// and boundary-exempt tasks are not.
func boundBy(item models.ScheduledItem) bool {
	switch item.Type {
	case models.ItemFeeding:
		return false
	case models.ItemRecurring:
		return !item.Kind.Defaults().IgnoresBoundary
	}
	return true
}

func formatRange(iv models.Interval) string {
	if iv.End <= iv.Start {
		return ""
	}
	return fmt.Sprintf("%s-%s", utils.ToTimeString(iv.Start), utils.ToTimeString(iv.End))
}

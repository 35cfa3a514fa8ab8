package activities

import (
	"regexp"
	"sort"
	"strings"

	"github.com/julianstephens/littleday/internal/constants"
	"github.com/julianstephens/littleday/internal/logger"
	"github.com/julianstephens/littleday/internal/models"
)

var (
	// Walks and baths are covered by recurring tasks.
	recurringOverlapPattern = regexp.MustCompile(`(?i)\b(walk\w*|stroll\w*|bath\w*)\b`)
	foodVenuePattern        = regexp.MustCompile(`(?i)(caf[eé]|coffee|brunch|lunch)`)
)

// CoversRecurringTask reports whether the activity duplicates a recurring task.
func CoversRecurringTask(a models.Activity) bool {
	if recurringOverlapPattern.MatchString(a.Title) {
		return true
	}
	for _, tag := range a.Tags {
		if recurringOverlapPattern.MatchString(tag) {
			return true
		}
	}
	return false
}

// IsFoodVenue reports whether the activity is a cafe or meal outing.
func IsFoodVenue(a models.Activity) bool {
	if foodVenuePattern.MatchString(a.ID) || foodVenuePattern.MatchString(a.Title) {
		return true
	}
	for _, tag := range a.Tags {
		if foodVenuePattern.MatchString(tag) {
			return true
		}
	}
	return false
}

// EndsAfterFoodCutoff reports whether a food venue activity starting at
// start would run past 3:00 PM. Other activities always report false.
func EndsAfterFoodCutoff(a models.Activity, start int) bool {
	return IsFoodVenue(a) && start+a.DurationMinutes > constants.FoodVenueCutoffMinutes
}

// Selector picks bonus activities from a catalog.
type Selector struct {
	catalog *Catalog
	scorer  *Scorer
}

func NewSelector(catalog *Catalog, scorer *Scorer) *Selector {
	if scorer == nil {
		scorer = NewScorer()
	}
	return &Selector{
		catalog: catalog,
		scorer:  scorer,
	}
}

// Catalog returns the selector's catalog.
func (s *Selector) Catalog() *Catalog {
	return s.catalog
}

type scored struct {
	activity models.Activity
	score    float64
}

// rank scores every eligible activity and returns those with a positive
// score, best first.
func (s *Selector) rank(ctx Context, excluded map[string]bool) []scored {
	var ranked []scored
	for _, a := range s.catalog.All() {
		if excluded[a.ID] || CoversRecurringTask(a) {
			continue
		}
		if score := s.scorer.Score(a, ctx); score > 0 {
			ranked = append(ranked, scored{activity: a, score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

// SelectBonusActivities returns up to count activities, preferring one per
// category before repeating a category. When slotTimes is given, slotTimes[i]
// is the planned start of the i-th selected activity and food venue
// activities that would end after 3:00 PM are skipped for that slot.
func (s *Selector) SelectBonusActivities(survey models.SurveyContext, weather models.WeatherData, count int, slotTimes []int) []models.Activity {
	return s.SelectFor(NewContext(survey, weather), count, slotTimes)
}

// SelectFor is SelectBonusActivities over a prepared scoring context.
func (s *Selector) SelectFor(ctx Context, count int, slotTimes []int) []models.Activity {
	if count <= 0 {
		return nil
	}

	ranked := s.rank(ctx, nil)
	fits := func(a models.Activity, slot int) bool {
		if slot >= len(slotTimes) {
			return true
		}
		return !EndsAfterFoodCutoff(a, slotTimes[slot])
	}

	selected := make([]models.Activity, 0, count)
	used := make(map[string]bool)
	seenCategory := make(map[models.ActivityCategory]bool)

	for _, c := range ranked {
		if len(selected) >= count {
			break
		}
		if seenCategory[c.activity.Category] || !fits(c.activity, len(selected)) {
			continue
		}
		selected = append(selected, c.activity)
		used[c.activity.ID] = true
		seenCategory[c.activity.Category] = true
	}

	for _, c := range ranked {
		if len(selected) >= count {
			break
		}
		if used[c.activity.ID] || !fits(c.activity, len(selected)) {
			continue
		}
		selected = append(selected, c.activity)
		used[c.activity.ID] = true
	}

	if len(selected) < count {
		logger.Debug("Fewer bonus activities than requested", "requested", count, "selected", len(selected), "candidates", len(ranked))
	}
	return selected
}

// GetReplacementActivity returns the best eligible activity that is not in
// excludedIDs. When slotTime is non-nil the food venue cutoff is applied
// against it. The boolean is false when nothing qualifies.
func (s *Selector) GetReplacementActivity(survey models.SurveyContext, weather models.WeatherData, excludedIDs []string, slotTime *int) (models.Activity, bool) {
	return s.ReplacementFor(NewContext(survey, weather), excludedIDs, slotTime)
}

// ReplacementFor is GetReplacementActivity over a prepared scoring context.
func (s *Selector) ReplacementFor(ctx Context, excludedIDs []string, slotTime *int) (models.Activity, bool) {
	excluded := make(map[string]bool, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[strings.TrimSpace(id)] = true
	}

	for _, c := range s.rank(ctx, excluded) {
		if slotTime != nil && EndsAfterFoodCutoff(c.activity, *slotTime) {
			continue
		}
		return c.activity, true
	}
	return models.Activity{}, false
}

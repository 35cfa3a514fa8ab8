package scheduler

import (
	"errors"

	"github.com/julianstephens/littleday/internal/activities"
	"github.com/julianstephens/littleday/internal/allocator"
	"github.com/julianstephens/littleday/internal/models"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrNotBonus      = errors.New("only bonus activities can be replaced")
	ErrNoReplacement = errors.New("no replacement activity available")
)

// ReplaceActivity swaps the bonus activity with id itemID for the best
// activity not already on the plan. The replacement is placed around the
// plan's other items and timed appointments; an item that sat inside the
// visit window may stay there. The plan is not modified.
func (g *Generator) ReplaceActivity(plan models.DayPlan, itemID string) ([]models.ScheduledItem, error) {
	items := plan.Items
	idx := -1
	for i, item := range items {
		if item.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	old := items[idx]
	if old.Type != models.ItemBonus {
		return nil, ErrNotBonus
	}

	var excluded []string
	for _, item := range items {
		if item.Activity != nil {
			excluded = append(excluded, item.Activity.ID)
		}
	}

	ctx := activities.ContextFor(plan.Survey, plan.Weather, plan.Appointments)
	slot := old.StartMinutes
	next, ok := g.selector.ReplacementFor(ctx, excluded, &slot)
	if !ok {
		return nil, ErrNoReplacement
	}

	day := allocator.New()
	for i, item := range items {
		if i == idx {
			continue
		}
		if iv, ok := item.Interval(); ok {
			day.OccupyInterval(iv)
		}
	}
	for _, appt := range plan.Appointments {
		if iv, ok := appt.Interval(); ok {
			day.OccupyInterval(iv)
		}
	}

	var window *models.Interval
	if visit := visitWindow(plan.Appointments); visit != nil && visit.Start <= slot && slot < visit.End {
		window = visit
	}

	picker := &bonusPicker{selector: g.selector, ctx: ctx, excluded: append(excluded, next.ID)}
	placed, ok := g.placeActivity(day, next, slot, window, picker)
	if !ok {
		return nil, ErrNoReplacement
	}
	placed.ID = old.ID

	out := make([]models.ScheduledItem, len(items))
	copy(out, items)
	out[idx] = placed
	SortItems(out)
	return out, nil
}

package plans

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/littleday/internal/cli"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/scheduler"
)

var ErrAmbiguousItem = errors.New("item reference matches more than one item")

type ReplaceCmd struct {
	Item string `arg:"" help:"Bonus item id, id prefix, or 1-based position in the day."`
	Date string `help:"Date of the plan (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ReplaceCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	plan, err := ctx.Store.GetPlan(date)
	if err != nil {
		return fmt.Errorf("failed to load plan for %s: %w", date, err)
	}

	idx, err := FindItem(plan.Items, c.Item)
	if err != nil {
		return err
	}
	old := plan.Items[idx]

	items, err := ctx.Generator.ReplaceActivity(plan, old.ID)
	if err != nil {
		if errors.Is(err, scheduler.ErrNoReplacement) {
			return fmt.Errorf("no other activity fits %q today", old.Task)
		}
		return err
	}
	plan.Items = items

	if err := ctx.Store.SavePlan(plan); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	for _, item := range items {
		if item.ID == old.ID {
			fmt.Printf("Replaced %q with %q at %s\n", old.Task, item.Task, item.SuggestedTime)
			break
		}
	}
	return nil
}

// FindItem resolves ref to an index into items. A ref is a full id, a
// unique id prefix, or a 1-based position.
func FindItem(items []models.ScheduledItem, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, scheduler.ErrItemNotFound
	}
	for i, item := range items {
		if item.ID == ref {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(items) {
			return -1, fmt.Errorf("position %d out of range (1-%d): %w", n, len(items), scheduler.ErrItemNotFound)
		}
		return n - 1, nil
	}

	found := -1
	for i, item := range items {
		if strings.HasPrefix(item.ID, ref) {
			if found >= 0 {
				return -1, fmt.Errorf("%q: %w", ref, ErrAmbiguousItem)
			}
			found = i
		}
	}
	if found < 0 {
		return -1, fmt.Errorf("%q: %w", ref, scheduler.ErrItemNotFound)
	}
	return found, nil
}

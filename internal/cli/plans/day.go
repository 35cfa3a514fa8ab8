package plans

import (
	"errors"
	"fmt"

	"github.com/julianstephens/littleday/internal/cli"
	"github.com/julianstephens/littleday/internal/storage"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	plan, err := ctx.Store.GetPlan(date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no plan found for %s; run 'littleday plan %s' first", date, c.Date)
		}
		return err
	}

	cli.PrintPlan("Plan for", plan)
	return nil
}

type PlanListCmd struct{}

func (c *PlanListCmd) Run(ctx *cli.Context) error {
	plans, err := ctx.Store.ListPlans()
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}
	if len(plans) == 0 {
		fmt.Println("No plans found.")
		return nil
	}

	for _, p := range plans {
		done := 0
		for _, item := range p.Items {
			if item.Completed {
				done++
			}
		}
		fmt.Printf("  %s  %2d items  %2d done  energy %-6s  %d appointments\n",
			p.Date, len(p.Items), done, p.Survey.EnergyLevel, len(p.Appointments))
	}
	return nil
}

type PlanDeleteCmd struct {
	Date string `arg:"" help:"Date of the plan to delete (YYYY-MM-DD or 'today')."`
}

func (c *PlanDeleteCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeletePlan(date); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no plan found for %s", date)
		}
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	fmt.Printf("Deleted plan for %s\n", date)
	return nil
}

type DoneCmd struct {
	Item string `arg:"" help:"Item id, id prefix, or 1-based position in the day."`
	Date string `help:"Date of the plan (YYYY-MM-DD or 'today')." default:"today"`
	Undo bool   `help:"Mark the item as not done."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
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
	plan.Items[idx].Completed = !c.Undo

	if err := ctx.Store.SavePlan(plan); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	state := "done"
	if c.Undo {
		state = "not done"
	}
	fmt.Printf("Marked %q as %s\n", plan.Items[idx].Task, state)
	return nil
}

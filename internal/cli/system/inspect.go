package system

import (
	"fmt"
	"strings"

	"github.com/julianstephens/littleday/internal/cli"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/parser"
	"github.com/julianstephens/littleday/internal/utils"
)

// ParseCmd shows how appointment text is understood.
type ParseCmd struct {
	Text []string `arg:"" help:"Appointment text, e.g. 'doctor at 10am, grandma visiting 2-4pm'."`
	JSON bool     `help:"Print the parsed appointments as JSON."`
}

func (cmd *ParseCmd) Run(ctx *cli.Context) error {
	appointments := parser.ParseAppointments(strings.Join(cmd.Text, " "))
	if cmd.JSON {
		return printJSON(appointments)
	}
	if len(appointments) == 0 {
		fmt.Println("No appointments found.")
		return nil
	}
	for _, a := range appointments {
		when := "no time"
		if iv, ok := a.Interval(); ok {
			when = fmt.Sprintf("%s-%s", utils.ToTimeString(iv.Start), utils.ToTimeString(iv.End))
		}
		line := fmt.Sprintf("  %-12s %-20s %s", a.Type, when, a.Description)
		if a.FulfillsTask != "" {
			line += fmt.Sprintf("  (covers %s)", a.FulfillsTask)
		}
		fmt.Println(line)
	}
	return nil
}

// ActivitiesCmd lists the bonus activity catalog.
type ActivitiesCmd struct {
	Category string `help:"Only show one category (sensory, motor, cognitive, social, creative)."`
	Age      *int   `help:"Only show activities suitable for this age in months."`
	JSON     bool   `help:"Print the catalog as JSON."`
}

func (cmd *ActivitiesCmd) Run(ctx *cli.Context) error {
	if cmd.Category != "" && !isCategory(cmd.Category) {
		return fmt.Errorf("unknown category %q", cmd.Category)
	}

	var list []models.Activity
	for _, a := range ctx.Generator.Selector().Catalog().All() {
		if cmd.Category != "" && string(a.Category) != cmd.Category {
			continue
		}
		if cmd.Age != nil && !a.AgeRange.Contains(*cmd.Age) {
			continue
		}
		list = append(list, a)
	}

	if cmd.JSON {
		return printJSON(list)
	}
	fmt.Printf("%d activities:\n\n", len(list))
	for _, a := range list {
		place := "outdoor"
		if a.Indoor {
			place = "indoor"
		}
		fmt.Printf("  %-22s %-9s %-7s %3d min  %2d-%2d mo  %s\n",
			a.ID, a.Category, place, a.DurationMinutes, a.AgeRange.Min, a.AgeRange.Max, a.Title)
	}
	return nil
}

func isCategory(s string) bool {
	for _, c := range models.Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

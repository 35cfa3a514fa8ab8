package settings

import (
	"fmt"
	"strings"

	"github.com/julianstephens/littleday/internal/cli"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/tui/forms"
	"github.com/julianstephens/littleday/internal/utils"
)

type PrefsShowCmd struct{}

func (c *PrefsShowCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Preferences()
	if err != nil {
		return err
	}

	fmt.Println("Current Preferences:")
	fmt.Printf("  Feeding Times:   %s\n", strings.Join(prefs.FeedingTimes, ", "))
	fmt.Printf("  Naps:            %d x %d min\n", prefs.NapCount, prefs.NapDurationMinutes)
	fmt.Printf("  Birth Date:      %s\n", valueOrUnset(prefs.BirthDate))
	fmt.Printf("  Timezone:        %s\n", prefs.Timezone)
	fmt.Println("\nRecurring Tasks:")
	if len(prefs.RecurringTasks) == 0 {
		fmt.Println("  (none)")
	}
	for _, t := range prefs.RecurringTasks {
		d := t.Kind.Defaults()
		fmt.Printf("  %-24s %-10s %s, %d min\n", t.DisplayLabel(), t.Kind, utils.ToTimeString(d.PreferredStart), d.DurationMin)
	}
	return nil
}

type PrefsSetCmd struct {
	FeedingTimes   []string `help:"Feeding times, e.g. '7:00 AM,11:00 AM'." sep:","`
	NapCount       *int     `help:"Number of naps per day."`
	NapDuration    *int     `help:"Length of each nap in minutes."`
	RecurringTasks []string `help:"Recurring tasks by kind or label, e.g. 'walk,bath,Sing songs'." sep:","`
	ClearTasks     bool     `help:"Remove all recurring tasks."`
	BirthDate      *string  `help:"Baby's birth date (YYYY-MM-DD)."`
	Timezone       *string  `help:"IANA timezone name or 'Local'."`
}

func (c *PrefsSetCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Preferences()
	if err != nil {
		return err
	}

	updated, err := c.apply(&prefs)
	if err != nil {
		return err
	}
	if !updated {
		fmt.Println("No changes specified. Use 'littleday prefs show' to view preferences or flags to update them.")
		return nil
	}

	if err := ctx.Store.SavePreferences(prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	fmt.Println("Preferences updated successfully.")
	return nil
}

func (c *PrefsSetCmd) apply(prefs *models.UserPreferences) (bool, error) {
	updated := false
	if len(c.FeedingTimes) > 0 {
		if err := forms.ValidateFeedingTimes(strings.Join(c.FeedingTimes, ",")); err != nil {
			return false, err
		}
		prefs.FeedingTimes = forms.SplitList(strings.Join(c.FeedingTimes, ","))
		updated = true
	}
	if c.NapCount != nil {
		if *c.NapCount < 0 {
			return false, fmt.Errorf("nap count must not be negative")
		}
		prefs.NapCount = *c.NapCount
		updated = true
	}
	if c.NapDuration != nil {
		if *c.NapDuration <= 0 {
			return false, fmt.Errorf("nap duration must be positive")
		}
		prefs.NapDurationMinutes = *c.NapDuration
		updated = true
	}
	if c.ClearTasks {
		prefs.RecurringTasks = nil
		updated = true
	}
	if len(c.RecurringTasks) > 0 {
		prefs.RecurringTasks = nil
		for _, entry := range c.RecurringTasks {
			if entry = strings.TrimSpace(entry); entry != "" {
				prefs.RecurringTasks = append(prefs.RecurringTasks, models.ParseRecurringTask(entry))
			}
		}
		updated = true
	}
	if c.BirthDate != nil {
		if err := forms.ValidateBirthDate(*c.BirthDate); err != nil {
			return false, err
		}
		prefs.BirthDate = strings.TrimSpace(*c.BirthDate)
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return false, fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
		prefs.Timezone = *c.Timezone
		updated = true
	}
	return updated, nil
}

type PrefsEditCmd struct{}

func (c *PrefsEditCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Preferences()
	if err != nil {
		return err
	}

	fm := forms.NewPreferencesFormModel(prefs)
	if err := forms.NewPreferencesForm(fm).Run(); err != nil {
		return fmt.Errorf("preferences form: %w", err)
	}

	updated, err := fm.Preferences()
	if err != nil {
		return err
	}
	if err := ctx.Store.SavePreferences(updated); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	fmt.Println("Preferences updated successfully.")
	return nil
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

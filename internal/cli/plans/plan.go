package plans

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/littleday/internal/cli"
	"github.com/julianstephens/littleday/internal/logger"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/storage"
	"github.com/julianstephens/littleday/internal/tui/forms"
	"github.com/julianstephens/littleday/internal/utils"
)

type PlanCmd struct {
	Date         string   `arg:"" optional:"" help:"Date to plan (YYYY-MM-DD or 'today')." default:"today"`
	Energy       string   `help:"Energy level today." enum:"low,medium,high" default:"medium"`
	Home         bool     `help:"Staying home today." default:"true" negatable:""`
	Crafts       bool     `help:"In the mood for crafts."`
	Moods        []string `help:"Preferred activity categories or tags." sep:","`
	Appointments string   `help:"Free-text appointments, e.g. 'doctor at 10am, grandma visiting 2-4pm'." short:"a"`
	Rainy        bool     `help:"It is raining."`
	GoodWeather  bool     `help:"The weather is nice." name:"good-weather"`
	Age          *int     `help:"Age in months; derived from the stored birth date when omitted."`
	Interactive  bool     `help:"Answer the morning survey in a form." short:"i"`
	Yes          bool     `help:"Replace an existing plan without asking." short:"y"`
}

func (c *PlanCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Preferences()
	if err != nil {
		return err
	}

	date, err := utils.ResolveDate(c.Date, prefs.Timezone)
	if err != nil {
		return err
	}
	survey, weather, err := c.inputs(prefs)
	if err != nil {
		return err
	}
	if c.Interactive {
		fm := forms.NewSurveyFormModel(survey, weather)
		if err := forms.NewSurveyForm(fm).Run(); err != nil {
			return fmt.Errorf("survey form: %w", err)
		}
		fm.Apply(&survey, &weather)
	}

	existing, err := ctx.Store.GetPlan(date)
	switch {
	case err == nil && len(existing.Items) > 0 && !c.Yes:
		replace := false
		confirm := huh.NewConfirm().
			Title(fmt.Sprintf("A plan already exists for %s. Replace it?", date)).
			Value(&replace)
		if err := confirm.Run(); err != nil {
			return err
		}
		if !replace {
			fmt.Println("Plan generation cancelled.")
			return nil
		}
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to check existing plan: %w", err)
	}

	// Perform automatic backup before the store is written
	ctx.PerformAutomaticBackup()

	plan := ctx.Generator.GeneratePlan(date, survey, weather, prefs)
	if err := ctx.Store.SavePlan(plan); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	cli.PrintPlan("Plan for", plan)
	fmt.Println("\nPlan saved.")
	return nil
}

func (c *PlanCmd) inputs(prefs models.UserPreferences) (models.SurveyContext, models.WeatherData, error) {
	survey := models.SurveyContext{
		EnergyLevel:      models.EnergyLevel(c.Energy),
		StayingHome:      c.Home,
		WantsCrafts:      c.Crafts,
		ActivityMoods:    c.Moods,
		AppointmentsText: c.Appointments,
	}
	if survey.EnergyLevel == "" {
		survey.EnergyLevel = models.EnergyMedium
	}

	switch {
	case c.Age != nil:
		if *c.Age < 0 {
			return survey, models.WeatherData{}, fmt.Errorf("age must not be negative")
		}
		survey.AgeMonths = *c.Age
	case prefs.BirthDate != "":
		months, err := utils.BabyAgeMonths(prefs.BirthDate, prefs.Timezone)
		if err != nil {
			return survey, models.WeatherData{}, err
		}
		survey.AgeMonths = months
	default:
		logger.Debug("No birth date configured, assuming newborn")
	}

	weather := models.WeatherData{
		IsRainy:       c.Rainy,
		IsGoodWeather: c.GoodWeather && !c.Rainy,
	}
	return survey, weather, nil
}

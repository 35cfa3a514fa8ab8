package plans

import (
	"errors"
	"fmt"

	"github.com/julianstephens/littleday/internal/cli"
	"github.com/julianstephens/littleday/internal/storage"
	"github.com/julianstephens/littleday/internal/validation"
)

type ValidateCmd struct {
	Date string `arg:"" optional:"" help:"Date to validate (YYYY-MM-DD or 'today')." default:"today"`
	All  bool   `help:"Validate every stored plan."`
}

func (cmd *ValidateCmd) Run(ctx *cli.Context) error {
	validator := validation.New()
	var combined validation.ValidationResult

	if cmd.All {
		plans, err := ctx.Store.ListPlans()
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}
		fmt.Printf("Validating %d plans...\n", len(plans))
		for _, p := range plans {
			result := validator.ValidatePlan(p)
			combined.Conflicts = append(combined.Conflicts, result.Conflicts...)
		}
	} else {
		date, err := ctx.ResolveDate(cmd.Date)
		if err != nil {
			return err
		}
		fmt.Printf("Validating plan for %s...\n", date)
		plan, err := ctx.Store.GetPlan(date)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("no plan found for %s", date)
			}
			return err
		}
		combined = validator.ValidatePlan(plan)
	}

	fmt.Println()
	fmt.Println(combined.FormatReport())
	// Conflicts are reported, not returned as an error
	return nil
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/tui/components/schedule"
	"github.com/julianstephens/littleday/internal/validation"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// PrintPlan writes a plan and any conflicts to stdout.
func PrintPlan(title string, plan models.DayPlan) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s %s", title, plan.Date)))
	if len(plan.Appointments) > 0 {
		fmt.Println()
		for _, a := range plan.Appointments {
			fmt.Printf("  * %s (%s)\n", a.Description, a.Type)
		}
	}
	fmt.Println()
	fmt.Print(schedule.Render(plan.Items, -1))

	result := validation.New().ValidatePlan(plan)
	if result.HasConflicts() {
		fmt.Println()
		fmt.Println(warningStyle.Render("Validation warnings:"))
		for _, conflict := range result.Conflicts {
			fmt.Printf("  - %s\n", conflict.Description)
		}
	}
}

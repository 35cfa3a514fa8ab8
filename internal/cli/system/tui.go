package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/littleday/internal/cli"
	"github.com/julianstephens/littleday/internal/tui"
)

type TuiCmd struct {
	Date string `arg:"" optional:"" help:"Date to open (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	// Back up on startup, before any edits can be saved
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Generator, date), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

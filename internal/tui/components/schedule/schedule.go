package schedule

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/littleday/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(10)

	taskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	notesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	typeColors = map[models.ItemType]lipgloss.Color{
		models.ItemFeeding:   lipgloss.Color("117"),
		models.ItemNap:       lipgloss.Color("141"),
		models.ItemRecurring: lipgloss.Color("150"),
		models.ItemBonus:     lipgloss.Color("222"),
	}
)

// RenderLine formats one scheduled item.
func RenderLine(item models.ScheduledItem, selected bool) string {
	when := item.SuggestedTime
	if when == "" {
		when = "anytime"
	}

	marker := "  "
	if selected {
		marker = cursorStyle.Render("> ")
	}
	check := "[ ]"
	if item.Completed {
		check = "[x]"
	}

	label := taskStyle.Render(item.Task)
	if item.Completed {
		label = doneStyle.Render(item.Task)
	}
	kind := lipgloss.NewStyle().Foreground(typeColors[item.Type]).Render(fmt.Sprintf("%-9s", item.Type))

	line := fmt.Sprintf("%s%s %s %s %s", marker, check, timeStyle.Render(when), kind, label)
	if item.DurationMinutes > 0 {
		line += notesStyle.Render(fmt.Sprintf(" (%d min)", item.DurationMinutes))
	}
	if item.Overlap {
		line += warnStyle.Render(" ! no free slot")
	}
	if item.Notes != "" {
		line += "\n" + strings.Repeat(" ", 6) + notesStyle.Render(item.Notes)
	}
	return line
}

// Render formats the whole schedule; selected < 0 draws no cursor.
func Render(items []models.ScheduledItem, selected int) string {
	if len(items) == 0 {
		return "  Nothing scheduled"
	}
	var b strings.Builder
	for i, item := range items {
		b.WriteString(RenderLine(item, i == selected))
		b.WriteString("\n")
	}
	return b.String()
}

type Model struct {
	viewport viewport.Model
	Plan     *models.DayPlan
	Cursor   int
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Plan == nil {
		return "No plan for this day. Run 'littleday plan' to generate one."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetPlan(plan models.DayPlan) {
	m.Plan = &plan
	if m.Cursor >= len(plan.Items) {
		m.Cursor = max(len(plan.Items)-1, 0)
	}
	m.Render()
}

// Selected returns the item under the cursor.
func (m Model) Selected() (models.ScheduledItem, bool) {
	if m.Plan == nil || m.Cursor < 0 || m.Cursor >= len(m.Plan.Items) {
		return models.ScheduledItem{}, false
	}
	return m.Plan.Items[m.Cursor], true
}

func (m *Model) MoveUp() {
	if m.Cursor > 0 {
		m.Cursor--
		m.Render()
	}
}

func (m *Model) MoveDown() {
	if m.Plan != nil && m.Cursor < len(m.Plan.Items)-1 {
		m.Cursor++
		m.Render()
	}
}

func (m *Model) Render() {
	if m.Plan == nil {
		m.viewport.SetContent("No plan loaded.")
		return
	}
	m.viewport.SetContent(Render(m.Plan.Items, m.Cursor))
}

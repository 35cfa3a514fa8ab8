package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width
		m.schedule.SetSize(size.Width, max(size.Height-chromeHeight, 1))
		return m, nil
	}

	if m.state != StatePlan {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.schedule, cmd = m.schedule.Update(msg)
		return m, cmd
	}

	if !key.Matches(keyMsg, m.keys.Quit) {
		m.quitArmed = false
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		if m.dirty && !m.quitArmed && keyMsg.Type != tea.KeyCtrlC {
			m.quitArmed = true
			m.status = "Unsaved changes: press s to save or q again to discard"
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.Up):
		m.schedule.MoveUp()
	case key.Matches(keyMsg, m.keys.Down):
		m.schedule.MoveDown()
	case key.Matches(keyMsg, m.keys.PrevDay):
		if m.dirty {
			m.status = "Save or discard changes before switching days"
			return m, nil
		}
		m.shiftDay(-1)
	case key.Matches(keyMsg, m.keys.NextDay):
		if m.dirty {
			m.status = "Save or discard changes before switching days"
			return m, nil
		}
		m.shiftDay(1)
	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggleSelected()
	case key.Matches(keyMsg, m.keys.Replace):
		m.replaceSelected()
	case key.Matches(keyMsg, m.keys.Save):
		m.save()
	case key.Matches(keyMsg, m.keys.Generate):
		return m, m.startSurvey()
	case key.Matches(keyMsg, m.keys.Prefs):
		return m, m.startPrefs()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StatePlan
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateSurvey {
			m.generate()
		} else {
			m.savePrefs()
		}
		m.state = StatePlan
		m.form = nil
		return m, nil
	case huh.StateAborted:
		m.state = StatePlan
		m.form = nil
		return m, nil
	}
	return m, cmd
}

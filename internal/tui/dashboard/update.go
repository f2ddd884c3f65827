package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.switches)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m.runOp("toggle", m.controller.Toggle), nil

	case key.Matches(msg, m.keys.On):
		return m.runOp("turn-on", m.controller.TurnOn), nil

	case key.Matches(msg, m.keys.Off):
		return m.runOp("turn-off", m.controller.TurnOff), nil

	case key.Matches(msg, m.keys.Undo):
		return m.runOp("undo", m.controller.Undo), nil
	}

	return m, nil
}

// runOp applies a controller operation to the selected switch and records
// the outcome in the status line.
func (m Model) runOp(name string, op func(string) error) Model {
	sw := m.selected()
	if sw == nil {
		return m
	}

	if err := op(sw.ID()); err != nil {
		m.status = err.Error()
		m.isErr = true
		return m
	}

	state := "off"
	if sw.IsOn() {
		state = "on"
	}
	m.status = fmt.Sprintf("%s: %s → %s", sw.Name(), name, state)
	m.isErr = false
	return m
}

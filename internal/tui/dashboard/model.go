// Package dashboard renders the interactive switch dashboard.
package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/switchctl/internal/controller"
	"github.com/alexisbeaulieu97/switchctl/internal/device"
)

// Model is the main dashboard model.
type Model struct {
	// Core data
	controller *controller.Controller
	switches   []*device.Switch

	// UI state
	cursor int
	status string
	isErr  bool

	// Component state
	keys keyMap
	help help.Model

	// Dimensions
	width  int
	height int
}

// NewModel creates a dashboard over the given controller.
func NewModel(ctrl *controller.Controller) Model {
	return Model{
		controller: ctrl,
		switches:   ctrl.Switches(),
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// selected returns the switch under the cursor, or nil when none exist.
func (m Model) selected() *device.Switch {
	if len(m.switches) == 0 {
		return nil
	}
	return m.switches[m.cursor]
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/switchctl/internal/tui/dashboard"
)

var dashboardCmdRunner = runDashboard

func newDashboardCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive switch dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dashboardCmdRunner(flags)
		},
	}
}

func runDashboard(flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("dashboard requires an interactive terminal")
	}

	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.close()

	program := tea.NewProgram(dashboard.NewModel(app.controller), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

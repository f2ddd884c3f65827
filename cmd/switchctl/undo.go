package main

import (
	"github.com/spf13/cobra"
)

func newUndoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <device>",
		Short: "Revert the device's most recent command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.controller.Undo(args[0]); err != nil {
				return err
			}

			return printState(cmd, app, args[0])
		},
	}
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newDevicesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List configured devices and their states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			defer app.close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATE")
			for _, sw := range app.controller.Switches() {
				state := "off"
				if sw.IsOn() {
					state = "on"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", sw.ID(), sw.Name(), state)
			}
			return w.Flush()
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOnCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "on <device>",
		Short: "Turn a device on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPower(cmd, flags, args[0], powerOn)
		},
	}
}

func newOffCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "off <device>",
		Short: "Turn a device off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPower(cmd, flags, args[0], powerOff)
		},
	}
}

func newToggleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <device>",
		Short: "Flip a device's current state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPower(cmd, flags, args[0], powerToggle)
		},
	}
}

type powerAction int

const (
	powerOn powerAction = iota
	powerOff
	powerToggle
)

func runPower(cmd *cobra.Command, flags *rootFlags, deviceID string, action powerAction) error {
	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.close()

	switch action {
	case powerOn:
		err = app.controller.TurnOn(deviceID)
	case powerOff:
		err = app.controller.TurnOff(deviceID)
	case powerToggle:
		err = app.controller.Toggle(deviceID)
	}
	if err != nil {
		return err
	}

	return printState(cmd, app, deviceID)
}

func printState(cmd *cobra.Command, app *appContext, deviceID string) error {
	d, err := app.controller.Dispatcher(deviceID)
	if err != nil {
		return err
	}

	state := "off"
	if d.Target().IsOn() {
		state = "on"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", d.Target().Name(), state)
	return nil
}

package command

import (
	"github.com/alexisbeaulieu97/switchctl/internal/device"
)

// TurnOn switches a device on; its inverse switches it off.
type TurnOn struct{}

// Name implements Command.
func (TurnOn) Name() string { return "turn-on" }

// Execute implements Command.
func (TurnOn) Execute(sw *device.Switch) { sw.TurnOn() }

// Undo implements Command.
func (TurnOn) Undo(sw *device.Switch) { sw.TurnOff() }

// TurnOff switches a device off; its inverse switches it on.
type TurnOff struct{}

// Name implements Command.
func (TurnOff) Name() string { return "turn-off" }

// Execute implements Command.
func (TurnOff) Execute(sw *device.Switch) { sw.TurnOff() }

// Undo implements Command.
func (TurnOff) Undo(sw *device.Switch) { sw.TurnOn() }

// ForState returns the command that drives a switch to the desired state.
func ForState(on bool) Command {
	if on {
		return TurnOn{}
	}
	return TurnOff{}
}

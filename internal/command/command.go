// Package command defines the undoable units of work executed against a switch.
package command

import (
	"github.com/alexisbeaulieu97/switchctl/internal/device"
)

// Command is an immutable unit of work with a forward effect and an exact
// inverse. Undo must restore the switch to the state it held immediately
// before Execute ran; the power commands satisfy this because a switch has
// exactly two mutually inverse states. Commands whose inverse depends on
// runtime state would need to capture prior state instead.
type Command interface {
	// Name returns the command's display name.
	Name() string

	// Execute applies the forward effect to the switch.
	Execute(sw *device.Switch)

	// Undo applies the inverse effect to the switch.
	Undo(sw *device.Switch)
}

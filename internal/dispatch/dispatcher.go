// Package dispatch executes commands against a switch and keeps a bounded
// undo history.
package dispatch

import (
	"sync"

	"github.com/alexisbeaulieu97/switchctl/internal/command"
	"github.com/alexisbeaulieu97/switchctl/internal/device"
	switchctlerrors "github.com/alexisbeaulieu97/switchctl/pkg/errors"
)

// Dispatcher applies commands to a single switch. A command is first staged
// with SetCommand and then run with Dispatch; every successful dispatch is
// recorded in a bounded history from which UndoLast reverts the most recent
// entry. All operations are guarded by one mutex so the size check and the
// following history mutation form a single critical section.
type Dispatcher struct {
	mu      sync.Mutex
	target  *device.Switch
	pending command.Command
	history *history
}

// New creates a dispatcher for target with the given history capacity.
// A capacity of zero or less selects DefaultCapacity.
func New(target *device.Switch, capacity int) *Dispatcher {
	return &Dispatcher{
		target:  target,
		history: newHistory(capacity),
	}
}

// Target returns the switch this dispatcher operates on.
func (d *Dispatcher) Target() *device.Switch {
	return d.target
}

// SetCommand stages cmd for the next Dispatch. The switch is not touched.
func (d *Dispatcher) SetCommand(cmd command.Command) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = cmd
}

// Dispatch executes the staged command and records it in the history,
// evicting the oldest entry first when the history is full. It returns a
// NoCommandError if nothing is staged; the switch and history are then
// left unchanged.
func (d *Dispatcher) Dispatch() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending == nil {
		return switchctlerrors.NewNoCommandError(d.target.ID())
	}

	d.pending.Execute(d.target)
	d.history.push(d.pending)
	return nil
}

// UndoLast removes the most recently dispatched command from the history and
// runs its inverse. It returns an EmptyHistoryError if there is nothing to
// revert; the switch is then left unchanged.
func (d *Dispatcher) UndoLast() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	last, ok := d.history.pop()
	if !ok {
		return switchctlerrors.NewEmptyHistoryError(d.target.ID())
	}

	last.Undo(d.target)
	return nil
}

// HistoryLen reports the number of recorded commands.
func (d *Dispatcher) HistoryLen() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.history.len()
}

// History returns command display names in execution order, oldest first.
func (d *Dispatcher) History() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.history.names()
}

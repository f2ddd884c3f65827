// Package controller wires configured devices to their dispatchers.
package controller

import (
	"github.com/alexisbeaulieu97/switchctl/internal/command"
	"github.com/alexisbeaulieu97/switchctl/internal/config"
	"github.com/alexisbeaulieu97/switchctl/internal/device"
	"github.com/alexisbeaulieu97/switchctl/internal/dispatch"
	switchctlerrors "github.com/alexisbeaulieu97/switchctl/pkg/errors"
)

// Controller owns one dispatcher per configured device. Each device keeps its
// own bounded undo history.
type Controller struct {
	dispatchers map[string]*dispatch.Dispatcher
	order       []string
}

// New builds a controller from the configuration. Devices come up in their
// configured initial state without emitting notifications; every later
// mutation flows through notifier.
func New(cfg *config.Config, notifier device.Notifier) *Controller {
	c := &Controller{
		dispatchers: make(map[string]*dispatch.Dispatcher, len(cfg.Devices)),
		order:       make([]string, 0, len(cfg.Devices)),
	}

	capacity := cfg.Settings.HistorySize
	for _, dev := range cfg.Devices {
		sw := device.NewSwitch(dev.ID, dev.Name, dev.InitialOn(), notifier)
		c.dispatchers[dev.ID] = dispatch.New(sw, capacity)
		c.order = append(c.order, dev.ID)
	}

	return c
}

// Dispatcher returns the dispatcher for the given device id.
func (c *Controller) Dispatcher(id string) (*dispatch.Dispatcher, error) {
	d, ok := c.dispatchers[id]
	if !ok {
		return nil, switchctlerrors.NewUnknownDeviceError(id)
	}
	return d, nil
}

// Switches returns all switches in configuration order.
func (c *Controller) Switches() []*device.Switch {
	out := make([]*device.Switch, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.dispatchers[id].Target())
	}
	return out
}

// TurnOn stages and dispatches a turn-on command for the device.
func (c *Controller) TurnOn(id string) error {
	return c.dispatchCommand(id, command.TurnOn{})
}

// TurnOff stages and dispatches a turn-off command for the device.
func (c *Controller) TurnOff(id string) error {
	return c.dispatchCommand(id, command.TurnOff{})
}

// Toggle dispatches the command that flips the device's current state.
func (c *Controller) Toggle(id string) error {
	d, err := c.Dispatcher(id)
	if err != nil {
		return err
	}
	d.SetCommand(command.ForState(!d.Target().IsOn()))
	return d.Dispatch()
}

// Undo reverts the most recently dispatched command for the device.
func (c *Controller) Undo(id string) error {
	d, err := c.Dispatcher(id)
	if err != nil {
		return err
	}
	return d.UndoLast()
}

// History returns the device's recorded command names, oldest first.
func (c *Controller) History(id string) ([]string, error) {
	d, err := c.Dispatcher(id)
	if err != nil {
		return nil, err
	}
	return d.History(), nil
}

func (c *Controller) dispatchCommand(id string, cmd command.Command) error {
	d, err := c.Dispatcher(id)
	if err != nil {
		return err
	}
	d.SetCommand(cmd)
	return d.Dispatch()
}

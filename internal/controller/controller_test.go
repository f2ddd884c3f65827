package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/switchctl/internal/config"
	switchctlerrors "github.com/alexisbeaulieu97/switchctl/pkg/errors"
)

func newTestController() *Controller {
	cfg := &config.Config{
		Version: "1.0",
		Name:    "test",
		Devices: []config.Device{
			{ID: "lamp", Name: "Lamp"},
			{ID: "heater", Name: "Heater", Initial: "on"},
		},
		Settings: config.Settings{HistorySize: 3},
	}
	return New(cfg, nil)
}

func TestControllerInitialStates(t *testing.T) {
	t.Parallel()

	c := newTestController()

	switches := c.Switches()
	require.Len(t, switches, 2)
	assert.Equal(t, "lamp", switches[0].ID())
	assert.False(t, switches[0].IsOn())
	assert.Equal(t, "heater", switches[1].ID())
	assert.True(t, switches[1].IsOn())
}

func TestControllerUnknownDevice(t *testing.T) {
	t.Parallel()

	c := newTestController()

	var unknown *switchctlerrors.UnknownDeviceError

	err := c.TurnOn("garage")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "garage", unknown.Device)

	require.Error(t, c.TurnOff("garage"))
	require.Error(t, c.Toggle("garage"))
	require.Error(t, c.Undo("garage"))

	_, err = c.History("garage")
	require.Error(t, err)
}

func TestControllerTurnOnOffUndo(t *testing.T) {
	t.Parallel()

	c := newTestController()

	require.NoError(t, c.TurnOn("lamp"))
	require.NoError(t, c.TurnOff("lamp"))

	history, err := c.History("lamp")
	require.NoError(t, err)
	assert.Equal(t, []string{"turn-on", "turn-off"}, history)

	require.NoError(t, c.Undo("lamp"))

	d, err := c.Dispatcher("lamp")
	require.NoError(t, err)
	assert.True(t, d.Target().IsOn())
}

func TestControllerToggleFlipsState(t *testing.T) {
	t.Parallel()

	c := newTestController()

	require.NoError(t, c.Toggle("lamp"))
	d, err := c.Dispatcher("lamp")
	require.NoError(t, err)
	assert.True(t, d.Target().IsOn())

	require.NoError(t, c.Toggle("lamp"))
	assert.False(t, d.Target().IsOn())

	history, err := c.History("lamp")
	require.NoError(t, err)
	assert.Equal(t, []string{"turn-on", "turn-off"}, history)
}

func TestControllerHistoriesAreIndependent(t *testing.T) {
	t.Parallel()

	c := newTestController()

	require.NoError(t, c.TurnOn("lamp"))

	err := c.Undo("heater")
	var empty *switchctlerrors.EmptyHistoryError
	require.ErrorAs(t, err, &empty)

	history, err := c.History("lamp")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestControllerHonorsConfiguredCapacity(t *testing.T) {
	t.Parallel()

	c := newTestController()

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Toggle("lamp"))
	}

	history, err := c.History("lamp")
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("switchctl.yaml", 7, underlying)

	var parseErr *ParseError
	require.True(t, stdErrors.As(err, &parseErr))
	require.Equal(t, "switchctl.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.ErrorIs(t, err, underlying)
	require.Contains(t, err.Error(), "switchctl.yaml:7")
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewValidationError("devices[0].id", "must not be empty", nil)
	require.Equal(t, "validation error: devices[0].id: must not be empty", err.Error())

	bare := NewValidationError("", "broken document", nil)
	require.Equal(t, "validation error: broken document", bare.Error())
}

func TestNoCommandError(t *testing.T) {
	t.Parallel()

	err := NewNoCommandError("lamp")

	var noCmd *NoCommandError
	require.True(t, stdErrors.As(err, &noCmd))
	require.Equal(t, "lamp", noCmd.Device)
	require.Equal(t, "no command staged for device lamp", err.Error())
}

func TestEmptyHistoryError(t *testing.T) {
	t.Parallel()

	err := NewEmptyHistoryError("lamp")

	var empty *EmptyHistoryError
	require.True(t, stdErrors.As(err, &empty))
	require.Equal(t, "nothing to undo for device lamp", err.Error())
}

func TestUnknownDeviceError(t *testing.T) {
	t.Parallel()

	err := NewUnknownDeviceError("garage")
	require.Equal(t, `unknown device "garage"`, err.Error())
}

func TestBrokerErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("connection refused")
	err := NewBrokerError("tcp://localhost:1883", underlying)

	var brokerErr *BrokerError
	require.True(t, stdErrors.As(err, &brokerErr))
	require.ErrorIs(t, err, underlying)
	require.Contains(t, err.Error(), "tcp://localhost:1883")
}

package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NoCommandError indicates Dispatch was called with no command staged.
type NoCommandError struct {
	Device string
}

// NewNoCommandError constructs a NoCommandError for the given device.
func NewNoCommandError(device string) error {
	return &NoCommandError{Device: device}
}

func (e *NoCommandError) Error() string {
	if e == nil {
		return ""
	}
	if e.Device != "" {
		return fmt.Sprintf("no command staged for device %s", e.Device)
	}
	return "no command staged"
}

// EmptyHistoryError indicates an undo was requested with nothing to revert.
type EmptyHistoryError struct {
	Device string
}

// NewEmptyHistoryError constructs an EmptyHistoryError for the given device.
func NewEmptyHistoryError(device string) error {
	return &EmptyHistoryError{Device: device}
}

func (e *EmptyHistoryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Device != "" {
		return fmt.Sprintf("nothing to undo for device %s", e.Device)
	}
	return "nothing to undo"
}

// UnknownDeviceError indicates a device id that is not present in the configuration.
type UnknownDeviceError struct {
	Device string
}

// NewUnknownDeviceError constructs an UnknownDeviceError.
func NewUnknownDeviceError(device string) error {
	return &UnknownDeviceError{Device: device}
}

func (e *UnknownDeviceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown device %q", e.Device)
}

// BrokerError indicates a failure while connecting to or publishing on the MQTT broker.
type BrokerError struct {
	Broker string
	Err    error
}

// NewBrokerError constructs a BrokerError.
func NewBrokerError(broker string, err error) error {
	return &BrokerError{Broker: broker, Err: err}
}

func (e *BrokerError) Error() string {
	if e == nil {
		return ""
	}
	if e.Broker != "" {
		return fmt.Sprintf("broker error [%s]: %v", e.Broker, e.Err)
	}
	return fmt.Sprintf("broker error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *BrokerError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

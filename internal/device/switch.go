// Package device models the binary on/off switches that commands act upon.
package device

// Switch is a named device holding a single boolean state. Its state is
// mutated only through TurnOn and TurnOff; callers that need ordering
// guarantees serialize access through a dispatcher.
type Switch struct {
	id       string
	name     string
	on       bool
	notifier Notifier
}

// NewSwitch creates a switch with the given identity and initial state.
// The initial state is set without emitting a notification.
func NewSwitch(id, name string, on bool, notifier Notifier) *Switch {
	if name == "" {
		name = id
	}
	return &Switch{id: id, name: name, on: on, notifier: notifier}
}

// ID returns the switch identifier.
func (s *Switch) ID() string {
	return s.id
}

// Name returns the human-readable switch name.
func (s *Switch) Name() string {
	return s.name
}

// IsOn reports the current state.
func (s *Switch) IsOn() bool {
	return s.on
}

// TurnOn sets the state to on and notifies observers.
func (s *Switch) TurnOn() {
	s.on = true
	s.notify()
}

// TurnOff sets the state to off and notifies observers.
func (s *Switch) TurnOff() {
	s.on = false
	s.notify()
}

func (s *Switch) notify() {
	if s.notifier == nil {
		return
	}
	s.notifier.StateChanged(s.id, s.on)
}

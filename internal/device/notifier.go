package device

import (
	"github.com/alexisbeaulieu97/switchctl/internal/logger"
)

// Notifier receives a callback after every switch state mutation.
type Notifier interface {
	StateChanged(id string, on bool)
}

// LogNotifier emits one log line per state change.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a Notifier backed by the given logger.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// StateChanged implements Notifier.
func (n *LogNotifier) StateChanged(id string, on bool) {
	if n == nil {
		return
	}
	n.log.StateChange(id, on)
}

// MultiNotifier fans a state change out to several notifiers in order.
type MultiNotifier []Notifier

// StateChanged implements Notifier.
func (m MultiNotifier) StateChanged(id string, on bool) {
	for _, n := range m {
		if n != nil {
			n.StateChanged(id, on)
		}
	}
}

package dispatch

import (
	"github.com/alexisbeaulieu97/switchctl/internal/command"
)

// DefaultCapacity bounds a dispatcher's undo history unless configured otherwise.
const DefaultCapacity = 10

// history is a fixed-capacity FIFO of executed commands. Push evicts the
// oldest entry when full, so eviction and append stay a single step; callers
// serialize access under the dispatcher mutex.
type history struct {
	entries  []command.Command
	capacity int
}

func newHistory(capacity int) *history {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &history{
		entries:  make([]command.Command, 0, capacity),
		capacity: capacity,
	}
}

// push appends cmd, evicting the oldest entry first when at capacity.
func (h *history) push(cmd command.Command) {
	if len(h.entries) == h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, cmd)
}

// pop removes and returns the most recently pushed command.
func (h *history) pop() (command.Command, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = nil
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

func (h *history) len() int {
	return len(h.entries)
}

// names returns display names in execution order, oldest first.
func (h *history) names() []string {
	out := make([]string, len(h.entries))
	for i, cmd := range h.entries {
		out[i] = cmd.Name()
	}
	return out
}

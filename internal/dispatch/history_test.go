package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/switchctl/internal/command"
)

func TestHistoryDefaultsCapacity(t *testing.T) {
	t.Parallel()

	h := newHistory(0)
	assert.Equal(t, DefaultCapacity, h.capacity)

	h = newHistory(-3)
	assert.Equal(t, DefaultCapacity, h.capacity)

	h = newHistory(4)
	assert.Equal(t, 4, h.capacity)
}

func TestHistoryPopOnEmpty(t *testing.T) {
	t.Parallel()

	h := newHistory(2)
	cmd, ok := h.pop()
	assert.False(t, ok)
	assert.Nil(t, cmd)
}

func TestHistoryPushPopIsLIFO(t *testing.T) {
	t.Parallel()

	h := newHistory(5)
	h.push(command.TurnOn{})
	h.push(command.TurnOff{})

	last, ok := h.pop()
	require.True(t, ok)
	assert.Equal(t, "turn-off", last.Name())

	last, ok = h.pop()
	require.True(t, ok)
	assert.Equal(t, "turn-on", last.Name())

	assert.Equal(t, 0, h.len())
}

func TestHistoryEvictsOldestWhenFull(t *testing.T) {
	t.Parallel()

	h := newHistory(2)
	h.push(command.TurnOn{})
	h.push(command.TurnOn{})
	h.push(command.TurnOff{})

	assert.Equal(t, 2, h.len())
	assert.Equal(t, []string{"turn-on", "turn-off"}, h.names())
}

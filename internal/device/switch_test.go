package device

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/switchctl/internal/logger"
)

type recordingNotifier struct {
	events []string
}

func (r *recordingNotifier) StateChanged(id string, on bool) {
	state := "off"
	if on {
		state = "on"
	}
	r.events = append(r.events, id+":"+state)
}

func TestSwitchTurnOnAndOff(t *testing.T) {
	t.Parallel()

	rec := &recordingNotifier{}
	sw := NewSwitch("lamp", "Living Room Lamp", false, rec)

	require.False(t, sw.IsOn())

	sw.TurnOn()
	assert.True(t, sw.IsOn())

	sw.TurnOff()
	assert.False(t, sw.IsOn())

	assert.Equal(t, []string{"lamp:on", "lamp:off"}, rec.events)
}

func TestSwitchInitialStateDoesNotNotify(t *testing.T) {
	t.Parallel()

	rec := &recordingNotifier{}
	sw := NewSwitch("heater", "", true, rec)

	assert.True(t, sw.IsOn())
	assert.Empty(t, rec.events)
}

func TestSwitchNameFallsBackToID(t *testing.T) {
	t.Parallel()

	sw := NewSwitch("fan", "", false, nil)
	assert.Equal(t, "fan", sw.Name())

	named := NewSwitch("fan", "Ceiling Fan", false, nil)
	assert.Equal(t, "Ceiling Fan", named.Name())
}

func TestSwitchNilNotifier(t *testing.T) {
	t.Parallel()

	sw := NewSwitch("lamp", "Lamp", false, nil)
	sw.TurnOn()
	assert.True(t, sw.IsOn())
}

func TestLogNotifierWritesStateLine(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	sw := NewSwitch("lamp", "Lamp", false, NewLogNotifier(log))
	sw.TurnOn()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "lamp", entry["device"])
	assert.Equal(t, "on", entry["state"])
}

func TestMultiNotifierFansOut(t *testing.T) {
	t.Parallel()

	first := &recordingNotifier{}
	second := &recordingNotifier{}
	multi := MultiNotifier{first, nil, second}

	sw := NewSwitch("lamp", "Lamp", true, multi)
	sw.TurnOff()

	assert.Equal(t, []string{"lamp:off"}, first.events)
	assert.Equal(t, []string{"lamp:off"}, second.events)
}

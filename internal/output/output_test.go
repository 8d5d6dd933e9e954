package output

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/pedals"
	"github.com/simtools/pedal2go/internal/util"
)

func TestFileSinkWritesPerPedal(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	path := filepath.Join(dir, "throttle")
	sink := &FileSink{
		ID:    "vjoy",
		Paths: map[string]string{"throttle": path},
	}

	// WHEN
	err := sink.SetAxis(pedals.Throttle, 16384)

	// THEN
	assert.NoError(t, err)
	value, err := util.ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 16384, value)
}

func TestFileSinkRejectsUnmappedPedal(t *testing.T) {
	// GIVEN
	sink := &FileSink{ID: "vjoy", Paths: map[string]string{}}

	// WHEN
	err := sink.SetAxis(pedals.Brake, 100)

	// THEN
	assert.ErrorIs(t, err, pedals.ErrDeviceUnavailable)
}

func TestSimSinkRecordsLastValue(t *testing.T) {
	// GIVEN
	sink := NewSimSink("sim")

	// WHEN
	assert.NoError(t, sink.SetAxis(pedals.Clutch, 1234))
	assert.NoError(t, sink.SetAxis(pedals.Clutch, 4321))

	// THEN
	assert.Equal(t, 4321, sink.LastValue(pedals.Clutch))
}

func TestNewSinkFallsBackToSim(t *testing.T) {
	// GIVEN
	config := configuration.SinkConfig{ID: "unconfigured"}

	// WHEN
	sink := NewSink(config)

	// THEN
	_, ok := sink.(*SimSink)
	assert.True(t, ok)
}

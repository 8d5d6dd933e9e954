package axis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/pedals"
)

func TestFileSourcePoll(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "axis0"),
		filepath.Join(dir, "axis1"),
	}
	assert.NoError(t, os.WriteFile(paths[0], []byte("500"), 0644))
	assert.NoError(t, os.WriteFile(paths[1], []byte("3800"), 0644))

	source := &FileSource{ID: "pedals", Paths: paths}

	// WHEN
	assert.NoError(t, source.Acquire())
	values, err := source.Poll()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []int{500, 3800}, values)
	assert.Equal(t, 2, source.AxisCount())
}

func TestFileSourceMissingFile(t *testing.T) {
	// GIVEN
	source := &FileSource{
		ID:    "pedals",
		Paths: []string{filepath.Join(t.TempDir(), "missing")},
	}

	// WHEN
	err := source.Acquire()

	// THEN
	assert.ErrorIs(t, err, pedals.ErrDeviceUnavailable)
}

func TestSimSourceRoundTrip(t *testing.T) {
	// GIVEN
	source := NewSimSource("sim", 3)

	// WHEN
	assert.NoError(t, source.SetAxis(1, 2048))
	values, err := source.Poll()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 2048, 0}, values)

	assert.Error(t, source.SetAxis(3, 1))
}

func TestNewSourceFallsBackToSim(t *testing.T) {
	// GIVEN
	config := configuration.SourceConfig{ID: "unconfigured"}

	// WHEN
	source := NewSource(config)

	// THEN
	_, ok := source.(*SimSource)
	assert.True(t, ok)
	assert.Equal(t, DefaultSimAxes, source.AxisCount())
}

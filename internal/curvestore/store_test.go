package curvestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simtools/pedal2go/internal/curves"
	"github.com/simtools/pedal2go/internal/pedals"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	// GIVEN
	store := NewStore(t.TempDir())
	points := []curves.Point{
		{X: 0, Y: 0},
		{X: 50, Y: 20},
		{X: 100, Y: 100},
	}

	// WHEN
	err := store.Save(pedals.Brake, "Trail", points, curves.TypeCustom)
	assert.NoError(t, err)

	// THEN
	curve, err := store.Load(pedals.Brake, "Trail")
	assert.NoError(t, err)
	assert.Equal(t, "Trail", curve.Name)
	assert.Equal(t, curves.TypeCustom, curve.Type)
	assert.Equal(t, points, curve.Points)
}

func TestSaveRejectsTooFewValidPoints(t *testing.T) {
	// GIVEN
	store := NewStore(t.TempDir())

	// WHEN
	err := store.Save(pedals.Throttle, "broken", []curves.Point{{X: 0, Y: 0}}, curves.TypeCustom)

	// THEN
	assert.ErrorIs(t, err, pedals.ErrInvalidCurve)
	assert.False(t, store.Exists(pedals.Throttle, "broken"))
}

func TestLoadMissingCurve(t *testing.T) {
	// GIVEN
	store := NewStore(t.TempDir())

	// WHEN
	_, err := store.Load(pedals.Clutch, "nope")

	// THEN
	assert.ErrorIs(t, err, pedals.ErrCurveNotFound)
}

func TestListSkipsInvalidFiles(t *testing.T) {
	// GIVEN
	store := NewStore(t.TempDir())
	err := store.Save(pedals.Throttle, "Good", []curves.Point{{X: 0, Y: 0}, {X: 100, Y: 100}}, curves.TypeLinear)
	assert.NoError(t, err)

	dir, err := store.PedalDir(pedals.Throttle)
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "garbage.json"), []byte("not json at all"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644))

	// WHEN
	names, err := store.List(pedals.Throttle)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []string{"Good"}, names)
}

func TestListRepairsConcatenatedCurveFile(t *testing.T) {
	// GIVEN
	store := NewStore(t.TempDir())
	dir, err := store.PedalDir(pedals.Brake)
	assert.NoError(t, err)

	first := `{"name": "Doubled", "curve_type": "Custom", "points": [[0, 0], [100, 100]]}`
	second := `{"name": "Doubled", "curve_type": "Custom", "points": [[0, 0], [50, 50]]}`
	path := filepath.Join(dir, "Doubled.json")
	assert.NoError(t, os.WriteFile(path, []byte(first+second), 0644))

	// WHEN
	names, err := store.List(pedals.Brake)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []string{"Doubled"}, names)

	// the first object wins and the file is valid JSON again
	curve, err := store.Load(pedals.Brake, "Doubled")
	assert.NoError(t, err)
	assert.Equal(t, []curves.Point{{X: 0, Y: 0}, {X: 100, Y: 100}}, curve.Points)
}

func TestDeleteRemovesCurve(t *testing.T) {
	// GIVEN
	store := NewStore(t.TempDir())
	err := store.Save(pedals.Clutch, "Gone Soon", []curves.Point{{X: 0, Y: 0}, {X: 100, Y: 100}}, curves.TypeCustom)
	assert.NoError(t, err)

	// WHEN
	err = store.Delete(pedals.Clutch, "Gone Soon")

	// THEN
	assert.NoError(t, err)
	assert.False(t, store.Exists(pedals.Clutch, "Gone Soon"))

	err = store.Delete(pedals.Clutch, "Gone Soon")
	assert.ErrorIs(t, err, pedals.ErrCurveNotFound)
}

func TestSanitizedFileNames(t *testing.T) {
	// GIVEN
	store := NewStore(t.TempDir())

	// WHEN
	err := store.Save(pedals.Throttle, "../../../evil", []curves.Point{{X: 0, Y: 0}, {X: 100, Y: 100}}, curves.TypeCustom)
	assert.NoError(t, err)

	// THEN
	dir, err := store.PedalDir(pedals.Throttle)
	assert.NoError(t, err)
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), "..")
	}
}

func TestSeedPresetsIsIdempotent(t *testing.T) {
	// GIVEN
	store := NewStore(t.TempDir())
	store.SeedPresets(nil)

	// a user modification to a preset file must survive re-seeding
	err := store.Save(pedals.Throttle, "Racing", []curves.Point{{X: 0, Y: 0}, {X: 100, Y: 50}}, curves.TypeCustom)
	assert.NoError(t, err)

	// WHEN
	store.SeedPresets(nil)

	// THEN
	curve, err := store.Load(pedals.Throttle, "Racing")
	assert.NoError(t, err)
	assert.Equal(t, []curves.Point{{X: 0, Y: 0}, {X: 100, Y: 50}}, curve.Points)

	names, err := store.List(pedals.Throttle)
	assert.NoError(t, err)
	// four family templates plus four built-in presets
	assert.Len(t, names, 8)
}

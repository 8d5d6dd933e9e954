package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simtools/pedal2go/internal/pedals"
)

func TestGeneratePointsExponential(t *testing.T) {
	// GIVEN
	// WHEN
	points := GeneratePoints(TypeExponential)

	// THEN
	assert.Equal(t, []Point{
		{X: 0, Y: 0},
		{X: 25, Y: 6.25},
		{X: 50, Y: 25},
		{X: 75, Y: 56.25},
		{X: 100, Y: 100},
	}, points)
}

func TestGeneratePointsLogarithmic(t *testing.T) {
	// GIVEN
	// WHEN
	points := GeneratePoints(TypeLogarithmic)

	// THEN
	assert.Equal(t, []Point{
		{X: 0, Y: 0},
		{X: 25, Y: 50},
		{X: 50, Y: 70.71},
		{X: 75, Y: 86.6},
		{X: 100, Y: 100},
	}, points)
}

func TestGeneratePointsSCurveStartsSlowAndEndsFast(t *testing.T) {
	// GIVEN
	// WHEN
	points := GeneratePoints(TypeSCurve)

	// THEN
	assert.Len(t, points, 5)
	assert.Equal(t, 0.0, points[0].Y)
	assert.Equal(t, 100.0, points[4].Y)
	// below the diagonal in the first half, above in the second
	assert.Less(t, points[1].Y, points[1].X)
	assert.Greater(t, points[3].Y, points[3].X)
}

func TestGeneratePointsCustomFallsBackToIdentity(t *testing.T) {
	// GIVEN
	// WHEN
	points := GeneratePoints(TypeCustom)

	// THEN
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 100, Y: 100}}, points)
}

func TestPresetsForEveryPedal(t *testing.T) {
	for _, pedal := range pedals.All() {
		// GIVEN
		// WHEN
		presets := PresetsFor(pedal)

		// THEN
		assert.Len(t, presets, 4)
		for _, preset := range presets {
			assert.NoError(t, preset.Validate())
			assert.Equal(t, 0.0, preset.Apply(0))
			assert.NotEmpty(t, preset.Name)
		}
	}
}

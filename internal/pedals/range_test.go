package pedals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFullRange(t *testing.T) {
	// GIVEN
	r := DefaultRange()

	// WHEN / THEN
	assert.Equal(t, 0.0, r.Normalize(MinRawValue))
	assert.Equal(t, 100.0, r.Normalize(MaxRawValue))
	assert.InDelta(t, 50.0, r.Normalize(2048), 0.05)
}

func TestNormalizeCalibratedRange(t *testing.T) {
	// GIVEN
	r := AxisRange{Min: 500, Max: 3800}

	// WHEN / THEN
	assert.Equal(t, 0.0, r.Normalize(500))
	assert.Equal(t, 100.0, r.Normalize(3800))
	assert.InDelta(t, 50.0, r.Normalize(2150), 0.0001)
}

func TestNormalizeClampsOutsideRange(t *testing.T) {
	// GIVEN
	r := AxisRange{Min: 500, Max: 3800}

	// WHEN / THEN
	assert.Equal(t, 0.0, r.Normalize(0))
	assert.Equal(t, 0.0, r.Normalize(499))
	assert.Equal(t, 100.0, r.Normalize(4095))
}

func TestNormalizeDeadzonesSnapToBoundary(t *testing.T) {
	// GIVEN
	r := AxisRange{Min: 0, Max: 1000, MinDeadzone: 10, MaxDeadzone: 10}

	// WHEN / THEN
	assert.Equal(t, 0.0, r.Normalize(50))
	assert.Equal(t, 100.0, r.Normalize(950))
}

func TestNormalizeDeadzonesRescaleUsableSpan(t *testing.T) {
	// GIVEN
	r := AxisRange{Min: 0, Max: 1000, MinDeadzone: 10, MaxDeadzone: 10}

	// WHEN
	center := r.Normalize(500)

	// THEN
	assert.InDelta(t, 50.0, center, 0.0001)
}

func TestNormalizeIsMonotonic(t *testing.T) {
	// GIVEN
	r := AxisRange{Min: 500, Max: 3800, MinDeadzone: 5, MaxDeadzone: 5}

	// WHEN / THEN
	previous := -1.0
	for raw := 0; raw <= 4095; raw += 5 {
		value := r.Normalize(raw)
		assert.GreaterOrEqual(t, value, previous)
		assert.GreaterOrEqual(t, value, 0.0)
		assert.LessOrEqual(t, value, 100.0)
		previous = value
	}
}

func TestParsePedal(t *testing.T) {
	// GIVEN
	// WHEN
	pedal, err := Parse("Throttle")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, Throttle, pedal)
}

func TestParsePedalRejectsUnknown(t *testing.T) {
	// GIVEN
	// WHEN
	_, err := Parse("handbrake")

	// THEN
	assert.Error(t, err)
}

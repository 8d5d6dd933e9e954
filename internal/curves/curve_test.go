package curves

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearCurveIsIdentity(t *testing.T) {
	// GIVEN
	curve := NewLinearCurve()

	// WHEN / THEN
	assert.Equal(t, 0.0, curve.Apply(0))
	assert.Equal(t, 50.0, curve.Apply(50))
	assert.Equal(t, 100.0, curve.Apply(100))
}

func TestCurveApplyInterpolatesBetweenPoints(t *testing.T) {
	// GIVEN
	curve := Curve{
		Name: "custom",
		Type: TypeCustom,
		Points: []Point{
			{X: 0, Y: 0},
			{X: 50, Y: 20},
			{X: 100, Y: 100},
		},
	}

	// WHEN
	result := curve.Apply(25)

	// THEN
	assert.InDelta(t, 10.0, result, 0.0001)
}

func TestCurveApplyClampsToBoundaryPoints(t *testing.T) {
	// GIVEN
	curve := Curve{
		Name: "partial",
		Type: TypeCustom,
		Points: []Point{
			{X: 20, Y: 10},
			{X: 80, Y: 90},
		},
	}

	// WHEN / THEN
	assert.Equal(t, 10.0, curve.Apply(0))
	assert.Equal(t, 10.0, curve.Apply(20))
	assert.Equal(t, 90.0, curve.Apply(80))
	assert.Equal(t, 90.0, curve.Apply(100))
}

func TestCurveApplySortsUnorderedPoints(t *testing.T) {
	// GIVEN
	curve := Curve{
		Name: "unordered",
		Type: TypeCustom,
		Points: []Point{
			{X: 100, Y: 100},
			{X: 0, Y: 0},
			{X: 50, Y: 50},
		},
	}

	// WHEN
	result := curve.Apply(75)

	// THEN
	assert.InDelta(t, 75.0, result, 0.0001)
}

func TestCurveApplyDuplicateXUsesFirstOccurrence(t *testing.T) {
	// GIVEN
	curve := Curve{
		Name: "duplicate",
		Type: TypeCustom,
		Points: []Point{
			{X: 0, Y: 0},
			{X: 50, Y: 30},
			{X: 50, Y: 70},
			{X: 100, Y: 100},
		},
	}

	// WHEN
	result := curve.Apply(50)

	// THEN
	assert.Equal(t, 30.0, result)
}

func TestCurveApplyOutputIsCoercedToValidRange(t *testing.T) {
	// GIVEN
	curve := Curve{
		Name: "overshooting",
		Type: TypeCustom,
		Points: []Point{
			{X: 0, Y: -20},
			{X: 100, Y: 140},
		},
	}

	// WHEN / THEN
	assert.Equal(t, 0.0, curve.Apply(0))
	assert.Equal(t, 100.0, curve.Apply(100))
}

func TestCurveApplyWithoutPointsIsIdentity(t *testing.T) {
	// GIVEN
	curve := Curve{Name: "empty", Type: TypeCustom}

	// WHEN / THEN
	assert.Equal(t, 42.0, curve.Apply(42))
	assert.Equal(t, 100.0, curve.Apply(120))
}

func TestCurveValidateRejectsTooFewPoints(t *testing.T) {
	// GIVEN
	curve := Curve{
		Name:   "single",
		Type:   TypeCustom,
		Points: []Point{{X: 0, Y: 0}},
	}

	// WHEN
	err := curve.Validate()

	// THEN
	assert.Error(t, err)
}

func TestFilterFinitePointsDropsInvalidCoordinates(t *testing.T) {
	// GIVEN
	points := []Point{
		{X: 0, Y: 0},
		{X: math.NaN(), Y: 50},
		{X: 50, Y: math.Inf(1)},
		{X: 100, Y: 100},
	}

	// WHEN
	result := FilterFinitePoints(points)

	// THEN
	assert.Len(t, result, 2)
	assert.Equal(t, Point{X: 0, Y: 0}, result[0])
	assert.Equal(t, Point{X: 100, Y: 100}, result[1])
}

func TestParseCurveTypeIsCaseInsensitive(t *testing.T) {
	// GIVEN
	// WHEN
	curveType, err := ParseCurveType("scurve")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, TypeSCurve, curveType)
}

func TestParseCurveTypeRejectsUnknownFamily(t *testing.T) {
	// GIVEN
	// WHEN
	_, err := ParseCurveType("bezier")

	// THEN
	assert.Error(t, err)
}

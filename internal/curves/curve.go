package curves

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/simtools/pedal2go/internal/util"
)

// CurveType identifies the family a curve's preset points were generated
// from. Evaluation is identical for all families, the type only selects
// which generator populated the control points.
type CurveType string

const (
	TypeLinear      CurveType = "Linear"
	TypeExponential CurveType = "Exponential"
	TypeLogarithmic CurveType = "Logarithmic"
	TypeSCurve      CurveType = "SCurve"
	TypeCustom      CurveType = "Custom"
)

func ParseCurveType(s string) (CurveType, error) {
	for _, t := range []CurveType{TypeLinear, TypeExponential, TypeLogarithmic, TypeSCurve, TypeCustom} {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown curve type: %s", s)
}

// Point is a single control point of a response curve,
// both coordinates in percent (0..100).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve maps a normalized input percentage onto a shaped output percentage
// via piecewise-linear interpolation over its control points.
type Curve struct {
	Name   string    `json:"name"`
	Type   CurveType `json:"curveType"`
	Points []Point   `json:"points"`
}

// NewLinearCurve returns the identity curve.
func NewLinearCurve() Curve {
	return Curve{
		Name:   string(TypeLinear),
		Type:   TypeLinear,
		Points: GeneratePoints(TypeLinear),
	}
}

// Apply evaluates the curve for the given input percentage and returns the
// shaped output percentage, both in [0..100]. Inputs outside the covered
// x-range clamp to the boundary point's y value. Duplicate x values are
// resolved by first occurrence.
func (c Curve) Apply(input float64) float64 {
	if len(c.Points) == 0 {
		return util.Coerce(input, 0, 100)
	}

	points := make([]Point, len(c.Points))
	copy(points, c.Points)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].X < points[j].X
	})

	first := points[0]
	last := points[len(points)-1]
	if input <= first.X {
		return util.Coerce(first.Y, 0, 100)
	}
	if input >= last.X {
		return util.Coerce(last.Y, 0, 100)
	}

	for i := 0; i < len(points)-1; i++ {
		p1 := points[i]
		p2 := points[i+1]
		if input > p2.X {
			continue
		}
		if p1.X == p2.X {
			// degenerate segment
			return util.Coerce(p1.Y, 0, 100)
		}
		t := util.Ratio(input, p1.X, p2.X)
		return util.Coerce(p1.Y+t*(p2.Y-p1.Y), 0, 100)
	}

	return util.Coerce(last.Y, 0, 100)
}

// Validate checks that the curve has enough finite control points to be
// evaluated meaningfully.
func (c Curve) Validate() error {
	if len(FilterFinitePoints(c.Points)) < 2 {
		return fmt.Errorf("curve %s has fewer than 2 valid points", c.Name)
	}
	return nil
}

// FilterFinitePoints drops points with non-finite coordinates.
func FilterFinitePoints(points []Point) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) ||
			math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		result = append(result, p)
	}
	return result
}

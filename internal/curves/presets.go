package curves

import (
	"math"

	"github.com/simtools/pedal2go/internal/pedals"
)

// GeneratePoints returns the default control points of a curve family.
// Custom has no generator and falls back to the identity points.
func GeneratePoints(curveType CurveType) []Point {
	switch curveType {
	case TypeExponential:
		return samplePoints(func(t float64) float64 {
			return t * t
		})
	case TypeLogarithmic:
		return samplePoints(math.Sqrt)
	case TypeSCurve:
		return samplePoints(func(t float64) float64 {
			// smoothstep
			return t * t * (3 - 2*t)
		})
	default:
		return []Point{{X: 0, Y: 0}, {X: 100, Y: 100}}
	}
}

// samples f (defined on [0,1] -> [0,1]) at 25% steps in percent space
func samplePoints(f func(float64) float64) []Point {
	points := make([]Point, 0, 5)
	for x := 0.0; x <= 100; x += 25 {
		points = append(points, Point{
			X: x,
			Y: math.Round(f(x/100)*100*100) / 100,
		})
	}
	return points
}

// PresetsFor returns the built-in curve library of a pedal. These are seeded
// to disk on first use and never overwrite existing files with the same name.
func PresetsFor(pedal pedals.Pedal) []Curve {
	switch pedal {
	case pedals.Throttle:
		return []Curve{
			{Name: "Racing", Type: TypeCustom, Points: []Point{
				{0, 0}, {25, 10}, {50, 30}, {75, 60}, {100, 100},
			}},
			{Name: "Smooth", Type: TypeCustom, Points: []Point{
				{0, 0}, {25, 35}, {50, 65}, {75, 85}, {100, 100},
			}},
			{Name: "Aggressive", Type: TypeCustom, Points: []Point{
				{0, 0}, {25, 5}, {50, 15}, {75, 40}, {100, 100},
			}},
			{Name: "Rain Mode", Type: TypeCustom, Points: []Point{
				{0, 0}, {25, 8}, {50, 20}, {75, 35}, {90, 60}, {100, 80},
			}},
		}
	case pedals.Brake:
		return []Curve{
			{Name: "Hard Braking", Type: TypeCustom, Points: []Point{
				{0, 0}, {25, 40}, {50, 70}, {75, 90}, {100, 100},
			}},
			{Name: "Progressive", Type: TypeCustom, Points: []Point{
				{0, 0}, {25, 15}, {50, 40}, {75, 75}, {100, 100},
			}},
			{Name: "Trail Braking", Type: TypeCustom, Points: []Point{
				{0, 0}, {15, 5}, {30, 20}, {50, 45}, {70, 75}, {85, 95}, {100, 100},
			}},
			{Name: "ABS Simulation", Type: TypeCustom, Points: []Point{
				{0, 0}, {20, 30}, {40, 60}, {60, 80}, {80, 92}, {100, 97},
			}},
		}
	case pedals.Clutch:
		return []Curve{
			{Name: "Quick Engage", Type: TypeCustom, Points: []Point{
				{0, 0}, {25, 60}, {50, 85}, {75, 95}, {100, 100},
			}},
			{Name: "Gradual", Type: TypeCustom, Points: []Point{
				{0, 0}, {25, 20}, {50, 50}, {75, 80}, {100, 100},
			}},
			{Name: "Race Start", Type: TypeCustom, Points: []Point{
				{0, 0}, {25, 40}, {50, 70}, {60, 85}, {70, 95}, {100, 100},
			}},
			{Name: "Bite Point Focus", Type: TypeCustom, Points: []Point{
				{0, 0}, {30, 20}, {45, 40}, {50, 70}, {55, 90}, {60, 95}, {100, 100},
			}},
		}
	}
	return nil
}

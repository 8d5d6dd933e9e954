package configuration

// PresetConfig defines an additional curve preset seeded to the curve
// library on startup. Seeding is idempotent, existing curve files with the
// same name are never overwritten.
type PresetConfig struct {
	Pedal     string            `json:"pedal"`
	Name      string            `json:"name"`
	CurveType string            `json:"curveType"`
	Points    CurvePointsConfig `json:"points"`
}

// CurvePointsConfig is an ordered list of (x, y) control points in percent.
// In YAML it may be written either as a list of pairs or as a map of
// x -> y values (see curvePointsHookFunc).
type CurvePointsConfig [][2]float64

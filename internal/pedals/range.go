package pedals

// AxisRange holds the raw sample values that define 0% and 100% for a pedal,
// plus optional deadzone margins (in percent) near the boundaries.
type AxisRange struct {
	Min         int     `json:"min"`
	Max         int     `json:"max"`
	MinDeadzone float64 `json:"minDeadzone"`
	MaxDeadzone float64 `json:"maxDeadzone"`
}

// DefaultRange returns the full native range with no deadzones.
func DefaultRange() AxisRange {
	return AxisRange{
		Min: MinRawValue,
		Max: MaxRawValue,
	}
}

// Normalize maps a raw sample into a 0..100 percentage according to the
// range boundaries and deadzones. Values at or below Min map to exactly 0,
// values at or above Max map to exactly 100. Readings inside a deadzone snap
// to the corresponding boundary and the remaining span is rescaled to the
// full 0..100 range.
func (r AxisRange) Normalize(raw int) float64 {
	if raw <= r.Min {
		return 0
	}
	if raw >= r.Max {
		return 100
	}

	pct := float64(raw-r.Min) / float64(r.Max-r.Min) * 100

	if r.MinDeadzone <= 0 && r.MaxDeadzone <= 0 {
		return pct
	}

	if pct < r.MinDeadzone {
		return 0
	}
	if pct > 100-r.MaxDeadzone {
		return 100
	}

	usable := 100 - r.MinDeadzone - r.MaxDeadzone
	if usable <= 0 {
		return 0
	}
	pct = (pct - r.MinDeadzone) / usable * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

package pedals

import (
	"fmt"
	"strings"
	"time"
)

// Pedal is one of the three logical control channels of a pedal set.
type Pedal string

const (
	Throttle Pedal = "throttle"
	Brake    Pedal = "brake"
	Clutch   Pedal = "clutch"
)

const (
	// MinRawValue and MaxRawValue describe the native resolution of the
	// source device (12 bit).
	MinRawValue = 0
	MaxRawValue = 4095
)

// All returns the fixed set of pedals in display order.
func All() []Pedal {
	return []Pedal{Throttle, Brake, Clutch}
}

func Parse(s string) (Pedal, error) {
	switch Pedal(strings.ToLower(strings.TrimSpace(s))) {
	case Throttle:
		return Throttle, nil
	case Brake:
		return Brake, nil
	case Clutch:
		return Clutch, nil
	}
	return "", fmt.Errorf("unknown pedal: %s", s)
}

// Sample is a single processed reading for one pedal.
type Sample struct {
	Pedal      Pedal     `json:"pedal"`
	Raw        int       `json:"raw"`
	Normalized float64   `json:"normalized"`
	Calibrated float64   `json:"calibrated"`
	Timestamp  time.Time `json:"timestamp"`
}

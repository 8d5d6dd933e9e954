package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/simtools/pedal2go/internal/pedals"
	"github.com/simtools/pedal2go/internal/ui"
	"github.com/simtools/pedal2go/internal/util"
)

// DefaultMapping assigns the first three axes in pedal display order.
func DefaultMapping() map[pedals.Pedal]int {
	return map[pedals.Pedal]int{
		pedals.Throttle: 0,
		pedals.Brake:    1,
		pedals.Clutch:   2,
	}
}

// Mapper owns the persisted pedal -> axis index assignment and validates it
// against the axis count of the attached device.
type Mapper struct {
	path string

	mu      sync.Mutex
	mapping map[pedals.Pedal]int
}

// NewMapper loads the mapping document at path, falling back to the default
// assignment when the file is missing or malformed.
func NewMapper(path string) *Mapper {
	m := &Mapper{
		path:    path,
		mapping: DefaultMapping(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			ui.Warning("Failed to load axis mappings: %v", err)
		}
		return m
	}

	var stored map[pedals.Pedal]int
	if err := json.Unmarshal(data, &stored); err != nil {
		ui.Warning("Axis mapping file is malformed, using defaults: %v", err)
		return m
	}
	for pedal, axis := range stored {
		if _, err := pedals.Parse(string(pedal)); err != nil || axis < 0 {
			continue
		}
		m.mapping[pedal] = axis
	}
	return m
}

// Mapping returns a copy of the current pedal -> axis assignment.
func (m *Mapper) Mapping() map[pedals.Pedal]int {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make(map[pedals.Pedal]int, len(m.mapping))
	for pedal, axis := range m.mapping {
		result[pedal] = axis
	}
	return result
}

// Set assigns an axis to a pedal. The edit is rejected without mutation when
// the axis index is not available on the attached device.
func (m *Mapper) Set(pedal pedals.Pedal, axis int, availableAxes int) error {
	if axis < 0 || axis >= availableAxes {
		return fmt.Errorf("%w: axis %d, device has %d axes", pedals.ErrInvalidMapping, axis, availableAxes)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	previous, had := m.mapping[pedal]
	m.mapping[pedal] = axis
	if err := m.saveLocked(); err != nil {
		if had {
			m.mapping[pedal] = previous
		} else {
			delete(m.mapping, pedal)
		}
		return err
	}
	return nil
}

// Validate resets any mapping entry outside the device's axis range to axis
// 0 and persists the result. Called whenever the attached device changes.
func (m *Mapper) Validate(availableAxes int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	changed := false
	for pedal, axis := range m.mapping {
		if axis >= availableAxes {
			ui.Warning("%s axis %d is not available (device has %d axes), resetting to 0",
				pedal, axis, availableAxes)
			m.mapping[pedal] = 0
			changed = true
		}
	}
	if changed {
		_ = m.saveLocked()
	}
}

func (m *Mapper) saveLocked() error {
	data, err := json.MarshalIndent(m.mapping, "", "  ")
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(m.path, data); err != nil {
		ui.Error("Failed to save axis mappings: %v", err)
		return err
	}
	return nil
}

package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/simtools/pedal2go/internal/curves"
	"github.com/simtools/pedal2go/internal/pedals"
	"github.com/simtools/pedal2go/internal/ui"
	"github.com/simtools/pedal2go/internal/util"
)

// CurveRef references the active curve of a pedal by name and family.
type CurveRef struct {
	Name string           `json:"name"`
	Type curves.CurveType `json:"type"`
}

// PedalCalibration is the persisted calibration state of a single pedal.
type PedalCalibration struct {
	Range pedals.AxisRange `json:"range"`
	Curve CurveRef         `json:"curve"`
}

// Document is the on-disk calibration aggregate, one entry per pedal.
type Document map[pedals.Pedal]PedalCalibration

// DefaultDocument returns the documented default: full native range and a
// linear identity curve for every pedal.
func DefaultDocument() Document {
	doc := Document{}
	for _, pedal := range pedals.All() {
		doc[pedal] = PedalCalibration{
			Range: pedals.DefaultRange(),
			Curve: CurveRef{Name: string(curves.TypeLinear), Type: curves.TypeLinear},
		}
	}
	return doc
}

// Store owns the persisted calibration document. All mutations validate
// their input, persist atomically on success and leave the stored state
// untouched on failure.
type Store struct {
	path string

	mu  sync.Mutex
	doc Document
}

// NewStore loads the calibration document at path, falling back to defaults
// when the file is missing or malformed.
func NewStore(path string) *Store {
	s := &Store{
		path: path,
		doc:  DefaultDocument(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			ui.Warning("Failed to load calibration: %v", err)
		}
		return s
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		ui.Warning("Calibration file is malformed, using defaults: %v", err)
		return s
	}

	// pedals absent from the file keep their defaults
	for pedal, calibration := range doc {
		if _, err := pedals.Parse(string(pedal)); err != nil {
			continue
		}
		s.doc[pedal] = calibration
	}
	return s
}

// Load returns a copy of the current document.
func (s *Store) Load() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyDocLocked()
}

func (s *Store) copyDocLocked() Document {
	result := make(Document, len(s.doc))
	for pedal, calibration := range s.doc {
		result[pedal] = calibration
	}
	return result
}

// Get returns the calibration state of a single pedal.
func (s *Store) Get(pedal pedals.Pedal) PedalCalibration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc[pedal]
}

// SetMin updates the lower range bound of a pedal. The edit is rejected when
// it would produce a non-increasing range.
func (s *Store) SetMin(pedal pedals.Pedal, min int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	calibration := s.doc[pedal]
	if min >= calibration.Range.Max {
		return fmt.Errorf("%w: min %d >= max %d", pedals.ErrInvalidRange, min, calibration.Range.Max)
	}
	calibration.Range.Min = min
	return s.setLocked(pedal, calibration)
}

// SetMax updates the upper range bound of a pedal. The edit is rejected when
// it would produce a non-increasing range.
func (s *Store) SetMax(pedal pedals.Pedal, max int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	calibration := s.doc[pedal]
	if max <= calibration.Range.Min {
		return fmt.Errorf("%w: max %d <= min %d", pedals.ErrInvalidRange, max, calibration.Range.Min)
	}
	calibration.Range.Max = max
	return s.setLocked(pedal, calibration)
}

// SetDeadzones updates the deadzone margins of a pedal, in percent.
func (s *Store) SetDeadzones(pedal pedals.Pedal, minDeadzone float64, maxDeadzone float64) error {
	if minDeadzone < 0 || maxDeadzone < 0 || minDeadzone+maxDeadzone >= 100 {
		return fmt.Errorf("%w: deadzones %.1f/%.1f", pedals.ErrInvalidRange, minDeadzone, maxDeadzone)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	calibration := s.doc[pedal]
	calibration.Range.MinDeadzone = minDeadzone
	calibration.Range.MaxDeadzone = maxDeadzone
	return s.setLocked(pedal, calibration)
}

// SetActiveCurve records which curve is applied to a pedal.
func (s *Store) SetActiveCurve(pedal pedals.Pedal, ref CurveRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	calibration := s.doc[pedal]
	calibration.Curve = ref
	return s.setLocked(pedal, calibration)
}

// ResetRange restores the full native range with no deadzones for a pedal.
func (s *Store) ResetRange(pedal pedals.Pedal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	calibration := s.doc[pedal]
	calibration.Range = pedals.DefaultRange()
	return s.setLocked(pedal, calibration)
}

// Replace swaps in a whole document, used when restoring a backup.
func (s *Store) Replace(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.doc
	s.doc = DefaultDocument()
	for pedal, calibration := range doc {
		if _, err := pedals.Parse(string(pedal)); err != nil {
			continue
		}
		s.doc[pedal] = calibration
	}
	if err := s.saveLocked(); err != nil {
		s.doc = previous
		return err
	}
	return nil
}

// setLocked stores the new calibration of a pedal and persists the document.
// When persisting fails the previous in-memory state is restored so that
// Get never reports a value that did not reach disk.
func (s *Store) setLocked(pedal pedals.Pedal, calibration PedalCalibration) error {
	previous := s.doc[pedal]
	s.doc[pedal] = calibration
	if err := s.saveLocked(); err != nil {
		s.doc[pedal] = previous
		return err
	}
	return nil
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(s.path, data); err != nil {
		ui.Error("Failed to save calibration: %v", err)
		return err
	}
	return nil
}

package axis

import (
	"fmt"
	"sync"
)

// DefaultSimAxes matches a three-pedal set.
const DefaultSimAxes = 3

// SimSource is an in-memory source without any hardware behind it. It backs
// test mode, all axes rest at the raw minimum until set explicitly.
type SimSource struct {
	id string

	mu     sync.Mutex
	values []int
}

func NewSimSource(id string, axes int) *SimSource {
	if axes <= 0 {
		axes = DefaultSimAxes
	}
	if len(id) <= 0 {
		id = "sim"
	}
	return &SimSource{
		id:     id,
		values: make([]int, axes),
	}
}

func (s *SimSource) GetId() string {
	return s.id
}

func (s *SimSource) AxisCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

func (s *SimSource) Acquire() error {
	return nil
}

func (s *SimSource) Poll() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := make([]int, len(s.values))
	copy(values, s.values)
	return values, nil
}

func (s *SimSource) Release() {}

// SetAxis sets the raw value reported for a single axis.
func (s *SimSource) SetAxis(axis int, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if axis < 0 || axis >= len(s.values) {
		return fmt.Errorf("axis %d out of range (0..%d)", axis, len(s.values)-1)
	}
	s.values[axis] = value
	return nil
}

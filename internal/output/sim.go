package output

import (
	"sync"

	"github.com/simtools/pedal2go/internal/pedals"
)

// SimSink is an in-memory sink that only records the last written values.
// It backs test mode and tests.
type SimSink struct {
	id string

	mu     sync.Mutex
	values map[pedals.Pedal]int
}

func NewSimSink(id string) *SimSink {
	if len(id) <= 0 {
		id = "sim"
	}
	return &SimSink{
		id:     id,
		values: map[pedals.Pedal]int{},
	}
}

func (s *SimSink) GetId() string {
	return s.id
}

func (s *SimSink) SetAxis(pedal pedals.Pedal, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[pedal] = value
	return nil
}

func (s *SimSink) Close() {}

// LastValue returns the most recently written value of a pedal.
func (s *SimSink) LastValue(pedal pedals.Pedal) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[pedal]
}

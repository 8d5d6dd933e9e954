package pipeline

import (
	"sync"

	"github.com/simtools/pedal2go/internal/pedals"
)

// History is a bounded FIFO of the most recent samples of one pedal, kept
// for display and charting. The oldest sample is dropped as the newest
// arrives.
type History struct {
	mu      sync.Mutex
	samples []pedals.Sample
	size    int
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = 1
	}
	return &History{
		samples: make([]pedals.Sample, 0, size),
		size:    size,
	}
}

func (h *History) Append(sample pedals.Sample) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.samples = append(h.samples, sample)
	if len(h.samples) > h.size {
		h.samples = h.samples[1:]
	}
}

// Items returns a copy of the buffered samples, oldest first.
func (h *History) Items() []pedals.Sample {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]pedals.Sample, len(h.samples))
	copy(result, h.samples)
	return result
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.samples)
}

package axis

import (
	"fmt"
	"os"

	"github.com/simtools/pedal2go/internal/pedals"
	"github.com/simtools/pedal2go/internal/util"
)

// FileSource reads one integer raw sample per axis from a file path.
type FileSource struct {
	ID    string
	Paths []string
}

func (s *FileSource) GetId() string {
	return s.ID
}

func (s *FileSource) AxisCount() int {
	return len(s.Paths)
}

func (s *FileSource) Acquire() error {
	for _, path := range s.Paths {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: %s", pedals.ErrDeviceUnavailable, path)
		}
	}
	return nil
}

func (s *FileSource) Poll() ([]int, error) {
	values := make([]int, len(s.Paths))
	for i, path := range s.Paths {
		value, err := util.ReadIntFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: axis %d: %s", pedals.ErrDeviceUnavailable, i, err)
		}
		values[i] = value
	}
	return values, nil
}

func (s *FileSource) Release() {}

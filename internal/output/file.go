package output

import (
	"fmt"

	"github.com/simtools/pedal2go/internal/pedals"
	"github.com/simtools/pedal2go/internal/util"
)

// FileSink writes each pedal's output value to its own file.
type FileSink struct {
	ID    string
	Paths map[string]string
}

func (s *FileSink) GetId() string {
	return s.ID
}

func (s *FileSink) SetAxis(pedal pedals.Pedal, value int) error {
	path, ok := s.Paths[string(pedal)]
	if !ok {
		return fmt.Errorf("%w: no output path for %s", pedals.ErrDeviceUnavailable, pedal)
	}
	if err := util.WriteIntToFile(value, path); err != nil {
		return fmt.Errorf("%w: %s", pedals.ErrDeviceUnavailable, err)
	}
	return nil
}

func (s *FileSink) Close() {}

package axis

import (
	"github.com/simtools/pedal2go/internal/configuration"
)

// Source abstracts a physical controller device exposing analog axes.
type Source interface {
	GetId() string

	// AxisCount returns the number of analog axes the device exposes
	AxisCount() int

	// Acquire opens the device for polling
	Acquire() error

	// Poll returns one raw sample per axis
	Poll() ([]int, error)

	Release()
}

// NewSource builds a source from its configuration. An empty configuration
// yields a simulated source, so the pipeline stays usable without hardware.
func NewSource(config configuration.SourceConfig) Source {
	if config.File != nil {
		return &FileSource{
			ID:    config.ID,
			Paths: config.File.Paths,
		}
	}

	if config.Cmd != nil {
		return &CmdSource{
			ID:   config.ID,
			Exec: config.Cmd.Exec,
			Args: config.Cmd.Args,
			Axes: config.Cmd.Axes,
		}
	}

	axes := DefaultSimAxes
	if config.Sim != nil {
		axes = config.Sim.Axes
	}
	return NewSimSource(config.ID, axes)
}

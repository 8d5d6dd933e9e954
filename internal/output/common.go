package output

import (
	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/pedals"
)

// Sink abstracts the virtual output device receiving the shaped axis values.
type Sink interface {
	GetId() string

	// SetAxis pushes one pedal's value in the sink's native integer range
	SetAxis(pedal pedals.Pedal, value int) error

	Close()
}

// NewSink builds a sink from its configuration. An empty configuration
// yields a simulated sink, so the pipeline stays usable without a virtual
// output device.
func NewSink(config configuration.SinkConfig) Sink {
	if config.File != nil {
		return &FileSink{
			ID:    config.ID,
			Paths: config.File.Paths,
		}
	}

	if config.Cmd != nil {
		return &CmdSink{
			ID:   config.ID,
			Exec: config.Cmd.Exec,
			Args: config.Cmd.Args,
		}
	}

	return NewSimSink(config.ID)
}

package output

import (
	"fmt"
	"strconv"
	"time"

	"github.com/simtools/pedal2go/internal/pedals"
	"github.com/simtools/pedal2go/internal/util"
)

const cmdSinkTimeout = 2 * time.Second

// CmdSink invokes an external executable per axis update, appending the
// pedal name and value as the last two arguments.
type CmdSink struct {
	ID   string
	Exec string
	Args []string
}

func (s *CmdSink) GetId() string {
	return s.ID
}

func (s *CmdSink) SetAxis(pedal pedals.Pedal, value int) error {
	args := make([]string, 0, len(s.Args)+2)
	args = append(args, s.Args...)
	args = append(args, string(pedal), strconv.Itoa(value))

	if _, err := util.SafeCmdExecution(s.Exec, args, cmdSinkTimeout); err != nil {
		return fmt.Errorf("%w: %s", pedals.ErrDeviceUnavailable, err)
	}
	return nil
}

func (s *CmdSink) Close() {}

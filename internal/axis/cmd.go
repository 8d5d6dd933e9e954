package axis

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/simtools/pedal2go/internal/pedals"
	"github.com/simtools/pedal2go/internal/util"
)

const cmdPollTimeout = 2 * time.Second

// CmdSource polls an external executable that prints one whitespace
// separated integer per axis on stdout.
type CmdSource struct {
	ID   string
	Exec string
	Args []string
	Axes int
}

func (s *CmdSource) GetId() string {
	return s.ID
}

func (s *CmdSource) AxisCount() int {
	return s.Axes
}

func (s *CmdSource) Acquire() error {
	if _, err := exec.LookPath(s.Exec); err != nil {
		return fmt.Errorf("%w: %s", pedals.ErrDeviceUnavailable, err)
	}
	return nil
}

func (s *CmdSource) Poll() ([]int, error) {
	output, err := util.SafeCmdExecution(s.Exec, s.Args, cmdPollTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", pedals.ErrDeviceUnavailable, err)
	}

	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) < s.Axes {
		return nil, fmt.Errorf("%w: expected %d axis values, got %d", pedals.ErrDeviceUnavailable, s.Axes, len(fields))
	}

	values := make([]int, s.Axes)
	for i := 0; i < s.Axes; i++ {
		value, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("%w: axis %d: %s", pedals.ErrDeviceUnavailable, i, err)
		}
		values[i] = value
	}
	return values, nil
}

func (s *CmdSource) Release() {}

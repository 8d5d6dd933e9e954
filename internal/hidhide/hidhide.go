package hidhide

import (
	"strings"
	"time"

	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/util"
)

const cmdTimeout = 5 * time.Second

// Hider suppresses the OS-visible physical device while the daemon feeds the
// virtual one, so games don't see duplicate pedal inputs. It is invoked only
// around the daemon lifecycle.
type Hider interface {
	Hide() error
	Unhide() error
}

// NewHider returns a command-backed hider when configured, otherwise a noop.
func NewHider(config configuration.HidHideConfig) Hider {
	if len(config.HideCommand) <= 0 && len(config.UnhideCommand) <= 0 {
		return &NoopHider{}
	}
	return &CmdHider{
		HideCommand:   config.HideCommand,
		UnhideCommand: config.UnhideCommand,
	}
}

// CmdHider executes configured external commands to hide and unhide the
// physical device.
type CmdHider struct {
	HideCommand   string
	UnhideCommand string
}

func (h *CmdHider) Hide() error {
	return runCommand(h.HideCommand)
}

func (h *CmdHider) Unhide() error {
	return runCommand(h.UnhideCommand)
}

func runCommand(command string) error {
	if len(command) <= 0 {
		return nil
	}
	fields := strings.Fields(command)
	_, err := util.SafeCmdExecution(fields[0], fields[1:], cmdTimeout)
	return err
}

// NoopHider is used when no device hiding is configured.
type NoopHider struct{}

func (h *NoopHider) Hide() error {
	return nil
}

func (h *NoopHider) Unhide() error {
	return nil
}

package calibration

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/simtools/pedal2go/internal/calibration"
	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/pedals"
)

var pedalId string

var Command = &cobra.Command{
	Use:              "calibration",
	Short:            "Calibration related commands",
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&pedalId,
		"pedal", "p",
		"",
		"Pedal to operate on (throttle, brake, clutch)",
	)
}

func selectedPedals() ([]pedals.Pedal, error) {
	if pedalId == "" {
		return pedals.All(), nil
	}
	pedal, err := pedals.Parse(pedalId)
	if err != nil {
		return nil, err
	}
	return []pedals.Pedal{pedal}, nil
}

func openStore() *calibration.Store {
	return calibration.NewStore(filepath.Join(configuration.CurrentConfig.DataPath, "calibration.json"))
}

func openBackups() *calibration.BackupStack {
	return calibration.NewBackupStack(configuration.CurrentConfig.DbPath)
}

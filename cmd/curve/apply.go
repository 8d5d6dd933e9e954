package curve

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/simtools/pedal2go/internal/calibration"
	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/curvestore"
	"github.com/simtools/pedal2go/internal/ui"
)

var applyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Make a stored curve the active curve of a pedal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration.LoadConfig()
		config := configuration.CurrentConfig

		if pedalId == "" {
			return errors.New("a pedal is required, use --pedal")
		}
		targets, err := selectedPedals()
		if err != nil {
			return err
		}
		pedal := targets[0]
		name := args[0]

		store := curvestore.NewStore(config.DataPath)
		curve, err := store.Load(pedal, name)
		if err != nil {
			return err
		}

		calibrationStore := calibration.NewStore(filepath.Join(config.DataPath, "calibration.json"))
		err = calibrationStore.SetActiveCurve(pedal, calibration.CurveRef{
			Name: curve.Name,
			Type: curve.Type,
		})
		if err != nil {
			return err
		}

		ui.Success("Curve '%s' is now active for %s", curve.Name, pedal)
		return nil
	},
}

func init() {
	Command.AddCommand(applyCmd)
}

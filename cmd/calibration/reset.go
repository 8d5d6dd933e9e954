package calibration

import (
	"github.com/spf13/cobra"

	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/ui"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the calibrated range of one or all pedals",
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration.LoadConfig()

		targets, err := selectedPedals()
		if err != nil {
			return err
		}

		store := openStore()

		// snapshot the old state so the reset can be undone
		if err := openBackups().Push(store.Load()); err != nil {
			ui.Warning("Couldn't store calibration backup: %v", err)
		}

		for _, pedal := range targets {
			if err := store.ResetRange(pedal); err != nil {
				return err
			}
			ui.Success("Reset calibration of %s", pedal)
		}
		return nil
	},
}

func init() {
	Command.AddCommand(resetCmd)
}

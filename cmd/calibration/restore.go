package calibration

import (
	"github.com/spf13/cobra"

	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/ui"
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the most recent calibration backup",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration.LoadConfig()

		doc, err := openBackups().Pop()
		if err != nil {
			return err
		}
		if err := openStore().Replace(doc); err != nil {
			return err
		}

		ui.Success("Calibration restored")
		return nil
	},
}

func init() {
	Command.AddCommand(restoreCmd)
}

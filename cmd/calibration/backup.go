package calibration

import (
	"github.com/spf13/cobra"

	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/ui"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Store the current calibration on the backup stack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration.LoadConfig()

		backups := openBackups()
		if err := backups.Push(openStore().Load()); err != nil {
			return err
		}

		depth, err := backups.Depth()
		if err != nil {
			return err
		}
		ui.Success("Calibration backed up (%d stored)", depth)
		return nil
	},
}

func init() {
	Command.AddCommand(backupCmd)
}

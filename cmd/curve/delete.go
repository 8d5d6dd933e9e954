package curve

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/curvestore"
	"github.com/simtools/pedal2go/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored curve of a pedal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration.LoadConfig()

		if pedalId == "" {
			return errors.New("a pedal is required, use --pedal")
		}
		targets, err := selectedPedals()
		if err != nil {
			return err
		}
		pedal := targets[0]
		name := args[0]

		store := curvestore.NewStore(configuration.CurrentConfig.DataPath)
		if err := store.Delete(pedal, name); err != nil {
			return err
		}

		ui.Success("Deleted curve '%s' of %s", name, pedal)
		return nil
	},
}

func init() {
	Command.AddCommand(deleteCmd)
}

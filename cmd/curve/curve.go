package curve

import (
	"github.com/spf13/cobra"

	"github.com/simtools/pedal2go/internal/pedals"
)

var pedalId string

var Command = &cobra.Command{
	Use:              "curve",
	Short:            "Curve related commands",
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&pedalId,
		"pedal", "p",
		"",
		"Pedal the curve belongs to (throttle, brake, clutch)",
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

package calibration

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"

	"github.com/simtools/pedal2go/cmd/global"
	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current calibration of the pedals",
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration.LoadConfig()

		targets, err := selectedPedals()
		if err != nil {
			return err
		}

		store := openStore()

		var rows [][]string
		for _, pedal := range targets {
			cal := store.Get(pedal)
			rows = append(rows, []string{
				string(pedal),
				strconv.Itoa(cal.Range.Min),
				strconv.Itoa(cal.Range.Max),
				fmt.Sprintf("%.1f%%", cal.Range.MinDeadzone),
				fmt.Sprintf("%.1f%%", cal.Range.MaxDeadzone),
				cal.Curve.Name,
			})
		}

		tab := table.Table{
			Headers: []string{"Pedal", "Min", "Max", "Min Deadzone", "Max Deadzone", "Active Curve"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		tableErr := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if tableErr != nil {
			panic(tableErr)
		}
		ui.Printfln(buf.String())

		return nil
	},
}

func init() {
	Command.AddCommand(showCmd)
}

package curve

import (
	"bytes"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"

	"github.com/simtools/pedal2go/cmd/global"
	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/curvestore"
	"github.com/simtools/pedal2go/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stored response curve(s) to console",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		configPath := configuration.DetectConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()

		targets, err := selectedPedals()
		if err != nil {
			return err
		}

		store := curvestore.NewStore(configuration.CurrentConfig.DataPath)

		printed := 0
		for _, pedal := range targets {
			names, err := store.List(pedal)
			if err != nil {
				return err
			}

			for _, name := range names {
				curve, err := store.Load(pedal, name)
				if err != nil {
					ui.Warning("Skipping unreadable curve '%s' of %s: %v", name, pedal, err)
					continue
				}

				if printed > 0 {
					ui.Printfln("")
					ui.Printfln("")
				}
				printed++

				// print table
				tab := table.Table{
					Headers: []string{"Pedal", "Name", "Type", "Points"},
					Rows: [][]string{
						{string(pedal), curve.Name, string(curve.Type), strconv.Itoa(len(curve.Points))},
					},
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

				values := make([]float64, 0, 101)
				for input := 0; input <= 100; input++ {
					values = append(values, curve.Apply(float64(input)))
				}

				caption := "output % / input %"
				graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
				ui.Printfln(graph)
			}
		}

		return nil
	},
}

func init() {
	Command.AddCommand(listCmd)
}

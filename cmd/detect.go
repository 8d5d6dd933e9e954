package cmd

import (
	"bytes"
	"path/filepath"
	"strconv"

	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"

	"github.com/simtools/pedal2go/cmd/global"
	"github.com/simtools/pedal2go/internal/axis"
	"github.com/simtools/pedal2go/internal/calibration"
	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/pedals"
	"github.com/simtools/pedal2go/internal/ui"
	"github.com/simtools/pedal2go/internal/util"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect axes",
	Long:  `Polls the configured axis source once and prints all axes as a list`,
	Run: func(cmd *cobra.Command, args []string) {
		configuration.LoadConfig()
		config := configuration.CurrentConfig

		source := axis.NewSource(config.Source)
		if err := source.Acquire(); err != nil {
			ui.Fatal("Cannot acquire axis source '%s': %v", source.GetId(), err)
		}
		defer source.Release()

		values, err := source.Poll()
		if err != nil {
			ui.Fatal("Cannot poll axis source '%s': %v", source.GetId(), err)
		}

		mapping := calibrationMapping(config)
		mappedTo := map[int][]string{}
		for _, pedal := range util.SortedKeys(mapping) {
			idx := mapping[pedal]
			mappedTo[idx] = append(mappedTo[idx], string(pedal))
		}

		ui.Printfln("> %s", source.GetId())

		var rows [][]string
		for idx, value := range values {
			pedal := ""
			if names, ok := mappedTo[idx]; ok && len(names) > 0 {
				pedal = names[0]
			}
			rows = append(rows, []string{
				"", strconv.Itoa(idx), strconv.Itoa(value), pedal,
			})
		}

		tab := table.Table{
			Headers: []string{"Axes   ", "Index", "Raw", "Pedal"},
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
	},
}

func calibrationMapping(config configuration.Configuration) map[pedals.Pedal]int {
	mapper := calibration.NewMapper(filepath.Join(config.DataPath, "axis_mappings.json"))
	return mapper.Mapping()
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

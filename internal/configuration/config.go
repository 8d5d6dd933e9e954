package configuration

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/simtools/pedal2go/internal/ui"
	"github.com/spf13/viper"
)

type Configuration struct {
	// DataPath is the directory holding calibration documents and curve files
	DataPath string `json:"dataPath"`
	// DbPath points at the bolt database used for calibration backups
	DbPath string `json:"dbPath"`

	TickRate          time.Duration `json:"tickRate"`
	HistorySize       int           `json:"historySize"`
	RollingWindowSize int           `json:"rollingWindowSize"`

	// OutputMax is the upper bound of the output device's native axis range
	OutputMax int `json:"outputMax"`

	Source  SourceConfig  `json:"source"`
	Sink    SinkConfig    `json:"sink"`
	HidHide HidHideConfig `json:"hidhide"`

	Api        ApiConfig        `json:"api"`
	Statistics StatisticsConfig `json:"statistics"`

	// Presets are additional user-defined curve presets seeded on startup
	Presets []PresetConfig `json:"presets"`
}

type ApiConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

type StatisticsConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

type HidHideConfig struct {
	// HideCommand and UnhideCommand are executed around the daemon lifecycle
	// to suppress and restore the OS-visible physical device.
	HideCommand   string `json:"hideCommand"`
	UnhideCommand string `json:"unhideCommand"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("pedal2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/pedal2go/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	home, err := homedir.Dir()
	if err != nil {
		home = "."
	}
	dataPath := filepath.Join(home, ".pedal2go")

	viper.SetDefault("dataPath", dataPath)
	viper.SetDefault("dbPath", filepath.Join(dataPath, "pedal2go.db"))

	viper.SetDefault("TickRate", 10*time.Millisecond)
	viper.SetDefault("HistorySize", 256)
	viper.SetDefault("RollingWindowSize", 64)

	viper.SetDefault("OutputMax", 32767)

	viper.SetDefault("api.enabled", true)
	viper.SetDefault("api.port", 9977)
	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9100)

	viper.SetDefault("presets", []PresetConfig{})
}

// DetectConfigFile returns the path of the config file viper ended up using.
// A missing config file is fine, defaults apply.
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return ""
		}
		ui.Fatal("Error reading config file: %s", err)
	}
	return viper.ConfigFileUsed()
}

// LoadConfig reads the config file and unmarshals it into CurrentConfig.
// A missing config file is fine, defaults apply.
func LoadConfig() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			ui.Fatal("Error reading config file: %s", err)
		}
	}
	err := viper.Unmarshal(
		&CurrentConfig,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			curvePointsHookFunc(),
		)),
	)
	if err != nil {
		ui.Fatal("unable to decode config into struct, %v", err)
	}
}

package configuration

import (
	"errors"
	"fmt"

	"github.com/simtools/pedal2go/internal/util"
)

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	if config.TickRate <= 0 {
		return errors.New("tickRate must be greater than zero")
	}
	if config.HistorySize <= 0 {
		return errors.New("historySize must be greater than zero")
	}
	if config.RollingWindowSize <= 0 {
		return errors.New("rollingWindowSize must be greater than zero")
	}
	if config.OutputMax <= 0 {
		return errors.New("outputMax must be greater than zero")
	}

	if err := validateSource(config); err != nil {
		return err
	}
	if err := validateSink(config); err != nil {
		return err
	}
	if err := validatePresets(config); err != nil {
		return err
	}

	if len(path) > 0 && containsCmdBlocks(config) {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %s", path, err)
		}
	}

	return nil
}

func containsCmdBlocks(config *Configuration) bool {
	return config.Source.Cmd != nil || config.Sink.Cmd != nil
}

func validateSource(config *Configuration) error {
	source := config.Source

	subConfigs := 0
	if source.File != nil {
		subConfigs++
	}
	if source.Cmd != nil {
		subConfigs++
	}
	if source.Sim != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New("source: only one source type can be used per source definition block")
	}

	if source.File != nil && len(source.File.Paths) <= 0 {
		return errors.New("source: file source needs at least one axis path")
	}
	if source.Cmd != nil {
		if len(source.Cmd.Exec) <= 0 {
			return errors.New("source: cmd source is missing an executable")
		}
		if source.Cmd.Axes <= 0 {
			return errors.New("source: cmd source needs a positive axis count")
		}
	}
	if source.Sim != nil && source.Sim.Axes <= 0 {
		return errors.New("source: sim source needs a positive axis count")
	}

	return nil
}

func validateSink(config *Configuration) error {
	sink := config.Sink

	subConfigs := 0
	if sink.File != nil {
		subConfigs++
	}
	if sink.Cmd != nil {
		subConfigs++
	}
	if sink.Sim != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New("sink: only one sink type can be used per sink definition block")
	}

	if sink.File != nil && len(sink.File.Paths) <= 0 {
		return errors.New("sink: file sink needs at least one pedal path")
	}
	if sink.Cmd != nil && len(sink.Cmd.Exec) <= 0 {
		return errors.New("sink: cmd sink is missing an executable")
	}

	return nil
}

func validatePresets(config *Configuration) error {
	for _, preset := range config.Presets {
		if len(preset.Name) <= 0 {
			return errors.New("presets: preset is missing a name")
		}
		if len(preset.Points) < 2 {
			return fmt.Errorf("presets: preset %s needs at least 2 points", preset.Name)
		}
		for _, p := range preset.Points {
			if p[0] < 0 || p[0] > 100 || p[1] < 0 || p[1] > 100 {
				return fmt.Errorf("presets: preset %s has a point outside 0..100", preset.Name)
			}
		}
	}
	return nil
}

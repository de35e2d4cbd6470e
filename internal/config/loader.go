package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load reads a game config with the standard search order:
// customPath -> ~/.calcade/configs/<name>.yaml -> ./configs/<name>.yaml ->
// embedded default. Only an explicitly requested custom path surfaces an
// error; every fallback failure degrades to the next source so a broken
// config never blocks game start.
func load(name, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(name + ".yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name+".yaml")); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".calcade", "configs", filename)
}

// LoadKeepup loads the keep-up configuration.
func LoadKeepup(customPath string) (KeepupConfig, error) {
	var cfg KeepupConfig
	if err := load("keepup", customPath, defaultKeepupYAML, &cfg); err != nil {
		return DefaultKeepupConfig(), err
	}
	return cfg, nil
}

// LoadRunner loads the endless runner configuration.
func LoadRunner(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig
	if err := load("runner", customPath, defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), err
	}
	return cfg, nil
}

// LoadShooter loads the shooter configuration.
func LoadShooter(customPath string) (ShooterConfig, error) {
	var cfg ShooterConfig
	if err := load("shooter", customPath, defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), err
	}
	return cfg, nil
}

// LoadRacer loads the lane racer configuration.
func LoadRacer(customPath string) (RacerConfig, error) {
	var cfg RacerConfig
	if err := load("racer", customPath, defaultRacerYAML, &cfg); err != nil {
		return DefaultRacerConfig(), err
	}
	return cfg, nil
}

package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for the simulator.
type Settings struct {
	Logging struct {
		// Level is one of "debug", "info", "warn" or "error".
		Level string
		// Format is one of "console", "text" or "json".
		Format string
		// File, if set, is the file logs are written to instead of stdout.
		File string
	}
	Simulation struct {
		TickRate        int
		MaxCatchUpSteps int
		HistorySize     int
		// FrameTime is the time in milliseconds between input samples.
		FrameTime int
		// Workers is the amount of scenarios simulated in parallel. Zero uses one per CPU.
		Workers int
	}
	Controller locomotion.Config
	Sentry     struct {
		DSN         string
		Environment string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Logging.Level = "info"
	s.Logging.Format = "console"

	s.Simulation.TickRate = 50
	s.Simulation.MaxCatchUpSteps = 5
	s.Simulation.HistorySize = 256
	s.Simulation.FrameTime = 16

	s.Controller = locomotion.DefaultConfig()
	s.Sentry.Environment = "development"
	return s
}

// Validate returns an error if the settings cannot be used to run a simulation.
func (s Settings) Validate() error {
	if s.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation.tickrate must be positive, got %d", s.Simulation.TickRate)
	}
	if s.Simulation.FrameTime <= 0 {
		return fmt.Errorf("simulation.frametime must be positive, got %d", s.Simulation.FrameTime)
	}
	if err := s.Controller.Validate(); err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	return nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %w", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %w", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

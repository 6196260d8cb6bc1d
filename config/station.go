// Package config loads and saves the persisted station configuration: flat
// key-value station state in YAML, following the teacher's
// cwskimmer_config.go pattern (load -> defaults -> Validate).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwsl/ftcore/js8"
)

// TransceiverProfile names which backend drives the radio (spec §6): the
// streaming-radio serial bridge, or a conventional CAT model.
type TransceiverProfile struct {
	Kind  string `yaml:"kind"` // "streamradio" or "cat"
	Port  string `yaml:"port"`
	Baud  int    `yaml:"baud"`
	Model string `yaml:"model,omitempty"` // CAT model id, when Kind == "cat"
}

// StationConfig is the flat persisted state named in spec §6: callsign,
// grid, selected mode, selected JS8 speed, selected band, dial frequency,
// chosen transceiver profile.
type StationConfig struct {
	Callsign      string             `yaml:"callsign"`
	Grid          string             `yaml:"grid"`
	Mode          string             `yaml:"mode"` // "FT8" or "JS8"
	JS8SpeedName  string             `yaml:"js8_speed"`
	Band          string             `yaml:"band"`
	DialFrequency int                `yaml:"dial_frequency_hz"`
	Transceiver   TransceiverProfile `yaml:"transceiver"`
	EvenSlot      bool               `yaml:"even_slot"`
	AutoSequence  bool               `yaml:"auto_sequence"`
}

// Load reads a StationConfig from a YAML file, applying defaults for any
// field left unset.
func Load(filename string) (*StationConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read station config file: %w", err)
	}

	var cfg StationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse station config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Save writes cfg to filename as YAML.
func Save(filename string, cfg *StationConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal station config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write station config file: %w", err)
	}
	return nil
}

func applyDefaults(cfg *StationConfig) {
	if cfg.Mode == "" {
		cfg.Mode = "FT8"
	}
	if cfg.JS8SpeedName == "" {
		cfg.JS8SpeedName = "Normal"
	}
	if cfg.Transceiver.Kind == "" {
		cfg.Transceiver.Kind = "streamradio"
	}
	if cfg.Transceiver.Baud == 0 {
		cfg.Transceiver.Baud = 115200
	}
}

// JS8Speed resolves JS8SpeedName to a js8.Speed, defaulting to js8.Normal
// for an unrecognised name.
func (c *StationConfig) JS8Speed() js8.Speed {
	switch c.JS8SpeedName {
	case "Ultra":
		return js8.Ultra
	case "Slow":
		return js8.Slow
	case "Fast":
		return js8.Fast
	case "Turbo":
		return js8.Turbo
	default:
		return js8.Normal
	}
}

// Validate checks the configuration is complete enough to operate (spec §7
// "Configuration — missing callsign, unsupported model, invalid baud").
func (c *StationConfig) Validate() error {
	if c.Callsign == "" {
		return fmt.Errorf("station callsign cannot be empty")
	}
	if c.Mode != "FT8" && c.Mode != "JS8" {
		return fmt.Errorf("station mode must be FT8 or JS8, got %q", c.Mode)
	}
	switch c.Transceiver.Kind {
	case "streamradio":
		if c.Transceiver.Port == "" {
			return fmt.Errorf("transceiver port cannot be empty")
		}
		if c.Transceiver.Baud < 1 {
			return fmt.Errorf("transceiver baud must be positive")
		}
	case "cat":
		if c.Transceiver.Model == "" {
			return fmt.Errorf("transceiver model cannot be empty for a CAT profile")
		}
	default:
		return fmt.Errorf("unsupported transceiver kind %q", c.Transceiver.Kind)
	}
	return nil
}

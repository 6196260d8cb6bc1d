package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwsl/ftcore/js8"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "station.yaml")
	if err := os.WriteFile(path, []byte("callsign: W1AW\ngrid: FN31\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != "FT8" {
		t.Fatalf("Mode = %q, want FT8 default", cfg.Mode)
	}
	if cfg.Transceiver.Baud != 115200 {
		t.Fatalf("Transceiver.Baud = %d, want 115200 default", cfg.Transceiver.Baud)
	}
	if cfg.Transceiver.Kind != "streamradio" {
		t.Fatalf("Transceiver.Kind = %q, want streamradio default", cfg.Transceiver.Kind)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "station.yaml")

	cfg := &StationConfig{
		Callsign:      "DL1ABC",
		Grid:          "JO31",
		Mode:          "JS8",
		JS8SpeedName:  "Fast",
		DialFrequency: 7078000,
		Transceiver:   TransceiverProfile{Kind: "streamradio", Port: "/dev/ttyUSB0", Baud: 115200},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Callsign != cfg.Callsign || got.Grid != cfg.Grid || got.Mode != cfg.Mode {
		t.Fatalf("round trip = %+v, want %+v", got, cfg)
	}
	if got.JS8Speed() != js8.Fast {
		t.Fatalf("JS8Speed() = %v, want Fast", got.JS8Speed())
	}
}

func TestValidateMissingCallsign(t *testing.T) {
	cfg := &StationConfig{Mode: "FT8", Transceiver: TransceiverProfile{Kind: "streamradio", Port: "/dev/ttyUSB0", Baud: 115200}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing callsign")
	}
}

func TestValidateStreamradioRequiresPort(t *testing.T) {
	cfg := &StationConfig{Callsign: "W1AW", Mode: "FT8", Transceiver: TransceiverProfile{Kind: "streamradio", Baud: 115200}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing transceiver port")
	}
}

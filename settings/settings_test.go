package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatalf("expected error when the file already exists")
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("loaded settings differ from defaults:\n%+v\n%+v", s, DefaultSettings())
	}
}

func TestLoadKeepsDefaultsForMissingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	data := []byte(`
[Simulation]
TickRate = 120

[Controller]
max_speed = 7.5
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Simulation.TickRate != 120 || s.Simulation.FrameTime != 16 {
		t.Fatalf("simulation settings = %+v", s.Simulation)
	}
	if s.Controller.MaxSpeed != 7.5 || s.Controller.JumpHeight != DefaultSettings().Controller.JumpHeight {
		t.Fatalf("controller settings = %+v", s.Controller)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("[Simulation]\nTickRate = 0\n"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for a zero tick rate")
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-tonal/compose"
	"go-tonal/music"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	tone, err := cfg.StartTone()
	if err != nil || tone.Code(true) != "C4" {
		t.Errorf("StartTone() = %s, %v", tone, err)
	}
	if out := cfg.Output(); out.Channel != 0 || out.Velocity != 100 {
		t.Errorf("Output() = %+v", out)
	}
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Explorer.Key != compose.Major {
		t.Errorf("key = %q", cfg.Explorer.Key)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("explorer:\n  letter: F\n  alteration: 1\n  octave: 3\n  key: minor\n  centStep: 5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	tone, err := cfg.StartTone()
	if err != nil || tone.Code(true) != "F#3" {
		t.Errorf("StartTone() = %s, %v", tone, err)
	}
	if cfg.Explorer.Key != compose.Minor {
		t.Errorf("key = %q", cfg.Explorer.Key)
	}
	if !cfg.Display.Concise || cfg.MIDI.Velocity != 100 {
		t.Errorf("untouched sections lost their defaults: %+v", cfg)
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("explorer:\n  letter: H\nmidi:\n  channel: 17\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	if !errors.Is(err, music.ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.Explorer.Letter = "E"
	cfg.Display.Palette = "plasma.gpl"
	if err := cfg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

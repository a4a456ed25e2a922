package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"go-tonal/compose"
	"go-tonal/midi"
	"go-tonal/music"
)

// DisplayConfig stores rendering preferences
type DisplayConfig struct {
	Concise bool   `yaml:"concise"`
	Palette string `yaml:"palette,omitempty"` // GIMP .gpl file, empty = built-in
}

// ExplorerConfig is the explorer's starting state
type ExplorerConfig struct {
	Letter     string      `yaml:"letter"` // "C".."B"
	Alteration int         `yaml:"alteration"`
	Octave     int         `yaml:"octave"`
	Key        compose.Key `yaml:"key"`
	CentStep   float64     `yaml:"centStep"` // cents per adjust keypress
}

// MIDIConfig describes how pitches map onto a synth channel
type MIDIConfig struct {
	Channel   uint8   `yaml:"channel"` // 1-16
	Velocity  uint8   `yaml:"velocity"`
	BendRange float64 `yaml:"bendRange"` // semitones
}

// Config is the main configuration structure
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Explorer ExplorerConfig `yaml:"explorer"`
	MIDI     MIDIConfig     `yaml:"midi"`
	Debug    bool           `yaml:"debug,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Concise: true,
		},
		Explorer: ExplorerConfig{
			Letter:   "C",
			Octave:   music.OctaveOneLine,
			Key:      compose.Major,
			CentStep: 10,
		},
		MIDI: MIDIConfig{
			Channel:   1,
			Velocity:  100,
			BendRange: 2,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-tonal"), nil
}

// ConfigPath returns the full path to config.yaml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a config file over the defaults. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to the default location
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config to path, creating its directory
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges the YAML types can't express
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.StartTone(); err != nil {
		errs = append(errs, err)
	}
	if !c.Explorer.Key.Valid() {
		errs = append(errs, fmt.Errorf("explorer.key %q: %w", c.Explorer.Key, music.ErrInvalidArgument))
	}
	if c.Explorer.CentStep <= 0 {
		errs = append(errs, fmt.Errorf("explorer.centStep %v: %w", c.Explorer.CentStep, music.ErrInvalidArgument))
	}
	if c.MIDI.Channel < 1 || c.MIDI.Channel > 16 {
		errs = append(errs, fmt.Errorf("midi.channel %d: %w", c.MIDI.Channel, music.ErrInvalidArgument))
	}
	if c.MIDI.Velocity > 127 {
		errs = append(errs, fmt.Errorf("midi.velocity %d: %w", c.MIDI.Velocity, music.ErrInvalidArgument))
	}
	return errors.Join(errs...)
}

var letterNames = map[string]music.Letter{
	"C": music.C, "D": music.D, "E": music.E, "F": music.F,
	"G": music.G, "A": music.A, "B": music.B,
}

// StartTone is the explorer's initial tone
func (c *Config) StartTone() (music.Tone, error) {
	letter, ok := letterNames[c.Explorer.Letter]
	if !ok {
		return music.Tone{}, fmt.Errorf("explorer.letter %q: %w", c.Explorer.Letter, music.ErrInvalidArgument)
	}
	return music.NewTone(letter, music.Alteration(c.Explorer.Alteration), c.Explorer.Octave)
}

// Output converts the MIDI section (1-based channel) to a midi.Output
func (c *Config) Output() midi.Output {
	return midi.Output{
		Channel:   c.MIDI.Channel - 1,
		Velocity:  c.MIDI.Velocity,
		BendRange: c.MIDI.BendRange,
	}
}

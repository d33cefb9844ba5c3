package ballpit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration for a ballpit window.
//
//	window:
//	  title: ballpit
//	  showFPS: true
//	stage:
//	  width: 800
//	  height: 600
//	  epoch: frame
//	  padColors: true
type Config struct {
	Window RunConfig   `yaml:"window"`
	Stage  StageConfig `yaml:"stage"`
}

// DefaultConfig returns an 800×600 window with the FPS overlay off.
func DefaultConfig() Config {
	return Config{
		Window: RunConfig{Title: defaultTitle, TPS: defaultTPS},
		Stage:  StageConfig{Width: 800, Height: 600},
	}
}

// ParseConfig decodes YAML over DefaultConfig. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Stage.Width < 0 || cfg.Stage.Height < 0 {
		return Config{}, fmt.Errorf("parse config: negative viewport %vx%v", cfg.Stage.Width, cfg.Stage.Height)
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// String returns the YAML name of the mode.
func (m EpochMode) String() string {
	switch m {
	case EpochCreation:
		return "creation"
	case EpochFrame:
		return "frame"
	default:
		return fmt.Sprintf("EpochMode(%d)", uint8(m))
	}
}

// UnmarshalYAML accepts "creation" or "frame".
func (m *EpochMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "", "creation":
		*m = EpochCreation
	case "frame":
		*m = EpochFrame
	default:
		return fmt.Errorf("unknown epoch mode %q", s)
	}
	return nil
}

// MarshalYAML writes the mode by name.
func (m EpochMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// Package config loads front-end settings from YAML files and command-line
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Caller bool   `yaml:"caller"`
}

// Settings holds everything a front-end needs to start a sim. Options is
// handed verbatim to the sim factory.
type Settings struct {
	Sim     string            `yaml:"sim"`
	Scale   int               `yaml:"scale"`
	TPS     int               `yaml:"tps"`
	Seed    int64             `yaml:"seed"`
	Log     Log               `yaml:"log"`
	Options map[string]string `yaml:"options"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Sim:     "sand",
		Scale:   4,
		TPS:     60,
		Seed:    1337,
		Log:     Log{Level: "info"},
		Options: map[string]string{},
	}
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return Settings{}, fmt.Errorf("config: decode: %w", err)
	}
	if s.Options == nil {
		s.Options = map[string]string{}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads and parses the file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the front-end fields. Sim options are validated by the
// sim itself.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Sim) == "" {
		return fmt.Errorf("%w: sim must be set", ErrInvalid)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("%w: scale %d must be positive", ErrInvalid, s.Scale)
	}
	if s.TPS <= 0 {
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalid, s.TPS)
	}
	return nil
}

// Merge applies key=value overrides to the sim options. Later entries win.
func (s *Settings) Merge(overrides KVList) error {
	if s.Options == nil {
		s.Options = map[string]string{}
	}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("%w: override %q is not key=value", ErrInvalid, kv)
		}
		s.Options[key] = strings.TrimSpace(value)
	}
	return nil
}

// OptionKeys returns the option keys in sorted order.
func (s Settings) OptionKeys() []string {
	keys := make([]string, 0, len(s.Options))
	for k := range s.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Marshal encodes the settings back to YAML.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

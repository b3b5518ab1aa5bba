// Package config loads the optional oopdemo configuration file.
//
// The file is looked up from the working directory upwards; when none is
// found the defaults apply, which reproduce the plain script run. Both TOML
// and YAML are accepted, chosen by file extension.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file FindAndLoad searches for.
const FileName = "oopdemo.toml"

// Config is the full configuration.
type Config struct {
	Output OutputConfig `toml:"output" yaml:"output"`
	Demos  DemosConfig  `toml:"demos" yaml:"demos"`
	Values ValuesConfig `toml:"values" yaml:"values"`
}

// OutputConfig controls what is printed around the demonstrations.
type OutputConfig struct {
	Headers bool `toml:"headers" yaml:"headers"` // print a title line before each demo
	Verbose bool `toml:"verbose" yaml:"verbose"` // diagnostic log on stderr
}

// DemosConfig selects demonstrations.
type DemosConfig struct {
	// Only restricts the run to these names, in registry order. Empty means all.
	Only []string `toml:"only" yaml:"only"`

	// ShowFailures also runs the invocations that are expected to fail and
	// prints their errors.
	ShowFailures bool `toml:"show_failures" yaml:"show_failures"`
}

// ValuesConfig holds the literals the demonstrations feed their types.
type ValuesConfig struct {
	// Update is written through the setter by object-literal and class.
	Update int `toml:"update" yaml:"update"`

	// ConstructorArg seeds MyClass2; Assigned is then written through its
	// setter.
	ConstructorArg int `toml:"constructor_arg" yaml:"constructor_arg"`
	Assigned       int `toml:"assigned" yaml:"assigned"`

	Private string `toml:"private" yaml:"private"`
}

// Default returns the configuration matching the bare script.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Headers: true},
		Values: ValuesConfig{
			Update:         20,
			ConstructorArg: 20,
			Assigned:       30,
			Private:        "private",
		},
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values the demonstrations cannot work with.
func (c *Config) Validate() error {
	if c.Values.Private == "" {
		return fmt.Errorf("%w: values.private must not be empty", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Demos.Only))
	for _, name := range c.Demos.Only {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: demos.only contains an empty name", ErrInvalid)
		}
		if seen[name] {
			return fmt.Errorf("%w: demos.only lists %q twice", ErrInvalid, name)
		}
		seen[name] = true
	}
	return nil
}

// FindAndLoad walks up from startDir looking for FileName. It returns the
// defaults and an empty path when there is none.
func FindAndLoad(startDir string) (*Config, string, error) {
	path := FindConfigFile(startDir)
	if path == "" {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// FindConfigFile returns the nearest FileName at or above startDir, or "".
func FindConfigFile(startDir string) string {
	dir := startDir
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load reads path over the defaults and validates the result. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	default:
		err = fmt.Errorf("%w: unsupported extension %q", ErrInvalid, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

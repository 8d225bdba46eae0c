package globalconfig

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jaspreet-dot-casa/parentpaths/pkg/parentpaths"
	"github.com/jaspreet-dot-casa/parentpaths/pkg/project"
	"github.com/jaspreet-dot-casa/parentpaths/pkg/utils"
)

// Version is the current config schema version.
const Version = "1.0"

// ErrPresetNotFound is returned when a preset name is not defined in any loaded config.
var ErrPresetNotFound = errors.New("preset not found")

// Config is the merged resolve-parent-paths configuration.
type Config struct {
	Version string            `yaml:"version"`
	Mode    string            `yaml:"mode,omitempty"`    // Default mode when --mode is not given
	Presets map[string]Preset `yaml:"presets,omitempty"` // Named fragment sets

	// Sources lists the files merged into this config, global first.
	Sources []string `yaml:"-"`
}

// Preset is a named fragment list with optional mode and base directory.
// Fields are loosely typed so that malformed files surface the same
// argument and option errors as the library.
type Preset struct {
	Paths any `yaml:"paths"`
	Mode  any `yaml:"mode,omitempty"`
	Dir   any `yaml:"dir,omitempty"`
}

// NewConfig creates a new Config with defaults.
func NewConfig() *Config {
	return &Config{
		Version: Version,
		Presets: map[string]Preset{},
	}
}

// LoadFile reads a single config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Presets == nil {
		cfg.Presets = map[string]Preset{}
	}
	cfg.Sources = []string{path}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load returns the global config merged with the nearest project config
// above startDir. Missing files are skipped; an empty startDir means the
// working directory.
func Load(startDir string) (*Config, error) {
	cfg := NewConfig()

	globalPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	if err := cfg.mergeFile(globalPath); err != nil {
		return nil, err
	}

	localPath, err := project.FindFile(startDir, LocalConfigFileName)
	switch {
	case errors.Is(err, project.ErrFileNotFound):
	case err != nil:
		return nil, fmt.Errorf("failed to locate %s: %w", LocalConfigFileName, err)
	default:
		if err := cfg.mergeFile(localPath); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// mergeFile overlays the config at path. A missing path, or one that is
// not a regular file, is skipped.
func (c *Config) mergeFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil
	}
	other, err := LoadFile(path)
	if err != nil {
		return err
	}
	c.Merge(other)
	return nil
}

// Merge overlays other onto c. A non-empty mode replaces c's mode and
// presets replace those with the same name.
func (c *Config) Merge(other *Config) {
	if other.Mode != "" {
		c.Mode = other.Mode
	}
	if c.Presets == nil {
		c.Presets = map[string]Preset{}
	}
	for name, p := range other.Presets {
		c.Presets[name] = p
	}
	c.Sources = append(c.Sources, other.Sources...)
}

// Validate checks the default mode and preset names. Preset contents are
// validated when the preset is used.
func (c *Config) Validate() error {
	if _, err := parentpaths.ParseMode(c.Mode); err != nil {
		return err
	}
	for name := range c.Presets {
		if err := utils.ValidatePresetName(name); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return nil
}

// DefaultMode returns the configured mode, or parentpaths.DefaultMode.
func (c *Config) DefaultMode() parentpaths.Mode {
	mode, err := parentpaths.ParseMode(c.Mode)
	if err != nil {
		return parentpaths.DefaultMode
	}
	return mode
}

// Preset returns the named preset.
func (c *Config) Preset(name string) (Preset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return p, nil
}

// PresetNames returns the defined preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fragments returns the preset's paths as fragments. A preset without
// paths contributes none.
func (p Preset) Fragments() ([]string, error) {
	if p.Paths == nil {
		return []string{}, nil
	}
	return parentpaths.Fragments(p.Paths)
}

// Options returns the preset's mode and base directory as resolver options.
// Unset or null fields are left empty.
func (p Preset) Options() (*parentpaths.Options, error) {
	m := map[string]any{}
	if p.Dir != nil {
		m["dir"] = p.Dir
	}
	if p.Mode != nil {
		m["mode"] = p.Mode
	}
	opts, err := parentpaths.ParseOptions(m)
	if err != nil {
		return nil, err
	}
	if p.Mode == nil {
		opts.Mode = ""
	}
	return opts, nil
}

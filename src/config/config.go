// Package config loads badgen project configuration from YAML or TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Default config files, tried in order when no path is given.
var defaultConfigFiles = []string{".badgen.yml", ".badgen.yaml", ".badgen.toml"}

// Config is the top-level badgen configuration.
type Config struct {
	Defaults Defaults    `yaml:"defaults" toml:"defaults"`
	Badges   []BadgeItem `yaml:"badges" toml:"badges"`
	Serve    Serve       `yaml:"serve" toml:"serve"`
}

// Defaults holds fallbacks applied to every badge item.
type Defaults struct {
	Style     string `yaml:"style" toml:"style"`           // preset name (default: "classic")
	Font      string `yaml:"font" toml:"font"`             // built-in font name
	FontFile  string `yaml:"font_file" toml:"font_file"`   // path to custom TTF/OTF (overrides Font)
	Precision uint8  `yaml:"precision" toml:"precision"`   // path coordinate decimals
	OutputDir string `yaml:"output_dir" toml:"output_dir"` // directory for items without an output path
}

// BadgeItem defines a single badge to generate.
type BadgeItem struct {
	Name       string `yaml:"name" toml:"name"`               // unique identifier, names the output file
	Label      string `yaml:"label" toml:"label"`             // left side text (optional)
	Status     string `yaml:"status" toml:"status"`           // right side text; {version}, {branch} and {sha} expand
	Color      string `yaml:"color" toml:"color"`             // background color, or "auto" for status-driven
	LabelColor string `yaml:"label_color" toml:"label_color"` // label background color
	Style      string `yaml:"style" toml:"style"`             // per-badge style override
	Output     string `yaml:"output" toml:"output"`           // file path (default: <output_dir>/<name>.svg)
	Font       string `yaml:"font" toml:"font"`               // per-badge built-in font override
	FontFile   string `yaml:"font_file" toml:"font_file"`     // per-badge custom font override
	Precision  *uint8 `yaml:"precision" toml:"precision"`     // per-badge precision override
}

// Serve configures the badge HTTP service.
type Serve struct {
	Addr    string `yaml:"addr" toml:"addr"`         // listen address (default: ":8080")
	LogFile string `yaml:"log_file" toml:"log_file"` // rotated JSON access log (default: stderr, text)
}

// Load reads configuration from a YAML or TOML file, picked by extension.
// An empty path tries the default files in order. A missing file yields
// defaults. Style and color values are checked here so mistakes surface
// at startup rather than mid-generation.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, candidate := range defaultConfigFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return defaults(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if filepath.Ext(path) == ".toml" {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Defaults: Defaults{
			Style:     "classic",
			Font:      "go-regular",
			OutputDir: ".badgen",
		},
		Serve: Serve{
			Addr: ":8080",
		},
	}
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Badges))
	for i := range c.Badges {
		item := &c.Badges[i]
		if item.Name == "" {
			return fmt.Errorf("badges[%d]: name is required", i)
		}
		if seen[item.Name] {
			return fmt.Errorf("badges[%d]: duplicate name %q", i, item.Name)
		}
		seen[item.Name] = true
		if item.Status == "" {
			return fmt.Errorf("badge %s: status is required", item.Name)
		}
		if _, err := item.ResolveStyle(c.Defaults); err != nil {
			return fmt.Errorf("badge %s: %w", item.Name, err)
		}
	}
	return nil
}

// OutputPath returns the path the badge should be written to.
func (b *BadgeItem) OutputPath(d Defaults) string {
	if b.Output != "" {
		return b.Output
	}
	dir := d.OutputDir
	if dir == "" {
		dir = ".badgen"
	}
	return filepath.Join(dir, b.Name+".svg")
}

// StatusTemplated reports whether the status contains placeholders that
// need git version information to resolve.
func (b *BadgeItem) StatusTemplated() bool {
	return strings.Contains(b.Status, "{")
}

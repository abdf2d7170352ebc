package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/utils"
)

// FileNames are the names searched, in order, in the working directory
// and then in the user config directory (~/.config/gridlayout/).
var FileNames = []string{"gridlayout.yaml", "gridlayout.yml", "gridlayout.toml"}

// Load uses [path] if not empty, or discovers a config file from
// the working directory.
func Load(path string) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd, path)
}

// LoadFrom merges the defaults with the config file (either [path] or the
// first file found from [dir]), then applies the GRIDLAYOUT_* environment
// variables, and validates the result.
func LoadFrom(dir, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = discoverConfigPath(dir)
	}

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath returns an empty string if no file is found.
func discoverConfigPath(dir string) string {
	var dirs []string
	if dir != "" {
		dirs = append(dirs, dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "gridlayout"))
	}
	for _, d := range dirs {
		for _, name := range FileNames {
			path := filepath.Join(d, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// loadFromFile decodes YAML or TOML, depending on the file extension.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	return &cfg, nil
}

// merge overrides base with the non-zero fields of override.
func merge(base *Config, override *Config) {
	if override.Width != 0 {
		base.Width = override.Width
	}
	if override.Metrics != "" {
		base.Metrics = override.Metrics
	}
	if override.FontSize != 0 {
		base.FontSize = override.FontSize
	}
	if override.Format != "" {
		base.Format = override.Format
	}
	if override.Precision != 0 {
		base.Precision = override.Precision
	}
}

func envFloat(name string, target *utils.Fl) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if f, err := strconv.ParseFloat(v, 32); err == nil {
		*target = utils.Fl(f)
	} else {
		logger.WarningLogger.Printf("%s=%q is not a valid number, ignoring", name, v)
	}
}

// applyEnvOverrides applies GRIDLAYOUT_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	envFloat("GRIDLAYOUT_WIDTH", &cfg.Width)
	envFloat("GRIDLAYOUT_FONT_SIZE", &cfg.FontSize)
	if v := os.Getenv("GRIDLAYOUT_METRICS"); v != "" {
		cfg.Metrics = v
	}
	if v := os.Getenv("GRIDLAYOUT_FORMAT"); v != "" {
		cfg.Format = v
	}
}

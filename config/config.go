// Package config reads the optional bir.toml / bir.yaml file that tunes the
// command line front end.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"github.com/canpacis/bir/parser"
)

// Names lists the file names Find looks for, in order.
var Names = []string{"bir.toml", "bir.yaml", "bir.yml"}

type Config struct {
	// VerbosityLevel is passed to commonlog: 0 shows notices and warnings,
	// 1 adds info, 2 adds debug, negative values are quieter.
	VerbosityLevel int `toml:"verbosity_level" yaml:"verbosity_level"`
	// MaximumNestingDepth bounds parser recursion.
	MaximumNestingDepth int `toml:"maximum_nesting_depth" yaml:"maximum_nesting_depth"`
}

func Default() *Config {
	return &Config{
		VerbosityLevel:      0,
		MaximumNestingDepth: parser.DefaultMaxDepth,
	}
}

// Load reads the file at path. The format follows the extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Find loads the first of Names present in dir. Without one the defaults
// are returned. A file that cannot be read or parsed is reported and the
// defaults are used instead.
func Find(dir string) *Config {
	log := commonlog.GetLogger("bir.config")
	for _, name := range Names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		cfg, err := Load(path)
		if err != nil {
			log.Warningf("could not properly parse the config file %s: %s", path, err)
			return Default()
		}
		log.Debugf("loaded %s", path)
		return cfg
	}
	return Default()
}

func (c *Config) applyDefaults() {
	if c.MaximumNestingDepth <= 0 {
		c.MaximumNestingDepth = parser.DefaultMaxDepth
	}
}

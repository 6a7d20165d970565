// ABOUTME: Optional YAML defaults file for CLI flags that are tedious to repeat
// ABOUTME: CLI flags always win; a missing file is not an error

// Package config loads an optional defaults file for the heapdom CLI.
// Command-line flags always take precedence over whatever is loaded here;
// the file's absence is never an error, only an empty Config.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the subset of CLI flags a defaults file may supply.
// A zero field means "not set"; the CLI applies its own default in that
// case, the same as if the file did not exist.
type Config struct {
	TopN        int    `yaml:"top_n"`
	DotOutput   string `yaml:"dot_output"`
	FlameOutput string `yaml:"flame_output"`
}

// Load reads and parses path. A nonexistent path returns a zero Config and
// a nil error; any other read or parse failure is returned wrapped.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

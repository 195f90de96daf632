// Package config manages the configuration for pythonup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/uranusjr/pythonup/internal/cmdlogger"
	"github.com/uranusjr/pythonup/pkg/tag"
)

var ConfigName = "pythonup.toml"

type Config struct {
	// DefaultVersion is the specifier resolved when a command that
	// takes one is invoked without it.
	DefaultVersion string `toml:"DefaultVersion,omitempty"`
	// Verbosity is the log level used unless --verbosity overrides it.
	Verbosity string `toml:"Verbosity,omitempty"`

	// The path to the config file that this config was loaded from,
	// set after having successfully parsed the file
	LoadPath string `toml:"-"`
}

// Load returns the config at path, or the one at the default location
// under the user config directory when path is empty. Only an
// explicitly given file is required to exist; the default one yields
// the zero config when missing.
func Load(path string) (Config, error) {
	explicit := path != ""

	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, nil
		}
		path = filepath.Join(dir, "pythonup", ConfigName)
	}

	config, err := tryLoadConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("loading config file at %s: %w", path, err)
	}

	return config, nil
}

// DefaultTag returns the configured default version as a tag, and
// whether one is configured at all. The value was validated when the
// config was loaded.
func (c Config) DefaultTag() (tag.Tag, bool) {
	if c.DefaultVersion == "" {
		return tag.Tag{}, false
	}

	return tag.MustParse(c.DefaultVersion), true
}

// tryLoadConfig attempts to parse the config file at the given path as TOML,
// returning the Config object if successful or otherwise the error
func tryLoadConfig(configPath string) (Config, error) {
	config := Config{}

	m, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return Config{}, err
	}

	unknownKeys := m.Undecoded()

	if len(unknownKeys) > 0 {
		keys := make([]string, 0, len(unknownKeys))

		for _, key := range unknownKeys {
			keys = append(keys, key.String())
		}

		return Config{}, fmt.Errorf("unknown keys in config file: %s", strings.Join(keys, ", "))
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}

	config.LoadPath = configPath

	return config, nil
}

func (c Config) validate() error {
	if c.DefaultVersion != "" {
		if _, err := tag.Parse(c.DefaultVersion); err != nil {
			return fmt.Errorf("DefaultVersion: %w", err)
		}
	}

	if c.Verbosity != "" {
		if _, err := cmdlogger.ParseLevel(c.Verbosity); err != nil {
			return fmt.Errorf("Verbosity: %w", err)
		}
	}

	return nil
}

package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/335g/clidoc/pkg/deps"
	"github.com/335g/clidoc/pkg/docs"
	"github.com/335g/clidoc/pkg/errors"
)

// configEnv overrides the config file location.
const configEnv = "CLIDOC_CONFIG"

// Config holds settings read from the config file. Command-line flags that
// are set explicitly take precedence.
type Config struct {
	Sync         bool   `toml:"sync"`
	ManifestPath string `toml:"manifest_path"`
	DocsURL      string `toml:"docs_url"`
	Cargo        string `toml:"cargo"`
	Offline      bool   `toml:"offline"`
	Open         bool   `toml:"open"`
}

// defaultConfig returns the settings used when no config file exists.
func defaultConfig() Config {
	return Config{
		DocsURL: docs.DefaultBaseURL,
		Cargo:   deps.DefaultCargo,
		Open:    true,
	}
}

// configPath returns the config file location: $CLIDOC_CONFIG, or
// config.toml under the XDG config directory (~/.config/clidoc/). explicit
// is true when the location came from $CLIDOC_CONFIG.
func configPath() (path string, explicit bool, err error) {
	if p := os.Getenv(configEnv); p != "" {
		return p, true, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), false, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), false, nil
}

// loadConfig reads the config file at path on top of the defaults. A missing
// file yields the defaults unless required is set.
func loadConfig(path string, required bool) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return defaultConfig(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if cfg.DocsURL == "" {
		cfg.DocsURL = docs.DefaultBaseURL
	}
	if err := errors.ValidateURL(cfg.DocsURL); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "docs_url in %s", path)
	}
	if cfg.Cargo == "" {
		cfg.Cargo = deps.DefaultCargo
	}
	return cfg, nil
}

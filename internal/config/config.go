// Package config provides loading and saving of the per-user stargate
// configuration file.
//
// The file is small YAML holding the provider API key and the default network.
// It is read wholesale at start-up and rewritten wholesale by the `config set`
// commands. A missing or malformed file behaves like an empty one, so a bad
// manual edit never locks the user out of the tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dando385/stargate/internal/log"
	"github.com/dando385/stargate/internal/networks"
)

const (
	// EnvPath overrides the config file location.
	EnvPath = "STARGATE_CONFIG"

	dirName  = ".stargate"
	fileName = "config.yaml"
)

// ErrUnparseable marks a config file whose contents are not valid YAML for Config.
var ErrUnparseable = errors.New("unparseable config")

// IOError reports a failure to persist the config file.
// It never carries config values, only the operation, path and cause.
type IOError struct {
	Op   string // "resolve path", "create directory", "serialize" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("config %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Config is the persisted user configuration.
type Config struct {
	APIKey         string `yaml:"api_key,omitempty"`         // Provider API key (secret)
	DefaultNetwork string `yaml:"default_network,omitempty"` // Canonical network name, never an alias
}

// Path returns the config file location: $STARGATE_CONFIG if set, otherwise
// ~/.stargate/config.yaml.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &IOError{Op: "resolve path", Err: err}
	}
	return filepath.Join(home, dirName, fileName), nil
}

// Parse decodes YAML config data. Empty input yields the default config.
//
// Returns:
//   - *Config: decoded configuration
//   - error: wraps ErrUnparseable when data is not a valid config document
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return &cfg, nil
}

// Load reads the config file at path.
//
// Load never fails. A missing file, an unreadable file, or a file that Parse
// rejects all yield the default (empty) config; the latter two are logged at
// debug level so the fallback is visible with --verbose.
func Load(path string) *Config {
	logger := log.Config.With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Debug().Err(err).Msg("config unreadable, using defaults")
		}
		return &Config{}
	}

	cfg, err := Parse(data)
	if err != nil {
		logger.Debug().Err(err).Msg("config malformed, using defaults")
		return &Config{}
	}

	logger.Debug().
		Bool("api_key_set", cfg.HasAPIKey()).
		Str("default_network", cfg.DefaultNetwork).
		Msg("config loaded")
	return cfg
}

// Save writes the whole config to path, creating the parent directory 0700.
// The file is replaced through a 0600 temp file in the same directory, so an
// existing file with looser permissions ends up 0600 and a failed write never
// leaves a partial config behind.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return &IOError{Op: "create directory", Path: dir, Err: err}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return &IOError{Op: "serialize", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return &IOError{Op: "create temp file", Path: dir, Err: err}
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &IOError{Op: "write", Path: tmp.Name(), Err: err}
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return &IOError{Op: "chmod", Path: tmp.Name(), Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "write", Path: tmp.Name(), Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Op: "replace", Path: path, Err: err}
	}

	log.Config.Debug().Str("path", path).Msg("config saved")
	return nil
}

// HasAPIKey reports whether an API key is configured.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// SetAPIKey stores key. It does not save.
func (c *Config) SetAPIKey(key string) error {
	if key == "" {
		return errors.New("API key cannot be empty")
	}
	c.APIKey = key
	return nil
}

// SetDefaultNetwork resolves query (name, alias or chain ID) and stores the
// canonical name. It does not save. Unknown queries return
// *networks.UnknownNetworkError and leave the config unchanged.
func (c *Config) SetDefaultNetwork(query string) (networks.Network, error) {
	n, err := networks.Lookup(query)
	if err != nil {
		return networks.Network{}, err
	}
	c.DefaultNetwork = n.Name
	return n, nil
}

// DefaultNetworkName returns the configured default network, or the local
// network when none is set.
func (c *Config) DefaultNetworkName() string {
	if c.DefaultNetwork == "" {
		return networks.Local().Name
	}
	return c.DefaultNetwork
}

// String implements fmt.Stringer without exposing the API key.
func (c Config) String() string {
	return fmt.Sprintf("{api_key: %s, default_network: %q}", redact(c.APIKey), c.DefaultNetwork)
}

// GoString implements fmt.GoStringer so %#v is redacted as well.
func (c Config) GoString() string {
	return fmt.Sprintf("config.Config{APIKey: %s, DefaultNetwork: %q}", redact(c.APIKey), c.DefaultNetwork)
}

func redact(secret string) string {
	if secret == "" {
		return "<unset>"
	}
	return "<redacted>"
}

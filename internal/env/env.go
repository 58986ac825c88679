// Package env reads the process environment: the session variables written by
// a previous `switch`, the API key override, and an optional .env file.
package env

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/dando385/stargate/internal/exports"
)

const (
	// APIKeyVar overrides the configured API key when set and non-empty.
	APIKeyVar = "STARGATE_API_KEY"
	// LogLevelVar sets the default --log-level.
	LogLevelVar = "STARGATE_LOG_LEVEL"
)

// dotenvAllowed are the only variables Load takes from a .env file. Session
// state and the config location must come from the shell itself.
var dotenvAllowed = []string{APIKeyVar, LogLevelVar}

// Session is the network state found in the current shell environment.
type Session struct {
	Network  string // STARGATE_NETWORK
	ChainID  string // STARGATE_CHAIN_ID
	Explorer string // BLOCK_EXPLORER
}

// Active reports whether a network has been selected in this shell.
func (s Session) Active() bool {
	return s.Network != "" && s.ChainID != ""
}

// Current returns the session variables from the process environment.
func Current() Session {
	return Session{
		Network:  os.Getenv(exports.EnvNetwork),
		ChainID:  os.Getenv(exports.EnvChainID),
		Explorer: os.Getenv(exports.EnvExplorer),
	}
}

// Load reads a .env file in the current working directory and exports the
// API key and log level found there. Other keys in the file are ignored, and
// variables already present in the environment win over the file.
// A missing .env file is not an error.
func Load() error {
	vars, err := godotenv.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, key := range dotenvAllowed {
		v, ok := vars[key]
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, v); err != nil {
			return err
		}
	}
	return nil
}

// APIKey returns the effective provider API key: $STARGATE_API_KEY when set,
// otherwise configured.
func APIKey(configured string) string {
	if v := os.Getenv(APIKeyVar); v != "" {
		return v
	}
	return configured
}

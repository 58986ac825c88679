package main

import (
	"errors"

	"github.com/dando385/stargate/internal/config"
	"github.com/dando385/stargate/internal/exports"
	"github.com/dando385/stargate/internal/networks"
)

// Process exit codes.
const (
	exitOK             = 0
	exitError          = 1
	exitUnknownNetwork = 2
	exitMissingAPIKey  = 3
	exitConfigIO       = 4
)

func exitCode(err error) int {
	var unknown *networks.UnknownNetworkError
	var ioErr *config.IOError

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &unknown):
		return exitUnknownNetwork
	case errors.Is(err, exports.ErrMissingAPIKey):
		return exitMissingAPIKey
	case errors.As(err, &ioErr):
		return exitConfigIO
	default:
		return exitError
	}
}

// errorHint suggests the command that fixes err, if there is one.
func errorHint(err error) string {
	var unknown *networks.UnknownNetworkError

	switch {
	case errors.As(err, &unknown):
		return "Run 'stargate list' to see available networks."
	case errors.Is(err, exports.ErrMissingAPIKey):
		return "Run 'stargate config set api-key <your-key>' first."
	default:
		return ""
	}
}

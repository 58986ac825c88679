// Package exports turns a resolved network into the shell statements that the
// `sg` shell function evaluates.
//
// The output is a line protocol read by `eval`, so its shape is fixed:
//
//	export ETH_RPC_URL="<rpc url>"
//	export STARGATE_NETWORK="<canonical name>"
//	export STARGATE_CHAIN_ID="<decimal chain id>"
//	export BLOCK_EXPLORER="<explorer url>"   (or: unset BLOCK_EXPLORER)
//
// Values are written verbatim. Registry data contains no double quotes and the
// API key is inserted as typed by the user.
package exports

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dando385/stargate/internal/networks"
)

// Environment variable names written by Format.
const (
	EnvRPCURL   = "ETH_RPC_URL"
	EnvNetwork  = "STARGATE_NETWORK"
	EnvChainID  = "STARGATE_CHAIN_ID"
	EnvExplorer = "BLOCK_EXPLORER"
)

// ErrMissingAPIKey is returned when a provider-backed network is requested
// without an API key.
var ErrMissingAPIKey = errors.New("no API key configured")

// Session is the state exported to the shell for one switch.
type Session struct {
	Network networks.Network
	RPCURL  string
}

// NewSession builds the session for n.
//
// Networks served by the hosted provider need a non-empty apiKey; without one
// no URL is built and ErrMissingAPIKey is returned. The local network accepts
// an empty key.
func NewSession(n networks.Network, apiKey string) (*Session, error) {
	if n.RequiresAPIKey() && apiKey == "" {
		return nil, fmt.Errorf("%s: %w", n.Name, ErrMissingAPIKey)
	}
	return &Session{
		Network: n,
		RPCURL:  n.RPCURL(apiKey),
	}, nil
}

// Format renders the session as newline-terminated shell statements.
func (s *Session) Format() string {
	var b strings.Builder

	writeExport(&b, EnvRPCURL, s.RPCURL)
	writeExport(&b, EnvNetwork, s.Network.Name)
	writeExport(&b, EnvChainID, strconv.FormatUint(s.Network.ChainID, 10))

	if s.Network.HasExplorer() {
		writeExport(&b, EnvExplorer, s.Network.ExplorerURL)
	} else {
		writeUnset(&b, EnvExplorer)
	}

	return b.String()
}

// String describes the session without the RPC URL, which embeds the API key.
func (s *Session) String() string {
	return fmt.Sprintf("%s (%d)", s.Network.Name, s.Network.ChainID)
}

func writeExport(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "export %s=\"%s\"\n", name, value)
}

func writeUnset(b *strings.Builder, name string) {
	fmt.Fprintf(b, "unset %s\n", name)
}

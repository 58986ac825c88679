package networks

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownNetworkError is returned by Lookup when no network matches the query.
type UnknownNetworkError struct {
	Query string
}

func (e *UnknownNetworkError) Error() string {
	return fmt.Sprintf("unknown network: %q", e.Query)
}

// Resolve finds the network identified by query.
//
// Matching precedence:
//  1. canonical name (case-insensitive)
//  2. alias (case-insensitive)
//  3. chain ID, when query parses as a base-10 uint64 ("001" matches chain 1)
//
// The query is lower-cased but otherwise used as-is; surrounding whitespace
// is not trimmed. An empty query never matches.
func Resolve(query string) (Network, bool) {
	return registryIndex.resolve(registry, query)
}

// Lookup is Resolve with a typed error for the no-match case.
func Lookup(query string) (Network, error) {
	n, ok := Resolve(query)
	if !ok {
		return Network{}, &UnknownNetworkError{Query: query}
	}
	return n, nil
}

func (idx *index) resolve(table []Network, query string) (Network, bool) {
	q := strings.ToLower(query)

	if i, ok := idx.byName[q]; ok {
		return table[i], true
	}
	if i, ok := idx.byAlias[q]; ok {
		return table[i], true
	}

	// ParseUint rejects signs, spaces and the empty string.
	if id, err := strconv.ParseUint(query, 10, 64); err == nil {
		if i, ok := idx.byChainID[id]; ok {
			return table[i], true
		}
	}

	return Network{}, false
}

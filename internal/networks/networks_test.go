package networks

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestResolveByName(t *testing.T) {
	for _, n := range All() {
		for _, q := range []string{n.Name, strings.ToUpper(n.Name), strings.ToUpper(n.Name[:1]) + n.Name[1:]} {
			got, ok := Resolve(q)
			if !ok {
				t.Errorf("Resolve(%q): no match", q)
				continue
			}
			if got.Name != n.Name {
				t.Errorf("Resolve(%q) = %s, want %s", q, got.Name, n.Name)
			}
		}
	}
}

func TestResolveByAlias(t *testing.T) {
	for _, n := range All() {
		for _, a := range n.Aliases {
			for _, q := range []string{a, strings.ToUpper(a)} {
				got, ok := Resolve(q)
				if !ok {
					t.Errorf("Resolve(%q): no match", q)
					continue
				}
				if got.Name != n.Name {
					t.Errorf("Resolve(%q) = %s, want %s", q, got.Name, n.Name)
				}
			}
		}
	}
}

func TestResolveByChainID(t *testing.T) {
	for _, n := range All() {
		q := strconv.FormatUint(n.ChainID, 10)
		got, ok := Resolve(q)
		if !ok {
			t.Errorf("Resolve(%q): no match", q)
			continue
		}
		if got.Name != n.Name {
			t.Errorf("Resolve(%q) = %s, want %s", q, got.Name, n.Name)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantName  string
		wantChain uint64
		wantOK    bool
	}{
		{"canonical", "mainnet", "mainnet", 1, true},
		{"alias arb", "arb", "arbitrum", 42161, true},
		{"alias mixed case", "BsC", "bnb", 56, true},
		{"chain id", "1", "mainnet", 1, true},
		{"chain id leading zeros", "001", "mainnet", 1, true},
		{"local alias", "local", "anvil", 31337, true},
		{"unknown", "not-a-real-chain", "", 0, false},
		{"empty", "", "", 0, false},
		{"unknown chain id", "999999", "", 0, false},
		{"signed chain id", "+1", "", 0, false},
		{"negative chain id", "-1", "", 0, false},
		{"padded name", " mainnet", "", 0, false},
		{"hex chain id", "0x1", "", 0, false},
		{"overflow", "18446744073709551616", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %s, want %s", got.Name, tt.wantName)
			}
			if got.ChainID != tt.wantChain {
				t.Errorf("ChainID = %d, want %d", got.ChainID, tt.wantChain)
			}
		})
	}
}

func TestResolveChainIDMatchesName(t *testing.T) {
	byID, ok := Resolve("1")
	if !ok {
		t.Fatal("Resolve(\"1\"): no match")
	}
	byName, _ := Resolve("mainnet")
	if byID.Name != byName.Name || byID.ChainID != byName.ChainID {
		t.Errorf("Resolve(\"1\") = %s, Resolve(\"mainnet\") = %s", byID.Name, byName.Name)
	}
}

// linearResolve is the first-match scan the indices must agree with.
func linearResolve(table []Network, query string) (Network, bool) {
	q := strings.ToLower(query)
	for _, n := range table {
		if n.Name == q {
			return n, true
		}
		for _, a := range n.Aliases {
			if a == q {
				return n, true
			}
		}
		if id, err := strconv.ParseUint(q, 10, 64); err == nil && id == n.ChainID {
			return n, true
		}
	}
	return Network{}, false
}

func TestResolveAgreesWithLinearScan(t *testing.T) {
	queries := []string{"", "0", "00010", "ETH", "Op", "8453", "31337", "anvil", "sepolia", "polygon-mainnet", "ink"}
	for _, n := range All() {
		queries = append(queries, n.Name, strconv.FormatUint(n.ChainID, 10))
		queries = append(queries, n.Aliases...)
	}

	for _, q := range queries {
		want, wantOK := linearResolve(registry, q)
		got, gotOK := Resolve(q)
		if gotOK != wantOK || got.Name != want.Name {
			t.Errorf("Resolve(%q) = (%s, %v), linear scan = (%s, %v)", q, got.Name, gotOK, want.Name, wantOK)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("not-a-real-chain")
	if err == nil {
		t.Fatal("expected error for unknown network")
	}

	var unknown *UnknownNetworkError
	if !errors.As(err, &unknown) {
		t.Fatalf("error type = %T, want *UnknownNetworkError", err)
	}
	if unknown.Query != "not-a-real-chain" {
		t.Errorf("Query = %q, want %q", unknown.Query, "not-a-real-chain")
	}
}

func TestLookupKnown(t *testing.T) {
	n, err := Lookup("op")
	if err != nil {
		t.Fatalf("Lookup(op): %v", err)
	}
	if n.Name != "optimism" || n.ChainID != 10 {
		t.Errorf("Lookup(op) = %s/%d, want optimism/10", n.Name, n.ChainID)
	}
}

func TestRPCURL(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		apiKey string
		want   string
	}{
		{"mainnet", "mainnet", "test-key", "https://eth-mainnet.g.alchemy.com/v2/test-key"},
		{"polygon", "polygon", "my-api-key", "https://polygon-mainnet.g.alchemy.com/v2/my-api-key"},
		{"empty key passes through", "arbitrum", "", "https://arb-mainnet.g.alchemy.com/v2/"},
		{"key inserted verbatim", "base", "a/b?c=d", "https://base-mainnet.g.alchemy.com/v2/a/b?c=d"},
		{"local ignores key", "anvil", "ignored", "http://127.0.0.1:8545"},
		{"local without key", "anvil", "", "http://127.0.0.1:8545"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := Resolve(tt.query)
			if !ok {
				t.Fatalf("Resolve(%q): no match", tt.query)
			}
			if got := n.RPCURL(tt.apiKey); got != tt.want {
				t.Errorf("RPCURL(%q) = %s, want %s", tt.apiKey, got, tt.want)
			}
		})
	}
}

func TestRegistryWellFormed(t *testing.T) {
	if _, err := buildIndex(registry); err != nil {
		t.Fatalf("registry invalid: %v", err)
	}

	local := 0
	for _, n := range All() {
		if !n.RequiresAPIKey() {
			local++
			if n.HasExplorer() {
				t.Errorf("local network %s should not have an explorer", n.Name)
			}
		}
	}
	if local != 1 {
		t.Errorf("networks without provider = %d, want 1", local)
	}

	if got := Local(); got.Name != "anvil" || got.ChainID != 31337 {
		t.Errorf("Local() = %s/%d, want anvil/31337", got.Name, got.ChainID)
	}
}

func TestRegistryOrder(t *testing.T) {
	want := []string{"mainnet", "polygon", "optimism", "arbitrum", "base", "bnb", "linea", "ink", "anvil"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("len(All()) = %d, want %d", len(all), len(want))
	}
	for i, n := range all {
		if n.Name != want[i] {
			t.Errorf("All()[%d] = %s, want %s", i, n.Name, want[i])
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"
	if n, ok := Resolve("mainnet"); !ok || n.Name != "mainnet" {
		t.Error("mutating All() result changed the registry")
	}
}

func TestBuildIndexRejects(t *testing.T) {
	tests := []struct {
		name  string
		table []Network
		want  string
	}{
		{
			name: "duplicate name",
			table: []Network{
				{Name: "a", ChainID: 1, ProviderSubdomain: "x"},
				{Name: "a", ChainID: 2},
			},
			want: `identifier "a"`,
		},
		{
			name: "alias collides with name",
			table: []Network{
				{Name: "a", ChainID: 1, ProviderSubdomain: "x"},
				{Name: "b", Aliases: []string{"a"}, ChainID: 2},
			},
			want: `identifier "a"`,
		},
		{
			name: "alias collides with alias",
			table: []Network{
				{Name: "a", Aliases: []string{"z"}, ChainID: 1, ProviderSubdomain: "x"},
				{Name: "b", Aliases: []string{"z"}, ChainID: 2},
			},
			want: `identifier "z"`,
		},
		{
			name: "duplicate chain id",
			table: []Network{
				{Name: "a", ChainID: 1, ProviderSubdomain: "x"},
				{Name: "b", ChainID: 1},
			},
			want: "chain id 1",
		},
		{
			name: "uppercase alias",
			table: []Network{
				{Name: "a", Aliases: []string{"Big"}, ChainID: 1},
			},
			want: "not lowercase",
		},
		{
			name: "empty alias",
			table: []Network{
				{Name: "a", Aliases: []string{""}, ChainID: 1},
			},
			want: "empty identifier",
		},
		{
			name: "two local networks",
			table: []Network{
				{Name: "a", ChainID: 1},
				{Name: "b", ChainID: 2},
			},
			want: "both lack a provider",
		},
		{
			name: "no local network",
			table: []Network{
				{Name: "a", ChainID: 1, ProviderSubdomain: "x"},
			},
			want: "no local network",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildIndex(tt.table)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

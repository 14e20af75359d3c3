package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"flightsurety/pkg/domain"
)

// Genesis seeds treasury balances and optional overrides at startup.
type Genesis struct {
	FounderName string
	Accounts    []GenesisAccount
}

// GenesisAccount is one pre-funded address.
type GenesisAccount struct {
	Address domain.Address
	Amount  domain.Amount
}

type genesisFile struct {
	FounderName string           `toml:"founder_name"`
	Accounts    []genesisAccount `toml:"account"`
}

type genesisAccount struct {
	Address string `toml:"address"`
	Units   string `toml:"units"`
}

// LoadGenesis reads a TOML genesis file:
//
//	founder_name = "Founding Airline"
//
//	[[account]]
//	address = "0x..."
//	units = "100"
func LoadGenesis(path string) (Genesis, error) {
	var raw genesisFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Genesis{}, fmt.Errorf("decode genesis %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Genesis{}, fmt.Errorf("genesis %s: unknown key %q", path, undecoded[0].String())
	}

	var g Genesis
	if meta.IsDefined("founder_name") {
		g.FounderName = strings.TrimSpace(raw.FounderName)
		if g.FounderName == "" {
			return Genesis{}, fmt.Errorf("genesis %s: founder_name must not be empty", path)
		}
	}
	seen := make(map[domain.Address]struct{}, len(raw.Accounts))
	for i, acct := range raw.Accounts {
		addr, err := domain.ParseAddress(acct.Address)
		if err != nil {
			return Genesis{}, fmt.Errorf("genesis %s: account %d: %w", path, i, err)
		}
		if _, dup := seen[addr]; dup {
			return Genesis{}, fmt.Errorf("genesis %s: duplicate account %s", path, addr)
		}
		seen[addr] = struct{}{}
		amount, err := domain.ParseUnits(acct.Units)
		if err != nil {
			return Genesis{}, fmt.Errorf("genesis %s: account %d: %w", path, i, err)
		}
		g.Accounts = append(g.Accounts, GenesisAccount{Address: addr, Amount: amount})
	}
	return g, nil
}

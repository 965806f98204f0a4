package action

import (
	"fmt"
	"sort"
)

// Chain is a network an action can target.
type Chain struct {
	Name        string
	ID          uint64
	DisplayName string
}

var chains = map[string]Chain{
	"avalanche":     {Name: "avalanche", ID: 43114, DisplayName: "Avalanche"},
	"fuji":          {Name: "fuji", ID: 43113, DisplayName: "Avalanche Fuji"},
	"celo":          {Name: "celo", ID: 42220, DisplayName: "Celo"},
	"alfajores":     {Name: "alfajores", ID: 44787, DisplayName: "Celo Alfajores"},
	"monad-testnet": {Name: "monad-testnet", ID: 10143, DisplayName: "Monad Testnet"},
	"ethereum":      {Name: "ethereum", ID: 1, DisplayName: "Ethereum"},
}

// LookupChain returns the chain registered under name.
func LookupChain(name string) (Chain, error) {
	c, ok := chains[name]
	if !ok {
		return Chain{}, fmt.Errorf("unsupported chain %q (supported: %v)", name, ChainNames())
	}
	return c, nil
}

// ChainNames lists the supported chain names in sorted order.
func ChainNames() []string {
	names := make([]string, 0, len(chains))
	for name := range chains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

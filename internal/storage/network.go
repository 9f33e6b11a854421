package storage

import (
	"errors"

	"etheroll-go/internal/etheroll"
)

const (
	networkKey   = "network"
	networkField = "value"
)

// NetworkPreference persists the network selected on the settings screen.
type NetworkPreference struct {
	store Store
}

func NewNetworkPreference(store Store) *NetworkPreference {
	return &NetworkPreference{store: store}
}

// StoreNetwork saves the selected network.
func (p *NetworkPreference) StoreNetwork(chain etheroll.ChainID) error {
	return p.store.Put(networkKey, Record{networkField: chain.Name()})
}

// StoredNetwork retrieves the last stored network, defaults to Mainnet.
// A missing record is created on first access.
func (p *NetworkPreference) StoredNetwork() (etheroll.ChainID, error) {
	record, err := p.store.Get(networkKey)
	if errors.Is(err, ErrNotFound) {
		if err := p.store.Put(networkKey, Record{}); err != nil {
			return 0, err
		}
		record, err = p.store.Get(networkKey)
	}
	if err != nil {
		return 0, err
	}
	name, ok := record[networkField]
	if !ok {
		name = etheroll.Mainnet.Name()
	}
	return etheroll.ParseChainID(name)
}

func (p *NetworkPreference) IsStoredMainnet() (bool, error) {
	chain, err := p.StoredNetwork()
	if err != nil {
		return false, err
	}
	return chain == etheroll.Mainnet, nil
}

func (p *NetworkPreference) IsStoredTestnet() (bool, error) {
	chain, err := p.StoredNetwork()
	if err != nil {
		return false, err
	}
	return chain == etheroll.Ropsten, nil
}

package etheroll

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrUnknownChain is returned when a chain name does not match any supported network.
var ErrUnknownChain = errors.New("unknown chain")

// ChainID identifies the network the dice contract is played on.
type ChainID uint64

const (
	Mainnet ChainID = 1
	Ropsten ChainID = 3
)

var chainNames = map[ChainID]string{
	Mainnet: "MAINNET",
	Ropsten: "ROPSTEN",
}

// Name returns the stable name used when persisting the chain.
func (c ChainID) Name() string {
	if name, ok := chainNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CHAIN_%d", uint64(c))
}

func (c ChainID) String() string {
	return c.Name()
}

// BigInt returns the EIP-155 chain id.
func (c ChainID) BigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(c))
}

func (c ChainID) IsTestnet() bool {
	return c == Ropsten
}

// ParseChainID looks a chain up by its stable name.
func ParseChainID(name string) (ChainID, error) {
	for id, n := range chainNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChain, name)
}

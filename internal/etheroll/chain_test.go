package etheroll

import (
	"testing"

	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChainID(t *testing.T) {
	tests := []struct {
		name string
		want ChainID
	}{
		{"MAINNET", Mainnet},
		{"ROPSTEN", Ropsten},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChainID(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.Name())
		})
	}
}

func TestParseChainIDUnknown(t *testing.T) {
	_, err := ParseChainID("KOVAN")
	require.ErrorIs(t, err, ErrUnknownChain)

	_, err = ParseChainID("mainnet")
	require.ErrorIs(t, err, ErrUnknownChain)
}

func TestChainIDBigInt(t *testing.T) {
	assert.Zero(t, Mainnet.BigInt().Cmp(params.MainnetChainConfig.ChainID))
	assert.Equal(t, int64(3), Ropsten.BigInt().Int64())

	Mainnet.BigInt().SetInt64(42)
	assert.Equal(t, int64(1), Mainnet.BigInt().Int64())
}

func TestChainIDIsTestnet(t *testing.T) {
	assert.False(t, Mainnet.IsTestnet())
	assert.True(t, Ropsten.IsTestnet())
	assert.Equal(t, "CHAIN_5", ChainID(5).Name())
}

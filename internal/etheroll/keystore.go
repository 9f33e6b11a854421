package etheroll

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidAddress is returned when a keystore does not carry a usable address.
var ErrInvalidAddress = errors.New("invalid keystore address")

// KeystoreAddress reads the account address of an encrypted keystore file
// without decrypting it.
func KeystoreAddress(path string) (common.Address, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return common.Address{}, fmt.Errorf("read keystore: %w", err)
	}
	var key struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(data, &key); err != nil {
		return common.Address{}, fmt.Errorf("decode keystore %s: %w", path, err)
	}
	if !common.IsHexAddress(key.Address) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, key.Address)
	}
	return common.HexToAddress(key.Address), nil
}

package etheroll

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
)

const (
	MinChances = 1
	MaxChances = 99

	// HouseEdgePercent is taken from every winning payout.
	HouseEdgePercent = 1
)

// RollInput holds the bet the user typed on the roll screen.
type RollInput struct {
	BetSize int
	Chances int
}

// Validate checks the input against the dice game limits.
func (r RollInput) Validate() error {
	if r.BetSize <= 0 {
		return fmt.Errorf("bet size must be positive, got %d", r.BetSize)
	}
	if r.Chances < MinChances || r.Chances > MaxChances {
		return fmt.Errorf("chances of winning must be between %d and %d, got %d", MinChances, MaxChances, r.Chances)
	}
	return nil
}

// Profit returns the amount won on top of the bet if the roll succeeds.
func (r RollInput) Profit() (decimal.Decimal, error) {
	if err := r.Validate(); err != nil {
		return decimal.Zero, err
	}
	bet := decimal.NewFromInt(int64(r.BetSize))
	payout := bet.
		Mul(decimal.NewFromInt(100 - HouseEdgePercent)).
		Div(decimal.NewFromInt(int64(r.Chances)))
	return payout.Sub(bet).Round(6), nil
}

func (r RollInput) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bet_size", r.BetSize),
		slog.Int("chances", r.Chances),
	)
}

// WalletConfig holds the keystore location and its unlock password.
// Chances carries the text of the password entry.
type WalletConfig struct {
	Path    string
	Chances string
}

// LogValue never exposes the password.
func (w WalletConfig) LogValue() slog.Value {
	chances := ""
	if w.Chances != "" {
		chances = "[redacted]"
	}
	return slog.GroupValue(
		slog.String("path", w.Path),
		slog.String("chances", chances),
	)
}

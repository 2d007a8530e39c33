// Package main seals a bid offline: it prints the commitment to submit with a
// bid and the mask to keep for the reveal.
package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/internal/registrar"
	"github.com/jessevdk/go-flags"
	"github.com/shopspring/decimal"
)

const maskSize = 32

type config struct {
	Bidder   string `long:"bidder" env:"COMMITMENT_BIDDER" description:"bidding account" required:"true"`
	Amount   string `long:"amount" env:"COMMITMENT_AMOUNT" description:"true bid amount in whole tokens" required:"true"`
	Decimals int32  `long:"decimals" env:"COMMITMENT_DECIMALS" description:"token decimals" default:"0"`
	Mask     string `long:"mask" env:"COMMITMENT_MASK" description:"base58 mask; a random one is generated when empty"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	amount, err := parseAmount(cfg.Amount, cfg.Decimals)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mask, err := loadMask(cfg.Mask)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	hash := registrar.HashBid(amount, mask, model.AccountID(cfg.Bidder))
	fmt.Printf("amount:     %d\n", amount)
	fmt.Printf("mask:       %s\n", base58.Encode(mask))
	fmt.Printf("commitment: %s\n", hash)
}

// parseAmount converts a decimal token amount into base units.
func parseAmount(raw string, decimals int32) (model.Amount, error) {
	if decimals < 0 {
		return 0, fmt.Errorf("decimals must not be negative, got %d", decimals)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	units := d.Shift(decimals)
	if !units.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than %d decimals", raw, decimals)
	}
	if units.Sign() <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %s", raw)
	}
	if units.BigInt().BitLen() > 64 {
		return 0, fmt.Errorf("amount %s overflows", raw)
	}
	return model.Amount(units.BigInt().Uint64()), nil
}

func loadMask(raw string) ([]byte, error) {
	if raw != "" {
		mask := base58.Decode(raw)
		if len(mask) == 0 {
			return nil, fmt.Errorf("mask %q is not valid base58", raw)
		}
		return mask, nil
	}
	mask := make([]byte, maskSize)
	if _, err := rand.Read(mask); err != nil {
		return nil, fmt.Errorf("generate mask: %w", err)
	}
	return mask, nil
}

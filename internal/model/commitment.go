package model

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// CommitmentHashSize is the byte length of a commitment hash.
const CommitmentHashSize = 32

// CommitmentHash seals a bid amount and mask to a bidder.
type CommitmentHash [CommitmentHashSize]byte

// ParseCommitmentHash decodes a base58 commitment.
func ParseCommitmentHash(s string) (CommitmentHash, error) {
	var h CommitmentHash
	if s == "" {
		return h, errors.New("empty commitment")
	}
	raw := base58.Decode(s)
	if len(raw) != CommitmentHashSize {
		return h, fmt.Errorf("commitment must decode to %d bytes, got %d", CommitmentHashSize, len(raw))
	}
	copy(h[:], raw)
	return h, nil
}

// String returns the base58 form.
func (h CommitmentHash) String() string {
	return base58.Encode(h[:])
}

// MarshalText implements encoding.TextMarshaler.
func (h CommitmentHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *CommitmentHash) UnmarshalText(text []byte) error {
	parsed, err := ParseCommitmentHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

package registrar

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	publicKeySize   = 32
	publicKeyPrefix = "ed25519:"
)

// ParsePublicKey decodes an owner key given as base58, optionally prefixed with "ed25519:".
func ParsePublicKey(s string) ([]byte, error) {
	raw := base58.Decode(strings.TrimPrefix(s, publicKeyPrefix))
	if len(raw) != publicKeySize {
		return nil, ErrInvalidPublicKey
	}
	return raw, nil
}

func encodeKey(key []byte) string {
	return publicKeyPrefix + base58.Encode(key)
}

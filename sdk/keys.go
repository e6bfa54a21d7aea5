package sdk

import (
	"strings"

	"github.com/decred/base58"
)

// Ed25519KeyPrefix tags serialized public keys so their curve is explicit.
const Ed25519KeyPrefix = "ed25519:"

// DecodePublicKey turns an `ed25519:<base58>` (or bare base58) string into
// raw key bytes. Returns nil when the text is not a 32-byte ed25519 key.
func DecodePublicKey(key string) []byte {
	raw := strings.TrimPrefix(key, Ed25519KeyPrefix)
	decoded := base58.Decode(raw)
	if len(decoded) != 32 {
		return nil
	}
	return decoded
}

// EncodePublicKey renders raw key bytes in the canonical prefixed form.
func EncodePublicKey(key []byte) string {
	return Ed25519KeyPrefix + base58.Encode(key)
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a namespaced cache key: prefix, a colon, then the
// SHA-256 of the JSON-encoded parts. JSON keeps struct field order
// stable, so equal render options always map to the same key, and the
// full 64-hex digest leaves no room for collisions between
// bibliographies.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// Hash returns the SHA-256 of data as a 64-character hex string. The
// CLI hashes the raw manifest bytes with it, so any edit to the
// bibliography produces a fresh render key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a "kind:digest" key, where kind is "layout" or "artifact"
// and the digest covers the JSON encoding of parts. Option structs encode
// field by field, so adding an option changes every key of that kind.
func hashKey(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return kind + ":" + Hash(data)
}

// Hash is the hex SHA-256 digest of data. The runner hashes a layout key
// with it to get the layout hash that artifact keys hang off.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

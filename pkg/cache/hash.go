package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ReportKey builds the cache key for an analysis report. The key binds the
// manifest's content hash, so any manifest edit invalidates the entry, and
// the ecosystem, so two ecosystems claiming the same root never collide.
func ReportKey(ecosystem string, manifestData []byte) string {
	return "report:" + ecosystem + ":" + Hash(manifestData)
}

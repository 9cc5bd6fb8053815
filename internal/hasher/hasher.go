package hasher

import "github.com/cespare/xxhash/v2"

// Sum64 returns the raw xxHash64 digest of data, for callers that only
// need a fast equality pre-filter rather than a content-addressed name.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

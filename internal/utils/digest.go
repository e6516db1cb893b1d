package utils

import (
	"crypto/sha256"
	"hash"
	"sync"

	"github.com/opencontainers/go-digest"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances used
// for asset content digests.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Digest computes the content digest of data in the canonical
// "sha256:<hex>" form.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// Identical bytes always yield the identical digest.
func Digest(data []byte) digest.Digest {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	d := digest.NewDigest(digest.SHA256, h)

	h.Reset()
	hasherPool.Put(h)

	return d
}

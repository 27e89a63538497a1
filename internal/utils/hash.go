package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 instances keyed with the request signing key.
// Must be initialized via InitHasherPool before Hash is called.
var hasherPool sync.Pool

// InitHasherPool (re)initializes the pool with the given key. Every hasher
// taken from the pool afterwards signs with that key.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash returns the HMAC-SHA256 digest of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// Package entropy provides the shared random sources used for placement
// rolls and seed derivation.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	mrand "math/rand"
	"sync"
)

// Source is a seeded uniform generator safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSource returns a Source seeded with seed. A zero seed draws one from
// crypto/rand so every run differs.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = CryptoSeed()
		slog.Debug("entropy source seeded from crypto/rand", "seed", seed)
	}
	return &Source{rng: mrand.New(mrand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Int63 returns a non-negative 63-bit integer. Sub-seeds for independent
// streams (names, placement rolls) are drawn from a root Source this way.
func (s *Source) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63()
}

// CryptoSeed returns a random non-negative seed from crypto/rand.
func CryptoSeed() int64 {
	return int64(cryptoUint64() >> 1)
}

func cryptoUint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand does not fail on supported platforms.
		panic("entropy: crypto/rand unavailable: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

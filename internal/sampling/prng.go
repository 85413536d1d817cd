// Package sampling provides deterministic, seeded random-coefficient
// generation for tests. It has no role in the transform itself; it exists
// so property-based tests can generate reproducible test vectors from a
// seed instead of hand-writing fixed tables.
package sampling

import (
	"encoding/binary"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG deterministically expands a seed into an arbitrarily long
// byte stream via blake2b's XOF mode, so a test can log a seed on
// failure and reproduce the exact same input later. Adapted from the
// teacher's KeyedPRNG; trimmed to the Read/Reset surface tests need.
//
// Read and Reset are serialized by an internal mutex, so a KeyedPRNG may
// be shared across goroutines.
type KeyedPRNG struct {
	mutex sync.Mutex
	seed  []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a KeyedPRNG expanding seed. A nil seed is treated
// as an empty key, which is fine for tests but must never be used to
// generate anything security-sensitive.
func NewKeyedPRNG(seed []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed)
	if err != nil {
		return nil, err
	}
	return &KeyedPRNG{seed: seed, xof: xof}, nil
}

// Seed returns a copy of the seed used to construct the PRNG.
func (p *KeyedPRNG) Seed() []byte {
	seed := make([]byte, len(p.seed))
	copy(seed, p.seed)
	return seed
}

// Read fills buf from the XOF stream.
func (p *KeyedPRNG) Read(buf []byte) (int, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.xof.Read(buf)
}

// Reset rewinds the stream back to its first output byte.
func (p *KeyedPRNG) Reset() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.xof.Reset()
}

// randUint64 reads one uint64 off prng's stream.
func randUint64(prng PRNG) uint64 {
	var buf [8]byte
	if _, err := prng.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(buf[:])
}

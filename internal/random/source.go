package random

import (
	"crypto/rand"
	"encoding/binary"
)

// Entropy yields raw 64-bit words on demand. Implementations are assumed uniform
// and never exhausted.
type Entropy interface {
	Uint64() uint64
}

// OSEntropy reads words from the operating system's random source.
// It stands in for the device's hardware RNG.
type OSEntropy struct{}

// Uint64 returns one word from crypto/rand.
func (OSEntropy) Uint64() uint64 {
	var buf [8]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// XorShift is a seeded xorshift64 generator used for reproducible runs.
type XorShift struct {
	state uint64
}

// NewXorShift creates a generator; a zero seed is replaced with 1.
func NewXorShift(seed uint64) *XorShift {
	if seed == 0 {
		seed = 1
	}
	return &XorShift{state: seed}
}

// Uint64 advances the generator.
func (x *XorShift) Uint64() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

// Sequence replays a fixed list of words, cycling when exhausted.
type Sequence struct {
	words []uint64
	next  int
	Drawn int // number of words handed out
}

// NewSequence creates a replaying source. An empty list yields zeros.
func NewSequence(words ...uint64) *Sequence {
	return &Sequence{words: words}
}

// Uint64 returns the next word of the sequence.
func (s *Sequence) Uint64() uint64 {
	s.Drawn++
	if len(s.words) == 0 {
		return 0
	}
	w := s.words[s.next]
	s.next = (s.next + 1) % len(s.words)
	return w
}

// ForSeed returns the entropy source matching a runtime seed: the OS source for 0,
// a reproducible xorshift stream otherwise.
func ForSeed(seed int64) Entropy {
	if seed == 0 {
		return OSEntropy{}
	}
	return NewXorShift(uint64(seed))
}

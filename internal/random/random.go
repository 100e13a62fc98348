// Package random provides the piece selector's randomness: a small Ascon sponge that is
// continually reseeded from an external entropy source.
package random

// Random mixes entropy words through the Ascon permutation.
// Every output consumes one fresh entropy word.
type Random struct {
	state   State
	entropy Entropy
}

// New creates a sponge over the given entropy source and absorbs one word.
func New(entropy Entropy) *Random {
	r := &Random{entropy: entropy}
	r.Absorb()
	return r
}

// Absorb XORs one entropy word into the first state word and permutes.
func (r *Random) Absorb() {
	r.state[0] ^= r.entropy.Uint64()
	r.state.Permute6()
}

// Squeeze returns the first state word and immediately absorbs new entropy.
func (r *Random) Squeeze() uint64 {
	out := r.state[0]
	r.Absorb()
	return out
}

// State returns a copy of the sponge state.
func (r *Random) State() State {
	return r.state
}

package random

import "math/bits"

// State is the 320-bit Ascon permutation state.
type State [5]uint64

// roundConstants are the last six constants of the 12-round schedule, as used by p6.
var roundConstants = [6]uint64{0x96, 0x87, 0x78, 0x69, 0x5a, 0x4b}

// Permute6 applies the 6-round Ascon permutation.
func (s *State) Permute6() {
	for _, c := range roundConstants {
		s.round(c)
	}
}

func (s *State) round(c uint64) {
	x0, x1, x2, x3, x4 := s[0], s[1], s[2], s[3], s[4]

	// constant addition
	x2 ^= c

	// substitution layer
	x0 ^= x4
	x4 ^= x3
	x2 ^= x1
	t0 := ^x0 & x1
	t1 := ^x1 & x2
	t2 := ^x2 & x3
	t3 := ^x3 & x4
	t4 := ^x4 & x0
	x0 ^= t1
	x1 ^= t2
	x2 ^= t3
	x3 ^= t4
	x4 ^= t0
	x1 ^= x0
	x0 ^= x4
	x3 ^= x2
	x2 = ^x2

	// linear diffusion layer
	x0 ^= bits.RotateLeft64(x0, -19) ^ bits.RotateLeft64(x0, -28)
	x1 ^= bits.RotateLeft64(x1, -61) ^ bits.RotateLeft64(x1, -39)
	x2 ^= bits.RotateLeft64(x2, -1) ^ bits.RotateLeft64(x2, -6)
	x3 ^= bits.RotateLeft64(x3, -10) ^ bits.RotateLeft64(x3, -17)
	x4 ^= bits.RotateLeft64(x4, -7) ^ bits.RotateLeft64(x4, -41)

	s[0], s[1], s[2], s[3], s[4] = x0, x1, x2, x3, x4
}

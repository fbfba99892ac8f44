package des

import (
	"fmt"

	"github.com/opd-ai/descore/limits"
)

// Subkey is a 48-bit round key produced by PC2.
type Subkey uint64

// Hex returns "0x" followed by 12 uppercase hex digits.
func (s Subkey) Hex() string {
	return fmt.Sprintf("0x%012X", uint64(s))
}

// Bits returns the 48-character bit string.
func (s Subkey) Bits() string {
	return bitString(uint64(s), limits.SubkeyBits)
}

// Schedule is the ordered set of 16 subkeys for one key. It is a value type;
// copies share nothing and the subkeys cannot be changed after derivation.
type Schedule struct {
	subkeys [limits.Rounds]Subkey
}

// DeriveSchedule runs PC1, the per-round C/D rotations and PC2.
func DeriveSchedule(key Key) Schedule {
	var s Schedule

	cd := permute(uint64(key), limits.BlockBits, permutedChoice1[:])
	c := uint32(cd >> limits.ScheduleHalfBits)
	d := uint32(cd & limits.Mask(limits.ScheduleHalfBits))

	for round := 0; round < limits.Rounds; round++ {
		c = rotateLeft28(c, rotationSchedule[round])
		d = rotateLeft28(d, rotationSchedule[round])

		joined := uint64(c)<<limits.ScheduleHalfBits | uint64(d)
		s.subkeys[round] = Subkey(permute(joined, limits.PermutedChoiceBits, permutedChoice2[:]))
	}

	return s
}

// Subkey returns the subkey for a 1-indexed round.
func (s Schedule) Subkey(round int) Subkey {
	if round < 1 || round > limits.Rounds {
		panic(fmt.Sprintf("des: round %d out of range 1..%d", round, limits.Rounds))
	}
	return s.subkeys[round-1]
}

// Subkeys returns a copy of the subkeys in encryption order.
func (s Schedule) Subkeys() [limits.Rounds]Subkey {
	return s.subkeys
}

// Reversed returns a copy of the subkeys in decryption order.
func (s Schedule) Reversed() [limits.Rounds]Subkey {
	var out [limits.Rounds]Subkey
	for i, k := range s.subkeys {
		out[limits.Rounds-1-i] = k
	}
	return out
}

// rotateLeft28 circularly rotates a C or D register.
func rotateLeft28(value uint32, shift uint8) uint32 {
	mask := uint32(limits.Mask(limits.ScheduleHalfBits))
	value &= mask
	return (value<<shift | value>>(limits.ScheduleHalfBits-shift)) & mask
}

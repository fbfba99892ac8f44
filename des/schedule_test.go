package des

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeriveScheduleTextbookKey checks the first and last subkeys of the
// classic worked example key.
func TestDeriveScheduleTextbookKey(t *testing.T) {
	s := DeriveSchedule(KeyFromUint64(0x133457799BBCDFF1))

	assert.Equal(t, Subkey(0x1B02EFFC7072), s.Subkey(1))
	assert.Equal(t, "000110110000001011101111111111000111000001110010", s.Subkey(1).Bits())
	assert.Equal(t, Subkey(0xCB3D8B0E17F5), s.Subkey(16))
}

func TestDeriveScheduleMockKey(t *testing.T) {
	s := MockKey.Schedule()

	assert.Equal(t, Subkey(0x7F37EFFB7F67), s.Subkey(1))
	assert.Equal(t, "0x7F37EFFB7F67", s.Subkey(1).Hex())
	assert.Equal(t, Subkey(0x7B9FFD7FDB27), s.Subkey(2))
	assert.Equal(t, Subkey(0xEF778FBB76FB), s.Subkey(16))
}

func TestDeriveScheduleIsStable(t *testing.T) {
	keys := []Key{0, MockKey, 0xAABB09182736CCDD, 0xFFFFFFFFFFFFFFFF}

	for _, key := range keys {
		first := DeriveSchedule(key)
		second := DeriveSchedule(key)
		assert.Equal(t, first.Subkeys(), second.Subkeys(), "key %s", key.Hex())
		assert.Equal(t, first, key.Schedule())
	}
}

func TestSubkeysFitFortyEightBits(t *testing.T) {
	s := DeriveSchedule(0xFFFFFFFFFFFFFFFF)
	for i, k := range s.Subkeys() {
		assert.Zero(t, uint64(k)>>48, "subkey %d", i+1)
	}
	// All-ones key rotates into itself.
	assert.Equal(t, Subkey(0xFFFFFFFFFFFF), s.Subkey(7))
}

func TestScheduleCopiesAreIndependent(t *testing.T) {
	s := DeriveSchedule(MockKey)

	subkeys := s.Subkeys()
	subkeys[0] = 0
	assert.Equal(t, Subkey(0x7F37EFFB7F67), s.Subkey(1))

	reversed := s.Reversed()
	reversed[0] = 0
	assert.Equal(t, Subkey(0xEF778FBB76FB), s.Subkey(16))
}

func TestScheduleReversed(t *testing.T) {
	s := DeriveSchedule(0xAABB09182736CCDD)
	forward := s.Subkeys()
	reversed := s.Reversed()

	for i := range forward {
		assert.Equal(t, forward[i], reversed[len(reversed)-1-i])
	}
}

func TestScheduleSubkeyOutOfRange(t *testing.T) {
	s := DeriveSchedule(MockKey)

	assert.Panics(t, func() { s.Subkey(0) })
	assert.Panics(t, func() { s.Subkey(17) })
	assert.NotPanics(t, func() { s.Subkey(16) })
}

// TestScheduleIgnoresParityBits documents that parity bits are not validated:
// keys that differ only in bits 8, 16, ..., 64 share a schedule.
func TestScheduleIgnoresParityBits(t *testing.T) {
	key := KeyFromUint64(0x133457799BBCDFF1)
	flipped := KeyFromUint64(0x133457799BBCDFF1 ^ 0x0101010101010101)

	assert.Equal(t, DeriveSchedule(key), DeriveSchedule(flipped))
}

func TestRotateLeft28(t *testing.T) {
	assert.Equal(t, uint32(0x0000001), rotateLeft28(0x8000000, 1))
	assert.Equal(t, uint32(0x0000003), rotateLeft28(0xC000000, 2))
	assert.Equal(t, uint32(0x0FFFFFFF), rotateLeft28(0x0FFFFFFF, 2))
	assert.Equal(t, uint32(0x0000002), rotateLeft28(0x0000001, 1))
}

func TestSubkeyFormatting(t *testing.T) {
	k := Subkey(0x1B02EFFC7072)
	require.Len(t, k.Bits(), 48)
	assert.Equal(t, "0x1B02EFFC7072", k.Hex())
}

// Package limits provides centralized bit-width constants for the DES engine.
// This ensures every component agrees on block, half and subkey sizes.
package limits

import (
	"errors"
	"fmt"
)

const (
	// BlockBits is the width of a full DES block and of a raw key.
	BlockBits = 64

	// HalfBits is the width of a Feistel half (L or R)
	HalfBits = 32

	// ExpandedBits is the width of a half after the E expansion
	ExpandedBits = 48

	// SubkeyBits is the width of a round subkey produced by PC2
	SubkeyBits = 48

	// ScheduleHalfBits is the width of the C and D registers of the key schedule
	ScheduleHalfBits = 28

	// PermutedChoiceBits is the width of C‖D, the output of PC1 and input of PC2
	PermutedChoiceBits = 2 * ScheduleHalfBits

	// SBoxInputBits is the width of one S-box input group
	SBoxInputBits = 6

	// SBoxOutputBits is the width of one S-box output nibble
	SBoxOutputBits = 4

	// SBoxCount is the number of S-boxes applied per round
	SBoxCount = 8

	// Rounds is the number of Feistel rounds
	Rounds = 16

	// TextBytes is the length of a textual block or key operand
	TextBytes = BlockBits / 8
)

// ErrWidthViolation indicates a value occupies more bits than its declared width.
var ErrWidthViolation = errors.New("width violation")

// Mask returns a value with the low bits set.
func Mask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	if bits <= 0 {
		return 0
	}
	return (uint64(1) << uint(bits)) - 1
}

// FitsWidth reports whether value fits into the given number of low bits.
func FitsWidth(value uint64, bits int) bool {
	return value&^Mask(bits) == 0
}

// ValidateWidth validates that value fits into the given number of bits.
// Returns an error wrapping ErrWidthViolation with the offending value and width.
func ValidateWidth(value uint64, bits int) error {
	if !FitsWidth(value, bits) {
		return fmt.Errorf("%w: 0x%X exceeds %d bits", ErrWidthViolation, value, bits)
	}
	return nil
}

// ValidateHalf validates that value can act as a 32-bit Feistel half.
func ValidateHalf(value uint64) error {
	if !FitsWidth(value, HalfBits) {
		return fmt.Errorf("%w: half 0x%X exceeds %d bits", ErrWidthViolation, value, HalfBits)
	}
	return nil
}

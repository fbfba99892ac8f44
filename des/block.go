package des

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/opd-ai/descore/limits"
)

// Block is a 64-bit DES value. It holds either a full block or, in its low
// 32 bits with the upper bits clear, a single Feistel half.
type Block uint64

// ParseBlock packs exactly 8 ASCII characters into a block, first character
// in the most significant byte.
func ParseBlock(text string) (Block, error) {
	v, err := parseText(text)
	if err != nil {
		logRejected("ParseBlock", "block", err)
		return 0, err
	}
	return Block(v), nil
}

// BlockFromUint64 wraps raw block material.
func BlockFromUint64(v uint64) Block {
	return Block(v)
}

// parseText implements the shared text convention for blocks and keys.
func parseText(text string) (uint64, error) {
	if len(text) != limits.TextBytes {
		return 0, fmt.Errorf("%w: got %d bytes", ErrInputLength, len(text))
	}
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return 0, fmt.Errorf("%w: byte 0x%02X at offset %d", ErrInputEncoding, text[i], i)
		}
	}
	return binary.BigEndian.Uint64([]byte(text)), nil
}

// ParseHex parses 16 hex digits, optionally prefixed by "0x", into a raw
// 64-bit value suitable for BlockFromUint64 or KeyFromUint64.
func ParseHex(s string) (uint64, error) {
	digits := s
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if len(digits) != 2*limits.TextBytes {
		return 0, fmt.Errorf("%w: want 16 hex digits, got %d", ErrInvalidHex, len(digits))
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return v, nil
}

// Uint64 returns the raw value.
func (b Block) Uint64() uint64 {
	return uint64(b)
}

// Text unpacks the block into 8 bytes, most significant first.
func (b Block) Text() string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(b))
	return string(buf[:])
}

// Hex returns "0x" followed by 16 uppercase hex digits.
func (b Block) Hex() string {
	return fmt.Sprintf("0x%016X", uint64(b))
}

func (b Block) String() string {
	return b.Hex()
}

// Bits returns the 64-character bit string, most significant bit first.
func (b Block) Bits() string {
	return bitString(uint64(b), limits.BlockBits)
}

// InitialPermutation applies IP.
func (b Block) InitialPermutation() Block {
	return Block(permute(uint64(b), limits.BlockBits, initialPermutation[:]))
}

// FinalPermutation applies IP⁻¹.
func (b Block) FinalPermutation() Block {
	return Block(permute(uint64(b), limits.BlockBits, finalPermutation[:]))
}

// SplitHalves returns the upper and lower 32 bits as halves.
func (b Block) SplitHalves() (left, right Block) {
	return b >> limits.HalfBits, b & Block(limits.Mask(limits.HalfBits))
}

// CombineHalves joins two halves into a full block, left half on top.
func CombineHalves(left, right Block) (Block, error) {
	if err := limits.ValidateHalf(uint64(left)); err != nil {
		return 0, fmt.Errorf("left half: %w", err)
	}
	if err := limits.ValidateHalf(uint64(right)); err != nil {
		return 0, fmt.Errorf("right half: %w", err)
	}
	return left<<limits.HalfBits | right, nil
}

// SwapHalves exchanges the upper and lower 32 bits.
func (b Block) SwapHalves() Block {
	left, right := b.SplitHalves()
	return right<<limits.HalfBits | left
}

// Expand applies E to a half, producing a 48-bit value.
func (b Block) Expand() (Block, error) {
	if err := limits.ValidateHalf(uint64(b)); err != nil {
		return 0, fmt.Errorf("expand: %w", err)
	}
	return Block(permute(uint64(b), limits.HalfBits, expansion[:])), nil
}

// XorSubkey mixes a 48-bit value with a round subkey.
func (b Block) XorSubkey(k Subkey) Block {
	return b ^ Block(k)
}

// Substitute runs the eight S-boxes over a 48-bit value, producing 32 bits.
// For each 6-bit group the row is (bit5, bit0) and the column bits 4..1.
func (b Block) Substitute() (Block, error) {
	if err := limits.ValidateWidth(uint64(b), limits.ExpandedBits); err != nil {
		return 0, fmt.Errorf("substitute: %w", err)
	}

	out := uint64(0)
	for i := 0; i < limits.SBoxCount; i++ {
		shift := limits.ExpandedBits - limits.SBoxInputBits*(i+1)
		group := (uint64(b) >> uint(shift)) & 0x3F
		row := (group&0x20)>>4 | group&0x01
		col := (group >> 1) & 0x0F
		out |= uint64(sBoxes[i][row][col]) << uint(limits.HalfBits-limits.SBoxOutputBits*(i+1))
	}
	return Block(out), nil
}

// PermuteP applies P to the low 32 bits.
func (b Block) PermuteP() Block {
	half := uint64(b) & limits.Mask(limits.HalfBits)
	return Block(permute(half, limits.HalfBits, roundPermutation[:]))
}

// Package limits provides centralized bit-width constants and validation functions
// for the DES engine. Every table-driven transformation in package des takes its
// input and output widths from here so the widths cannot drift between components.
//
// # Width Hierarchy
//
//   - BlockBits (64): a full block, and a raw key before PC1.
//   - PermutedChoiceBits (56): C‖D after PC1, the input of PC2.
//   - ExpandedBits / SubkeyBits (48): a half after expansion, and a round subkey.
//   - HalfBits (32): one Feistel half, stored in the low bits of a 64-bit value.
//   - ScheduleHalfBits (28): the C and D rotation registers.
//
// # Validation Functions
//
// A value acting as an N-bit quantity must have every bit above N cleared:
//
//	if err := limits.ValidateHalf(r); err != nil {
//	    // errors.Is(err, limits.ErrWidthViolation)
//	}
//
// For any other width, use the generic ValidateWidth function:
//
//	err := limits.ValidateWidth(v, limits.ExpandedBits)
//
// # Error Types
//
//   - ErrWidthViolation: a value exceeds its declared width. Inside the cipher
//     this can only be produced by an implementation defect.
package limits

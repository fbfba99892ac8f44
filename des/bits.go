package des

import "strings"

// bitAt returns the bit at 1-indexed position pos of a width-bit value,
// counting from the most significant bit as position 1.
func bitAt(value uint64, width int, pos uint8) uint64 {
	return (value >> uint(width-int(pos))) & 1
}

// permute builds a len(table)-bit value whose bit j (from the MSB) is the
// source bit at table[j]. Every table-driven permutation goes through here.
func permute(value uint64, width int, table []uint8) uint64 {
	out := uint64(0)
	n := len(table)
	for j, pos := range table {
		out |= bitAt(value, width, pos) << uint(n-1-j)
	}
	return out
}

// bitString renders the low width bits of value, most significant first.
func bitString(value uint64, width int) string {
	var sb strings.Builder
	sb.Grow(width)
	for i := width - 1; i >= 0; i-- {
		if (value>>uint(i))&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

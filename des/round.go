package des

import "fmt"

// Mangle is the Feistel function f(R, K): expand, mix in the subkey,
// substitute, then permute with P. right must be a 32-bit half and k must
// fit in 48 bits.
func Mangle(right Block, k Subkey) (Block, error) {
	expanded, err := right.Expand()
	if err != nil {
		return 0, fmt.Errorf("mangle: %w", err)
	}
	substituted, err := expanded.XorSubkey(k).Substitute()
	if err != nil {
		return 0, fmt.Errorf("mangle: %w", err)
	}
	return substituted.PermuteP(), nil
}

// Round runs one Feistel round: (L, R) becomes (R, L xor f(R, K)).
func Round(state Block, k Subkey) (Block, error) {
	left, right := state.SplitHalves()

	mangled, err := Mangle(right, k)
	if err != nil {
		return 0, err
	}

	return CombineHalves(right, left^mangled)
}

// Package des implements the DES block cipher for exactly one 64-bit block
// against one 64-bit key per call.
//
// # Core Types
//
//   - [Block]: a 64-bit value, either a full block or a 32-bit half in the low bits
//   - [Key]: raw 64-bit key material
//   - [Subkey]: a 48-bit round key
//   - [Schedule]: the 16 subkeys of one key, derived once and immutable
//   - [Cipher]: a key plus its cached schedule
//
// # Encryption and Decryption
//
//	block, _ := des.ParseBlock("abcdefgh")
//	key, _ := des.ParseKey("secret!!")
//
//	c := des.NewCipher(key)
//	ciphertext := c.EncryptBlock(block)
//	plaintext := c.DecryptBlock(ciphertext) // == block
//
//	fmt.Println(ciphertext.Hex()) // 0x followed by 16 uppercase hex digits
//
// Raw material can be given directly:
//
//	c := des.NewCipher(des.KeyFromUint64(0xAABB09182736CCDD))
//	c.EncryptBlock(des.BlockFromUint64(0x123456ABCD132536)) // 0xC0B7A8D05F3A829C
//
// # Block Pipeline
//
// Both directions follow the same sequence of stages:
//
//	initialized -> permuted (IP) -> round 1..16 -> swapped -> finalized (IP⁻¹)
//
// Each round maps (L, R) to (R, L xor f(R, K)) where
// f(R, K) = P(S(E(R) xor K)). Encryption uses subkeys 1 to 16 and decryption
// 16 to 1. The individual steps are exported as Block methods and as [Mangle]
// and [Round]. [NewCipherWithTrace] reports every stage to a callback.
//
// # Bit Numbering
//
// Every table names source bits by 1-indexed position counted from the most
// significant bit. All permutations share one helper for this, so IP, IP⁻¹,
// E, P, PC1 and PC2 cannot disagree on numbering.
//
// # Key Parity
//
// Parity bits are never validated or stripped before PC1. PC1 simply does not
// select bit positions 8, 16, ..., 64, so keys differing only in those bits
// produce the same schedule.
//
// # Errors
//
// Parsing reports [ErrInputLength] or [ErrInputEncoding]. [ErrWidthViolation]
// is returned by the exported step functions when handed an oversized half;
// inside a Cipher it indicates a defect and aborts with a panic.
//
// # Thread Safety
//
// All values are immutable once built. A [Cipher] may be shared between
// goroutines; encrypting many blocks in parallel is left to the caller.
package des

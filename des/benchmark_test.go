package des

import "testing"

// BenchmarkDeriveSchedule measures key schedule derivation
func BenchmarkDeriveSchedule(b *testing.B) {
	key := KeyFromUint64(0xAABB09182736CCDD)
	for i := 0; i < b.N; i++ {
		_ = DeriveSchedule(key)
	}
}

// BenchmarkEncryptBlock measures single-block encryption with a cached schedule
func BenchmarkEncryptBlock(b *testing.B) {
	c := NewCipher(KeyFromUint64(0xAABB09182736CCDD))
	block := BlockFromUint64(0x123456ABCD132536)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		block = c.EncryptBlock(block)
	}
}

// BenchmarkDecryptBlock measures single-block decryption with a cached schedule
func BenchmarkDecryptBlock(b *testing.B) {
	c := NewCipher(KeyFromUint64(0xAABB09182736CCDD))
	block := BlockFromUint64(0xC0B7A8D05F3A829C)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		block = c.DecryptBlock(block)
	}
}

// BenchmarkParseBlock measures text parsing
func BenchmarkParseBlock(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ParseBlock("abcdefgh"); err != nil {
			b.Fatal(err)
		}
	}
}

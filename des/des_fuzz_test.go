package des

import (
	"errors"
	"testing"
)

// FuzzRoundTrip fuzzes encrypt/decrypt over arbitrary blocks and keys
func FuzzRoundTrip(f *testing.F) {
	f.Add(uint64(0x123456ABCD132536), uint64(0xAABB09182736CCDD))
	f.Add(uint64(0), uint64(0))
	f.Add(^uint64(0), uint64(MockKey))

	f.Fuzz(func(t *testing.T, block, key uint64) {
		c := NewCipher(KeyFromUint64(key))
		b := BlockFromUint64(block)

		if got := c.DecryptBlock(c.EncryptBlock(b)); got != b {
			t.Errorf("round trip of %s under %s gave %s", b, KeyFromUint64(key).Hex(), got)
		}
	})
}

// FuzzParseBlock fuzzes the text parser
func FuzzParseBlock(f *testing.F) {
	f.Add("ABCDEFGH")
	f.Add("ABCDEFGHS")
	f.Add("ABCDEFG👌")
	f.Add("")

	f.Fuzz(func(t *testing.T, text string) {
		b, err := ParseBlock(text)
		if err != nil {
			if !errors.Is(err, ErrInputLength) && !errors.Is(err, ErrInputEncoding) {
				t.Errorf("unexpected error type: %v", err)
			}
			return
		}
		if b.Text() != text {
			t.Errorf("Text() = %q, want %q", b.Text(), text)
		}
	})
}

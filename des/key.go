package des

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/opd-ai/descore/limits"
)

// PassphraseIterations is the PBKDF2 iteration count used by KeyFromPassphrase.
const PassphraseIterations = 100000

// MockKey is a fixed key with a deterministic schedule, used for diagnostics.
const MockKey Key = 0x0000FFFFFFFFFFFF

// Key is raw 64-bit DES key material. All 64 bits are handed to PC1; parity
// bits are neither checked nor adjusted.
type Key uint64

// ParseKey packs exactly 8 ASCII characters into a key, first character in
// the most significant byte.
func ParseKey(text string) (Key, error) {
	v, err := parseText(text)
	if err != nil {
		logRejected("ParseKey", "key", err)
		return 0, err
	}
	return Key(v), nil
}

// KeyFromUint64 wraps raw key material.
func KeyFromUint64(v uint64) Key {
	return Key(v)
}

// KeyFromPassphrase derives key material with PBKDF2-HMAC-SHA256, keeping
// the first 8 bytes of output.
func KeyFromPassphrase(passphrase, salt []byte) (Key, error) {
	if len(salt) == 0 {
		return 0, ErrEmptySalt
	}

	derived := pbkdf2.Key(passphrase, salt, PassphraseIterations, limits.TextBytes, sha256.New)
	key := Key(binary.BigEndian.Uint64(derived))
	wipe(derived)

	logEntry("KeyFromPassphrase").
		WithFields(KeyFields(key)).
		WithField("iterations", PassphraseIterations).
		Debug("Derived key from passphrase")

	return key, nil
}

// Uint64 returns the raw key material.
func (k Key) Uint64() uint64 {
	return uint64(k)
}

// Hex returns "0x" followed by 16 uppercase hex digits.
func (k Key) Hex() string {
	return fmt.Sprintf("0x%016X", uint64(k))
}

// Bits returns the 64-character bit string, most significant bit first.
func (k Key) Bits() string {
	return bitString(uint64(k), limits.BlockBits)
}

// Schedule derives the 16 round subkeys for this key.
func (k Key) Schedule() Schedule {
	return DeriveSchedule(k)
}

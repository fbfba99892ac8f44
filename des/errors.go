package des

import (
	"errors"

	"github.com/opd-ai/descore/limits"
)

var (
	// ErrInputLength indicates a textual operand is not exactly 8 bytes.
	ErrInputLength = errors.New("input must be exactly 8 bytes")

	// ErrInputEncoding indicates a textual operand contains non-ASCII content.
	ErrInputEncoding = errors.New("input must be ASCII")

	// ErrInvalidHex indicates a hexadecimal operand is malformed.
	ErrInvalidHex = errors.New("invalid hex block")

	// ErrEmptySalt indicates a passphrase key was requested without a salt.
	ErrEmptySalt = errors.New("salt cannot be empty")

	// ErrWidthViolation indicates a half or expanded value exceeds its width.
	// Through the Cipher API this can only result from an implementation defect.
	ErrWidthViolation = limits.ErrWidthViolation
)

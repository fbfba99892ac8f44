// Package main provides the command-line interface for single-block DES.
//
// # Usage
//
// Encrypt a block given as hex:
//
//	go run ./cmd/desblock -e -block-hex 0x123456ABCD132536 -key-hex 0xAABB09182736CCDD
//	0xC0B7A8D05F3A829C
//
// Decrypt it again:
//
//	go run ./cmd/desblock -d -block-hex 0xC0B7A8D05F3A829C -key-hex 0xAABB09182736CCDD
//	0x123456ABCD132536
//
// Work with 8-character text and show every stage:
//
//	go run ./cmd/desblock -e -block abcdefgh -key 'secret!!' -trace
//
// # Configuration Options
//
// Direction (exactly one):
//   - -e: encrypt
//   - -d: decrypt
//
// Block (exactly one):
//   - -block: 8 ASCII characters
//   - -block-hex: 16 hex digits, optional 0x prefix
//
// Key (exactly one):
//   - -key: 8 ASCII characters
//   - -key-hex: 16 hex digits, optional 0x prefix
//   - -passphrase with -salt: PBKDF2-HMAC-SHA256 derived key; -salt is
//     rejected without -passphrase
//
// Output:
//   - -format: hex (default), text or bits
//   - -trace: print the state after IP, each round, the swap and IP⁻¹
//
// Logging:
//   - -log-level: DEBUG, INFO, WARN (default) or ERROR
//   - -log-file: write logs to a file instead of stderr
//
// # Exit Codes
//
//   - 0: success, or -help
//   - 1: invalid configuration or input
//   - 2: flag parsing error
package main

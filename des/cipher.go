package des

import (
	"encoding/binary"
	"fmt"

	"github.com/opd-ai/descore/limits"
)

// BlockSize is the DES block size in bytes.
const BlockSize = limits.TextBytes

// Stage identifies a step of the per-block state machine.
type Stage int

const (
	StageInitialized Stage = iota
	StagePermuted
	StageRound
	StageSwapped
	StageFinalized
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageInitialized:
		return "initialized"
	case StagePermuted:
		return "permuted"
	case StageRound:
		return "round"
	case StageSwapped:
		return "swapped"
	case StageFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// TraceFunc observes every state transition of a block. round is 1..16 for
// StageRound and 0 otherwise.
type TraceFunc func(stage Stage, round int, state Block)

// Direction selects the subkey order.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Cipher transforms single blocks under one key. The schedule is derived once
// in the constructor and never changes, so a Cipher is safe for concurrent use.
type Cipher struct {
	key      Key
	schedule Schedule
	trace    TraceFunc
}

// NewCipher derives the key schedule and returns a ready cipher.
func NewCipher(key Key) *Cipher {
	return NewCipherWithTrace(key, nil)
}

// NewCipherWithTrace is NewCipher with a hook called at every stage of every block.
func NewCipherWithTrace(key Key, trace TraceFunc) *Cipher {
	c := &Cipher{
		key:      key,
		schedule: DeriveSchedule(key),
		trace:    trace,
	}

	logEntry("NewCipher").
		WithFields(KeyFields(key)).
		WithField("traced", trace != nil).
		Debug("Key schedule derived")
	return c
}

// Key returns the key the cipher was built with.
func (c *Cipher) Key() Key {
	return c.key
}

// Schedule returns the cached key schedule.
func (c *Cipher) Schedule() Schedule {
	return c.schedule
}

// EncryptBlock encrypts one block using subkeys 1 through 16.
func (c *Cipher) EncryptBlock(b Block) Block {
	return c.process(b, Encrypt)
}

// DecryptBlock decrypts one block using subkeys 16 down to 1.
func (c *Cipher) DecryptBlock(b Block) Block {
	return c.process(b, Decrypt)
}

// Process runs the block in the given direction.
func (c *Cipher) Process(b Block, dir Direction) Block {
	return c.process(b, dir)
}

func (c *Cipher) process(b Block, dir Direction) Block {
	subkeys := c.schedule.Subkeys()
	if dir == Decrypt {
		subkeys = c.schedule.Reversed()
	}

	c.emit(StageInitialized, 0, b)

	state := b.InitialPermutation()
	c.emit(StagePermuted, 0, state)

	for i, k := range subkeys {
		next, err := Round(state, k)
		if err != nil {
			// Halves come from SplitHalves, so this is unreachable unless the
			// round function itself is broken.
			logEntry("process").
				WithError(err).
				WithFields(ProcessFields(dir, i+1, "failed")).
				Error("Internal width violation")
			panic(fmt.Sprintf("des: round %d: %v", i+1, err))
		}
		state = next
		c.emit(StageRound, i+1, state)
	}

	state = state.SwapHalves()
	c.emit(StageSwapped, 0, state)

	state = state.FinalPermutation()
	c.emit(StageFinalized, 0, state)

	return state
}

func (c *Cipher) emit(stage Stage, round int, state Block) {
	if c.trace != nil {
		c.trace(stage, round, state)
	}
}

// BlockSize returns the block size in bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block of src into dst, big-endian.
func (c *Cipher) Encrypt(dst, src []byte) {
	c.crypt(dst, src, Encrypt)
}

// Decrypt decrypts the first block of src into dst, big-endian.
func (c *Cipher) Decrypt(dst, src []byte) {
	c.crypt(dst, src, Decrypt)
}

func (c *Cipher) crypt(dst, src []byte, dir Direction) {
	if len(src) < BlockSize {
		panic("des: input not full block")
	}
	if len(dst) < BlockSize {
		panic("des: output not full block")
	}
	out := c.process(Block(binary.BigEndian.Uint64(src)), dir)
	binary.BigEndian.PutUint64(dst, uint64(out))
}

// EncryptBlock encrypts one block under key, deriving the schedule for this call.
// Use NewCipher to reuse a schedule across blocks.
func EncryptBlock(b Block, key Key) Block {
	return NewCipher(key).EncryptBlock(b)
}

// DecryptBlock decrypts one block under key.
func DecryptBlock(b Block, key Key) Block {
	return NewCipher(key).DecryptBlock(b)
}

package des

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/descore/limits"
)

// logEntry returns a logrus entry tagged with the des package and the
// emitting function.
func logEntry(function string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"package":  "des",
		"function": function,
	})
}

// logRejected records a text input that failed to parse. The text itself is
// never logged since it may be key material.
func logRejected(function, input string, err error) {
	logEntry(function).
		WithError(err).
		WithField("input", input).
		Debugf("Rejected %s text", input)
}

// KeyFields returns a redacted view of key material for logging.
// Only the two most significant bytes are shown.
func KeyFields(key Key) logrus.Fields {
	return logrus.Fields{
		"key_preview": fmt.Sprintf("%04X...", uint64(key)>>48),
		"key_bits":    limits.BlockBits,
	}
}

// ProcessFields describes how far a block got through the cipher: the
// direction, the last round reached and the outcome.
func ProcessFields(dir Direction, round int, status string) logrus.Fields {
	return logrus.Fields{
		"direction": dir.String(),
		"round":     round,
		"status":    status,
	}
}

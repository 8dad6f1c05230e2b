package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	batch := []string{"reset my password", "refund policy"}

	base := Fingerprint(batch, 0.5, 2)
	assert.Len(t, base, 64)
	assert.Equal(t, base, Fingerprint(batch, 0.5, 2))

	// Order, content, and parameters all participate.
	reordered := Fingerprint([]string{"refund policy", "reset my password"}, 0.5, 2)
	assert.NotEqual(t, base, reordered)
	assert.NotEqual(t, base, Fingerprint(batch, 0.4, 2))
	assert.NotEqual(t, base, Fingerprint(batch, 0.5, 3))
	assert.NotEqual(t, base, Fingerprint([]string{"reset my password"}, 0.5, 2))
}

func TestFingerprintEmptyBatch(t *testing.T) {
	assert.Len(t, Fingerprint(nil, 0.5, 2), 64)
	assert.Equal(t, Fingerprint(nil, 0.5, 2), Fingerprint([]string{}, 0.5, 2))
}

package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint returns a stable hash identifying one batch and its
// parameters. Utterance order is significant, so reordering the batch
// changes the value.
func Fingerprint(utterances []string, eps float64, minPts int) string {
	h := sha256.New()

	fmt.Fprintf(h, "eps=%g;minPts=%d", eps, minPts)
	h.Write([]byte{0}) // separator

	for _, u := range utterances {
		h.Write([]byte(u))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}

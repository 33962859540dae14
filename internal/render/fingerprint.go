package render

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/mcoot/crosswordbuilder/internal/model"
)

// Fingerprint hashes the canonical word listing of a board with BLAKE2b-256.
// Boards holding the same words and clues share a fingerprint.
func Fingerprint(b *model.Board) string {
	h, _ := blake2b.New256(nil)
	for _, w := range b.Words() {
		fmt.Fprintf(h, "%s\t%d\t%d\t%s\t%s\n", w.Orientation, w.Anchor.X, w.Anchor.Y, w.Text, w.Clue)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ETag returns the fingerprint as a strong HTTP entity tag
func ETag(b *model.Board) string {
	return `"` + Fingerprint(b) + `"`
}

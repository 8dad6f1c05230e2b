// Package textnorm reduces raw utterances to ordered sequences of content
// lemmas: Unicode folding, UAX#29 word segmentation, stop-word and
// punctuation removal, and dictionary lemmatization.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/unicode/norm"
)

// Config controls token filtering.
type Config struct {
	// MinTokenLength drops surviving tokens shorter than this many runes.
	MinTokenLength int
}

// DefaultConfig returns the filtering defaults.
func DefaultConfig() Config {
	return Config{MinTokenLength: 2}
}

// Normalizer turns one raw utterance into its content-lemma sequence.
type Normalizer struct {
	lex    *Lexicon
	minLen int
}

// New returns a Normalizer over the given Lexicon.
func New(lex *Lexicon, cfg Config) *Normalizer {
	minLen := cfg.MinTokenLength
	if minLen < 1 {
		minLen = 1
	}
	return &Normalizer{lex: lex, minLen: minLen}
}

// Normalize segments text into words, drops punctuation-only and stop-listed
// tokens, and lemmatizes the survivors in order. Stop words are matched on
// the lowercased surface form, before lemmatization. An empty result is a
// valid outcome, not an error.
func (n *Normalizer) Normalize(text string) []string {
	var out []string
	tokens := words.FromString(fold(text))
	for tokens.Next() {
		tok := tokens.Value()
		if !hasLetterOrDigit(tok) {
			continue
		}
		if n.lex.IsStopWord(tok) {
			continue
		}
		if utf8.RuneCountInString(tok) < n.minLen {
			continue
		}
		out = append(out, n.lex.Lemma(tok))
	}
	return out
}

// fold applies NFKC normalization, lowercases, and maps the typographic
// apostrophe to ASCII so contractions match the stop list.
func fold(text string) string {
	s := strings.ToLower(norm.NFKC.String(text))
	return strings.ReplaceAll(s, "’", "'")
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

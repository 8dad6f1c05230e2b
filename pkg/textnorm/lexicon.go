package textnorm

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Lexicon bundles the language resources normalization depends on: a
// dictionary lemmatizer and the effective stop-word set. Build it once at
// startup and share it; it is read-only after construction and safe for
// concurrent use.
type Lexicon struct {
	lemmas *golem.Lemmatizer
	stop   map[string]bool
}

// English builds a Lexicon backed by the bundled English dictionary.
// extraStop entries are added to the built-in stop list and keep entries are
// removed from it; both are matched on the lowercased surface form.
func English(extraStop, keep []string) (*Lexicon, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english dictionary: %w", err)
	}

	stop := make(map[string]bool, len(defaultStopWords)+len(extraStop))
	for w := range defaultStopWords {
		stop[w] = true
	}
	for _, w := range extraStop {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			stop[w] = true
		}
	}
	for _, w := range keep {
		delete(stop, strings.ToLower(strings.TrimSpace(w)))
	}

	return &Lexicon{lemmas: lem, stop: stop}, nil
}

// IsStopWord reports whether the lowercased surface form w is stop-listed.
func (l *Lexicon) IsStopWord(w string) bool {
	return l.stop[w]
}

// Lemma returns the lowercase dictionary base form of w, or w itself when
// the dictionary has no entry for it.
func (l *Lexicon) Lemma(w string) string {
	return l.lemmas.LemmaLower(w)
}

// StopWordCount returns the size of the effective stop list.
func (l *Lexicon) StopWordCount() int {
	return len(l.stop)
}

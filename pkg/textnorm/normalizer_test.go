package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLexicon(t *testing.T) *Lexicon {
	t.Helper()
	lex, err := English(nil, nil)
	require.NoError(t, err)
	return lex
}

func TestNormalize(t *testing.T) {
	norm := New(newTestLexicon(t), DefaultConfig())

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "strips stop words and punctuation",
			text:     "How do I reset my password?",
			expected: []string{"reset", "password"},
		},
		{
			name:     "lemmatizes inflected forms",
			text:     "running refunds",
			expected: []string{"run", "refund"},
		},
		{
			name:     "lemmatizes past tense and plurals",
			text:     "changed policies",
			expected: []string{"change", "policy"},
		},
		{
			name:     "preserves token order and repeats",
			text:     "password reset password",
			expected: []string{"password", "reset", "password"},
		},
		{
			name:     "stop words only",
			text:     "can you help me please",
			expected: nil,
		},
		{
			name:     "punctuation only",
			text:     "?! ... --",
			expected: nil,
		},
		{
			name:     "empty input",
			text:     "",
			expected: nil,
		},
		{
			name:     "folds fullwidth compatibility forms",
			text:     "ｐａｓｓｗｏｒｄ",
			expected: []string{"password"},
		},
		{
			name:     "contraction is a single stop token",
			text:     "I can't login",
			expected: []string{"login"},
		},
		{
			name:     "typographic apostrophe matches stop list",
			text:     "I don’t need help",
			expected: nil,
		},
		{
			name:     "drops single-rune tokens",
			text:     "x y password",
			expected: []string{"password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, norm.Normalize(tt.text))
		})
	}
}

func TestNormalizeStopCheckPrecedesLemma(t *testing.T) {
	norm := New(newTestLexicon(t), DefaultConfig())

	// "wanted" is not on the stop list even though its lemma "want" is;
	// filtering happens on the surface form, so the lemma survives.
	assert.Equal(t, []string{"want", "refund"}, norm.Normalize("wanted a refund"))
}

func TestNormalizeMinTokenLength(t *testing.T) {
	lex := newTestLexicon(t)

	loose := New(lex, Config{MinTokenLength: 1})
	assert.Equal(t, []string{"x", "password"}, loose.Normalize("x password"))

	strict := New(lex, Config{MinTokenLength: 5})
	assert.Equal(t, []string{"password"}, strict.Normalize("new password"))
}

func TestEnglishStopListOverrides(t *testing.T) {
	custom, err := English([]string{"Password", " refund "}, []string{"help"})
	require.NoError(t, err)

	assert.True(t, custom.IsStopWord("password"))
	assert.True(t, custom.IsStopWord("refund"))
	assert.False(t, custom.IsStopWord("help"))

	norm := New(custom, DefaultConfig())
	assert.Equal(t, []string{"help"}, norm.Normalize("can you help me with my password?"))
}

func TestLexiconLemma(t *testing.T) {
	lex := newTestLexicon(t)

	assert.Equal(t, "run", lex.Lemma("running"))
	assert.Equal(t, "car", lex.Lemma("cars"))
	// Unknown words pass through unchanged.
	assert.Equal(t, "zzyzx", lex.Lemma("zzyzx"))
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartOfSpeechFromTreebank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want PartOfSpeech
		ok   bool
	}{
		{"JJ", PartOfSpeechAdjective, true},
		{"JJS", PartOfSpeechAdjective, true},
		{"VB", PartOfSpeechVerb, true},
		{"VBZ", PartOfSpeechVerb, true},
		{"NN", PartOfSpeechNoun, true},
		{"NNPS", PartOfSpeechNoun, true},
		{"RB", PartOfSpeechAdverb, true},
		{"DT", "", false},
		{"IN", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := PartOfSpeechFromTreebank(tt.tag)
		assert.Equal(t, tt.ok, ok, "tag %q", tt.tag)
		assert.Equal(t, tt.want, got, "tag %q", tt.tag)
	}
}

func TestPartOfSpeechFromWordNet(t *testing.T) {
	t.Parallel()

	for code, want := range map[string]PartOfSpeech{
		"n": PartOfSpeechNoun,
		"v": PartOfSpeechVerb,
		"a": PartOfSpeechAdjective,
		"s": PartOfSpeechAdjective,
		"r": PartOfSpeechAdverb,
	} {
		got, ok := PartOfSpeechFromWordNet(code)
		assert.True(t, ok, code)
		assert.Equal(t, want, got, code)
	}

	_, ok := PartOfSpeechFromWordNet("x")
	assert.False(t, ok)
}

func TestParsePartOfSpeech(t *testing.T) {
	t.Parallel()

	p, ok := ParsePartOfSpeech("verb")
	assert.True(t, ok)
	assert.Equal(t, PartOfSpeechVerb, p)

	p, ok = ParsePartOfSpeech(" R ")
	assert.True(t, ok)
	assert.Equal(t, PartOfSpeechAdverb, p)

	_, ok = ParsePartOfSpeech("pronoun")
	assert.False(t, ok)
}

package pos

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordlens/internal/domain"
)

func stubTagger(tokens ...Token) TagFunc {
	return func(string) ([]Token, error) { return tokens, nil }
}

func TestResolver_MapsTreebankTags(t *testing.T) {
	t.Parallel()

	r := NewResolverWithTagger(stubTagger(
		Token{"The", "DT"},
		Token{"car", "NN"},
		Token{"is", "VBZ"},
		Token{"fast", "JJ"},
		Token{"fast", "RB"},
	))

	tests := []struct {
		word string
		want *domain.PartOfSpeech
	}{
		{"car", ptr(domain.PartOfSpeechNoun)},
		{"is", ptr(domain.PartOfSpeechVerb)},
		{"FAST", ptr(domain.PartOfSpeechAdjective)}, // first occurrence wins
		{"the", nil},
		{"bicycle", nil},
	}
	for _, tt := range tests {
		got, err := r.PartOfSpeechOf("The car is fast fast", tt.word)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.word)
	}
}

func TestResolver_BlankInput(t *testing.T) {
	t.Parallel()

	called := false
	r := NewResolverWithTagger(func(string) ([]Token, error) {
		called = true
		return nil, nil
	})

	got, err := r.PartOfSpeechOf("   ", "fast")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = r.PartOfSpeechOf("a fast car", " ")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.False(t, called)
}

func TestResolver_TaggerError(t *testing.T) {
	t.Parallel()

	r := NewResolverWithTagger(func(string) ([]Token, error) {
		return nil, errors.New("boom")
	})

	_, err := r.PartOfSpeechOf("a fast car", "fast")
	assert.ErrorContains(t, err, "pos: tag: boom")
}

func TestResolver_Prose(t *testing.T) {
	t.Parallel()

	r := NewResolver()

	tests := []struct {
		sentence string
		word     string
		want     domain.PartOfSpeech
	}{
		{"The cat sat on the mat.", "cat", domain.PartOfSpeechNoun},
		{"I want to run every morning.", "run", domain.PartOfSpeechVerb},
		{"She is very happy today.", "happy", domain.PartOfSpeechAdjective},
		{"He quickly left the room.", "quickly", domain.PartOfSpeechAdverb},
	}
	for _, tt := range tests {
		got, err := r.PartOfSpeechOf(tt.sentence, tt.word)
		require.NoError(t, err, tt.sentence)
		require.NotNil(t, got, tt.sentence)
		assert.Equal(t, tt.want, *got, tt.sentence)
	}

	got, err := r.PartOfSpeechOf("The cat sat on the mat.", "the")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func ptr(p domain.PartOfSpeech) *domain.PartOfSpeech { return &p }

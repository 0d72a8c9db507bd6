// Package pos resolves the part of speech of a word inside a sentence using
// the prose averaged-perceptron tagger (Penn Treebank tags).
package pos

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/heartmarshall/wordlens/internal/domain"
)

// Token is one tagged token of a sentence.
type Token struct {
	Text string
	Tag  string
}

// TagFunc tokenizes and tags a sentence.
type TagFunc func(sentence string) ([]Token, error)

// Resolver maps a word occurrence to a WordNet part of speech.
type Resolver struct {
	tag TagFunc
}

// NewResolver returns a Resolver backed by prose.
func NewResolver() *Resolver {
	return &Resolver{tag: proseTag}
}

// NewResolverWithTagger returns a Resolver backed by a custom tagger.
func NewResolverWithTagger(tag TagFunc) *Resolver {
	return &Resolver{tag: tag}
}

// PartOfSpeechOf tags sentence and maps the Penn tag of the first token
// equal to word (case-insensitive). It returns nil when the word does not
// occur or its tag has no WordNet category.
func (r *Resolver) PartOfSpeechOf(sentence, word string) (*domain.PartOfSpeech, error) {
	word = strings.TrimSpace(word)
	if strings.TrimSpace(sentence) == "" || word == "" {
		return nil, nil
	}

	tokens, err := r.tag(sentence)
	if err != nil {
		return nil, fmt.Errorf("pos: tag: %w", err)
	}

	for _, tok := range tokens {
		if !strings.EqualFold(tok.Text, word) {
			continue
		}
		p, ok := domain.PartOfSpeechFromTreebank(tok.Tag)
		if !ok {
			return nil, nil
		}
		return &p, nil
	}
	return nil, nil
}

func proseTag(sentence string) ([]Token, error) {
	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}

	tokens := doc.Tokens()
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, Token{Text: t.Text, Tag: t.Tag})
	}
	return out, nil
}

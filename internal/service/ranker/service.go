// Package ranker orders synonym candidates by semantic similarity to a
// context sentence.
package ranker

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/wordlens/internal/domain"
)

type embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type synonymSource interface {
	Synonyms(word string, pos *domain.PartOfSpeech) []string
}

// Service ranks candidates. A nil embedder is allowed: ranking with a blank
// context still works, anything else fails with domain.ErrNotInitialized.
type Service struct {
	log      *slog.Logger
	embedder embedder
	synonyms synonymSource
}

// NewService creates a new ranker service.
func NewService(logger *slog.Logger, emb embedder, synonyms synonymSource) *Service {
	return &Service{
		log:      logger.With("service", "ranker"),
		embedder: emb,
		synonyms: synonyms,
	}
}

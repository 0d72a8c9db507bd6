package thesaurus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordlens/internal/domain"
)

// Like records one like for (word, candidate) and returns the new count.
func (s *Service) Like(ctx context.Context, word, candidate string) (int, error) {
	word, candidate, err := validatePair(word, candidate)
	if err != nil {
		return 0, err
	}
	if s.deps.Feedback == nil {
		return 0, fmt.Errorf("like: feedback store: %w", domain.ErrNotInitialized)
	}

	if err := s.deps.Feedback.RecordLike(ctx, word, candidate); err != nil {
		s.log.ErrorContext(ctx, "record like failed",
			slog.String("word", word),
			slog.String("candidate", candidate),
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("record like: %w", err)
	}

	n, err := s.deps.Feedback.GetLikes(ctx, word, candidate)
	if err != nil {
		return 0, fmt.Errorf("get likes: %w", err)
	}

	s.log.InfoContext(ctx, "like recorded",
		slog.String("word", word),
		slog.String("candidate", candidate),
		slog.Int("likes", n),
	)
	return n, nil
}

// Likes returns the like count of (word, candidate).
func (s *Service) Likes(ctx context.Context, word, candidate string) (int, error) {
	word, candidate, err := validatePair(word, candidate)
	if err != nil {
		return 0, err
	}
	if s.deps.Feedback == nil {
		return 0, fmt.Errorf("likes: feedback store: %w", domain.ErrNotInitialized)
	}

	n, err := s.deps.Feedback.GetLikes(ctx, word, candidate)
	if err != nil {
		return 0, fmt.Errorf("get likes: %w", err)
	}
	return n, nil
}

func validatePair(word, candidate string) (string, string, error) {
	word = strings.TrimSpace(word)
	candidate = strings.TrimSpace(candidate)

	var v domain.ValidationError
	if word == "" {
		v.Add("word", "required")
	}
	if candidate == "" {
		v.Add("candidate", "required")
	}
	return word, candidate, v.Err()
}

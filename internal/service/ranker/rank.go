package ranker

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/wordlens/internal/domain"
)

// Rank returns at most topN candidates ordered by descending cosine
// similarity to contextText. Candidates are deduplicated case-insensitively
// first. A blank context returns the first topN candidates in their original
// order without touching the model. Ties keep discovery order.
func (s *Service) Rank(ctx context.Context, candidates []string, contextText string, topN int) ([]string, error) {
	candidates = domain.DedupCandidates("", candidates)
	if len(candidates) == 0 || topN <= 0 {
		return []string{}, nil
	}

	if strings.TrimSpace(contextText) == "" {
		return candidates[:min(topN, len(candidates))], nil
	}

	if s.embedder == nil {
		return nil, fmt.Errorf("ranker: embed context: %w", domain.ErrNotInitialized)
	}

	contextVec, err := s.embedder.Embed(ctx, contextText)
	if err != nil {
		return nil, fmt.Errorf("ranker: embed context: %w", err)
	}

	type scored struct {
		text  string
		score float32
	}
	scores := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		vec, err := s.embedder.Embed(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("ranker: embed candidate %q: %w", c, err)
		}
		scores = append(scores, scored{text: c, score: cosine(contextVec, vec)})
	}

	slices.SortStableFunc(scores, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	out := make([]string, 0, min(topN, len(scores)))
	for _, sc := range scores[:min(topN, len(scores))] {
		out = append(out, sc.text)
	}

	s.log.DebugContext(ctx, "ranked candidates",
		slog.Int("candidates", len(candidates)),
		slog.Int("returned", len(out)),
	)
	return out, nil
}

// RankByContext ranks the unfiltered lexicon synonyms of word. An unknown
// word yields an empty result without any model call.
func (s *Service) RankByContext(ctx context.Context, word, contextText string, topN int) ([]string, error) {
	candidates := s.synonyms.Synonyms(word, nil)
	if len(candidates) == 0 {
		return []string{}, nil
	}
	return s.Rank(ctx, candidates, contextText, topN)
}

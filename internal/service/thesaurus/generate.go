package thesaurus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordlens/internal/domain"
)

// Predict asks the predictive model to continue partial.
func (s *Service) Predict(ctx context.Context, partial string) domain.GenerationResult {
	if strings.TrimSpace(partial) == "" {
		return domain.Failed(domain.FailureInvalidInput, 0, "text is required")
	}
	if s.deps.Predictor == nil {
		return domain.Failed(domain.FailureMissingToken, 0, "no predictive model configured")
	}

	res := s.deps.Predictor.Generate(ctx, partial, s.opts.PredictParams)
	s.logResult(ctx, "predict", res)
	return res
}

// GenerateSynonyms asks the generative model for synonyms of word in the
// given context.
func (s *Service) GenerateSynonyms(ctx context.Context, word, contextText string) domain.GenerationResult {
	word = strings.TrimSpace(word)
	if word == "" {
		return domain.Failed(domain.FailureInvalidInput, 0, "word is required")
	}
	if s.deps.SynonymGenerator == nil {
		return domain.Failed(domain.FailureMissingToken, 0, "no generative model configured")
	}

	res := s.deps.SynonymGenerator.Generate(ctx, SynonymPrompt(word, strings.TrimSpace(contextText)), s.opts.GenerateParams)
	s.logResult(ctx, "generate", res)
	return res
}

// SynonymPrompt builds the prompt sent to the generative model.
func SynonymPrompt(word, contextText string) string {
	return fmt.Sprintf(
		"Provide synonyms or related expressions for the word '%s' in the context: '%s'. "+
			"They should be distinct from each other and explained briefly.",
		word, contextText,
	)
}

func (s *Service) logResult(ctx context.Context, op string, res domain.GenerationResult) {
	if res.OK() {
		s.log.DebugContext(ctx, "generation succeeded", slog.String("op", op), slog.Int("chars", len(res.Text)))
		return
	}
	s.log.WarnContext(ctx, "generation failed",
		slog.String("op", op),
		slog.String("kind", string(res.Failure.Kind)),
		slog.Int("status", res.Failure.StatusCode),
		slog.String("message", res.Failure.Message),
	)
}

package thesaurus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordlens/internal/domain"
)

// AnalyzeInput is the input of Analyze.
type AnalyzeInput struct {
	Word    string
	Context string
	// TopN caps the ranked synonyms; <= 0 uses the configured default.
	TopN   int
	Enrich bool
}

// Analyze looks word up in the lexicon. With a context sentence it also
// resolves the word's part of speech there and returns POS-filtered
// synonyms. Synonyms are ranked against the context (discovery order when
// there is none) and annotated with like counts. An unknown word is not an
// error: every list is empty and ranking is skipped.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput) (*domain.Analysis, error) {
	word := strings.TrimSpace(in.Word)
	if word == "" {
		return nil, domain.NewValidationError("word", "required")
	}
	contextText := strings.TrimSpace(in.Context)
	topN := in.TopN
	if topN <= 0 {
		topN = s.opts.TopN
	}

	lex := s.deps.Lexicon
	if lex == nil {
		return nil, fmt.Errorf("analyze: lexicon: %w", domain.ErrNotInitialized)
	}
	a := &domain.Analysis{
		Word:               word,
		Context:            contextText,
		Definitions:        lex.Definitions(word),
		Examples:           lex.Examples(word),
		Antonyms:           lex.Antonyms(word),
		Synonyms:           lex.Synonyms(word, nil),
		ContextualSynonyms: []string{},
		Ranked:             []domain.RankedCandidate{},
	}

	if contextText != "" {
		a.ContextPOS = s.resolvePOS(ctx, contextText, word)
		a.ContextualSynonyms = lex.Synonyms(word, a.ContextPOS)
	}

	if len(a.Synonyms) > 0 {
		ranked, err := s.deps.Ranker.RankByContext(ctx, word, contextText, topN)
		if err != nil {
			return nil, fmt.Errorf("rank synonyms of %q: %w", word, err)
		}
		for _, c := range ranked {
			n, err := s.likesOf(ctx, word, c)
			if err != nil {
				return nil, fmt.Errorf("get likes for %q: %w", c, err)
			}
			a.Ranked = append(a.Ranked, domain.RankedCandidate{Candidate: c, Likes: n})
		}
	}

	if in.Enrich && s.deps.Dictionary != nil {
		a.Enrichment = s.deps.Dictionary.Lookup(ctx, word)
	}

	s.log.DebugContext(ctx, "word analyzed",
		slog.String("word", word),
		slog.Bool("found", a.Found()),
		slog.Int("synonyms", len(a.Synonyms)),
		slog.Int("ranked", len(a.Ranked)),
	)
	return a, nil
}

// likesOf reads a like count; without a feedback store every count is 0.
func (s *Service) likesOf(ctx context.Context, word, candidate string) (int, error) {
	if s.deps.Feedback == nil {
		return 0, nil
	}
	return s.deps.Feedback.GetLikes(ctx, word, candidate)
}

// resolvePOS returns nil when the tagger fails, so synonyms stay unfiltered.
func (s *Service) resolvePOS(ctx context.Context, sentence, word string) *domain.PartOfSpeech {
	if s.deps.POS == nil {
		return nil
	}
	p, err := s.deps.POS.PartOfSpeechOf(sentence, word)
	if err != nil {
		s.log.WarnContext(ctx, "pos tagging failed, using unfiltered synonyms",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return p
}

// Complete returns lemmas starting with prefix. limit is clamped to
// [1, 50] and defaults to 10. Without a lexicon the result is empty.
func (s *Service) Complete(_ context.Context, prefix string, limit int) []string {
	if s.deps.Lexicon == nil {
		return []string{}
	}
	switch {
	case limit <= 0:
		limit = defaultCompleteLimit
	case limit > maxCompleteLimit:
		limit = maxCompleteLimit
	}
	return s.deps.Lexicon.Complete(prefix, limit)
}

// Package thesaurus orchestrates word analysis, synonym ranking, feedback
// and LLM-backed suggestions. Both the CLI and the REST API call it.
package thesaurus

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/wordlens/internal/domain"
)

type lexicon interface {
	Synonyms(word string, pos *domain.PartOfSpeech) []string
	Definitions(word string) []string
	Examples(word string) []string
	Antonyms(word string) []string
	Complete(prefix string, limit int) []string
}

type posResolver interface {
	PartOfSpeechOf(sentence, word string) (*domain.PartOfSpeech, error)
}

type synonymRanker interface {
	RankByContext(ctx context.Context, word, contextText string, topN int) ([]string, error)
}

type feedbackStore interface {
	RecordLike(ctx context.Context, word, candidate string) error
	GetLikes(ctx context.Context, word, candidate string) (int, error)
}

type dictionary interface {
	Lookup(ctx context.Context, word string) *domain.Enrichment
}

type generator interface {
	Generate(ctx context.Context, prompt string, params domain.GenerationParams) domain.GenerationResult
}

// Deps are the collaborators of Service. Any of them may be nil: Analyze
// and Like, Likes then report domain.ErrNotInitialized, Complete returns
// nothing, and the remaining operations degrade.
type Deps struct {
	Lexicon          lexicon
	POS              posResolver
	Ranker           synonymRanker
	Feedback         feedbackStore
	Dictionary       dictionary
	Predictor        generator
	SynonymGenerator generator
}

// Options tune the service.
type Options struct {
	TopN           int
	PredictParams  domain.GenerationParams
	GenerateParams domain.GenerationParams
}

const (
	defaultTopN          = 5
	defaultCompleteLimit = 10
	maxCompleteLimit     = 50
)

// Service implements the thesaurus operations.
type Service struct {
	log  *slog.Logger
	deps Deps
	opts Options
}

// NewService creates a new thesaurus service.
func NewService(logger *slog.Logger, deps Deps, opts Options) *Service {
	if opts.TopN <= 0 {
		opts.TopN = defaultTopN
	}
	return &Service{
		log:  logger.With("service", "thesaurus"),
		deps: deps,
		opts: opts,
	}
}

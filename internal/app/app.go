package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/wordlens/internal/adapter/embedding/onnx"
	"github.com/heartmarshall/wordlens/internal/adapter/feedback/bbolt"
	"github.com/heartmarshall/wordlens/internal/adapter/feedback/jsonfile"
	"github.com/heartmarshall/wordlens/internal/adapter/lexicon/wordnet"
	"github.com/heartmarshall/wordlens/internal/adapter/llm/anthropic"
	"github.com/heartmarshall/wordlens/internal/adapter/llm/hfinference"
	"github.com/heartmarshall/wordlens/internal/adapter/pos"
	"github.com/heartmarshall/wordlens/internal/adapter/postgres"
	pgfeedback "github.com/heartmarshall/wordlens/internal/adapter/postgres/feedback"
	"github.com/heartmarshall/wordlens/internal/adapter/provider/freedict"
	"github.com/heartmarshall/wordlens/internal/config"
	"github.com/heartmarshall/wordlens/internal/domain"
	"github.com/heartmarshall/wordlens/internal/service/ranker"
	"github.com/heartmarshall/wordlens/internal/service/thesaurus"
)

// ErrAlreadyInitialized is returned by a second call to Init.
var ErrAlreadyInitialized = errors.New("app: already initialized")

var initialized atomic.Bool

type feedbackBackend interface {
	RecordLike(ctx context.Context, word, candidate string) error
	GetLikes(ctx context.Context, word, candidate string) (int, error)
	Ping(ctx context.Context) error
}

type generator interface {
	Generate(ctx context.Context, prompt string, params domain.GenerationParams) domain.GenerationResult
}

// CheckFunc reports the health of one component. domain.ErrNotInitialized
// means the component is disabled by configuration.
type CheckFunc = func(ctx context.Context) error

// Component is a set of the runtime parts that are expensive to load.
type Component uint8

const (
	// ComponentLexicon is the WordNet index behind Analyze and Complete.
	ComponentLexicon Component = 1 << iota
	// ComponentEmbedder is the sentence-embedding model. It needs the lexicon.
	ComponentEmbedder
	// ComponentFeedback is the like-count store.
	ComponentFeedback

	// ComponentNone builds only the resource-free parts.
	ComponentNone Component = 0
	ComponentAll            = ComponentLexicon | ComponentEmbedder | ComponentFeedback
)

// Has reports whether c includes all of other.
func (c Component) Has(other Component) bool { return c&other == other }

// Option configures Init.
type Option func(*options)

type options struct {
	components Component
}

// WithComponents limits Init to the given parts. Skipped parts report
// domain.ErrNotInitialized from their health check and from the service
// operations that need them. The LLM gateways and the dictionary client
// hold no resources and are always built.
func WithComponents(c Component) Option {
	return func(o *options) { o.components = c }
}

// Runtime holds the process-wide components. It is created once by Init
// and released by Close.
type Runtime struct {
	Config    *config.Config
	Logger    *slog.Logger
	Thesaurus *thesaurus.Service

	// Checks are keyed by component name: lexicon, embedder, feedback.
	Checks map[string]CheckFunc

	closeOnce sync.Once
	closers   []func() error
}

// Init loads the lexicon, the embedding model and the feedback backend and
// wires the services. It may be called once per process; later calls
// return ErrAlreadyInitialized.
func Init(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (*Runtime, error) {
	if !initialized.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}

	o := options{components: ComponentAll}
	for _, opt := range opts {
		opt(&o)
	}

	rt, err := newRuntime(ctx, cfg, logger, o.components)
	if err != nil {
		initialized.Store(false)
		return nil, err
	}
	return rt, nil
}

func newRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger, components Component) (_ *Runtime, err error) {
	rt := &Runtime{
		Config: cfg,
		Logger: logger,
		Checks: make(map[string]CheckFunc, 3),
	}
	defer func() {
		if err != nil {
			rt.Close()
		}
	}()

	deps := thesaurus.Deps{
		POS:        pos.NewResolver(),
		Dictionary: freedict.NewProvider(cfg.Dictionary, logger),
	}

	rt.Checks["lexicon"] = disabled
	rt.Checks["embedder"] = disabled
	if components.Has(ComponentLexicon) {
		lex, err := rt.loadLexicon(cfg.Lexicon)
		if err != nil {
			return nil, err
		}
		embedding := cfg.Embedding
		if !components.Has(ComponentEmbedder) {
			embedding.Backend = config.EmbeddingBackendNone
		}
		rank, err := rt.newRanker(embedding, lex)
		if err != nil {
			return nil, err
		}
		deps.Lexicon = lex
		deps.Ranker = rank
	}

	rt.Checks["feedback"] = disabled
	if components.Has(ComponentFeedback) {
		fb, err := rt.newFeedback(ctx, cfg)
		if err != nil {
			return nil, err
		}
		rt.Checks["feedback"] = fb.Ping
		deps.Feedback = fb
	}

	deps.Predictor, deps.SynonymGenerator = newGenerators(cfg.LLM, logger)

	rt.Thesaurus = thesaurus.NewService(logger, deps, thesaurus.Options{
		TopN: cfg.Ranker.TopN,
		PredictParams: domain.GenerationParams{
			MaxNewTokens: cfg.LLM.PredictMaxTokens,
			Temperature:  cfg.LLM.Temperature,
		},
		GenerateParams: domain.GenerationParams{
			MaxNewTokens: cfg.LLM.GenerateMaxTokens,
			Temperature:  cfg.LLM.Temperature,
		},
	})

	logger.Info("runtime initialized",
		slog.String("version", BuildVersion()),
		slog.String("embedding", cfg.Embedding.Backend),
		slog.String("feedback", cfg.Feedback.Backend),
		slog.String("llm", cfg.LLM.Backend),
	)
	return rt, nil
}

func disabled(context.Context) error { return domain.ErrNotInitialized }

func (rt *Runtime) loadLexicon(cfg config.LexiconConfig) (*wordnet.Index, error) {
	start := time.Now()
	lex, err := wordnet.Load(cfg.WordNetDir)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	stats := lex.Stats()
	rt.Logger.Info("lexicon loaded",
		slog.String("dir", cfg.WordNetDir),
		slog.Int("lemmas", stats.Lemmas),
		slog.Int("synsets", stats.Synsets),
		slog.Duration("took", time.Since(start)),
	)
	rt.Checks["lexicon"] = func(context.Context) error {
		if lex.Stats().Lemmas == 0 {
			return fmt.Errorf("lexicon is empty: %w", domain.ErrUnavailable)
		}
		return nil
	}
	return lex, nil
}

func (rt *Runtime) newRanker(cfg config.EmbeddingConfig, lex *wordnet.Index) (*ranker.Service, error) {
	if cfg.Backend == config.EmbeddingBackendNone {
		return ranker.NewService(rt.Logger, nil, lex), nil
	}

	start := time.Now()
	enc, err := onnx.New(onnx.Config{
		OrtLibrary:    cfg.OrtLibrary,
		ModelPath:     cfg.ModelPath,
		TokenizerPath: cfg.TokenizerPath,
		MaxSeqLen:     cfg.MaxSeqLen,
		Dimension:     cfg.Dimension,
	})
	if err != nil {
		return nil, fmt.Errorf("load embedding model: %w", err)
	}
	rt.closers = append(rt.closers, enc.Close)
	rt.Logger.Info("embedding model loaded",
		slog.String("model", enc.ModelID()),
		slog.Duration("took", time.Since(start)),
	)
	rt.Checks["embedder"] = func(ctx context.Context) error {
		_, err := enc.Embed(ctx, "health")
		return err
	}
	return ranker.NewService(rt.Logger, enc, lex), nil
}

func (rt *Runtime) newFeedback(ctx context.Context, cfg *config.Config) (feedbackBackend, error) {
	switch cfg.Feedback.Backend {
	case config.FeedbackBackendBolt:
		store, err := bbolt.Open(cfg.Feedback.BoltPath)
		if err != nil {
			return nil, fmt.Errorf("open feedback store: %w", err)
		}
		rt.closers = append(rt.closers, store.Close)
		return store, nil

	case config.FeedbackBackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect feedback database: %w", err)
		}
		rt.closers = append(rt.closers, func() error { pool.Close(); return nil })

		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return nil, fmt.Errorf("migrate feedback database: %w", err)
		}
		rt.Logger.Info("feedback migrations applied", slog.Int("count", applied))
		return pgfeedback.New(pool), nil

	default:
		return jsonfile.New(cfg.Feedback.Path), nil
	}
}

func newGenerators(cfg config.LLMConfig, logger *slog.Logger) (predictor, synGen generator) {
	if cfg.Backend == config.LLMBackendAnthropic {
		c := anthropic.New(anthropic.Config{
			APIKey:  cfg.AnthropicKey,
			Model:   cfg.AnthropicModel,
			Timeout: cfg.Timeout,
		}, logger)
		return c, c
	}
	return hfinference.New(cfg.PredictiveURL, cfg.HFToken, cfg.Timeout, logger),
		hfinference.New(cfg.GenerativeURL, cfg.HFToken, cfg.Timeout, logger)
}

// Close releases the embedding model and the feedback backend. It is safe
// to call more than once.
func (rt *Runtime) Close() error {
	var err error
	rt.closeOnce.Do(func() {
		for i := len(rt.closers) - 1; i >= 0; i-- {
			err = errors.Join(err, rt.closers[i]())
		}
	})
	return err
}

package ranker

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordlens/internal/domain"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockEmbedder struct {
	EmbedFunc func(ctx context.Context, text string) ([]float32, error)
	calls     []string
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	m.calls = append(m.calls, text)
	return m.EmbedFunc(ctx, text)
}

type mockSynonymSource struct {
	SynonymsFunc func(word string, pos *domain.PartOfSpeech) []string
}

func (m *mockSynonymSource) Synonyms(word string, pos *domain.PartOfSpeech) []string {
	return m.SynonymsFunc(word, pos)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// vectorEmbedder returns fixed vectors by lowercased text.
func vectorEmbedder(vectors map[string][]float32) *mockEmbedder {
	return &mockEmbedder{
		EmbedFunc: func(_ context.Context, text string) ([]float32, error) {
			v, ok := vectors[strings.ToLower(text)]
			if !ok {
				return nil, errors.New("no vector for " + text)
			}
			return v, nil
		},
	}
}

func failingEmbedder(t *testing.T) *mockEmbedder {
	return &mockEmbedder{
		EmbedFunc: func(_ context.Context, text string) ([]float32, error) {
			t.Fatalf("unexpected embed call for %q", text)
			return nil, nil
		},
	}
}

func synonyms(list ...string) *mockSynonymSource {
	return &mockSynonymSource{
		SynonymsFunc: func(string, *domain.PartOfSpeech) []string { return list },
	}
}

func newTestService(emb embedder, src synonymSource) *Service {
	return NewService(slog.Default(), emb, src)
}

var speedVectors = map[string][]float32{
	"a fast car":  {1, 0, 0},
	"quick":       {0.6, 0.8, 0},
	"speedy":      {0.9, 0.1, 0},
	"rapid":       {0.8, 0.2, 0},
	"firm":        {0, 0, 1},
	"steadfast":   {-0.1, 0, 1},
	"go without":  {0, 1, 0},
	"tied":        {0.5, 0.5, 0},
	"also tied":   {0.5, 0.5, 0},
	"zero vector": {0, 0, 0},
}

// ---------------------------------------------------------------------------
// Rank
// ---------------------------------------------------------------------------

func TestRank_EmptyCandidates(t *testing.T) {
	t.Parallel()

	svc := newTestService(failingEmbedder(t), synonyms())

	got, err := svc.Rank(context.Background(), nil, "a fast car", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestRank_BlankContextKeepsOrder(t *testing.T) {
	t.Parallel()

	svc := newTestService(failingEmbedder(t), synonyms())

	for _, ctxText := range []string{"", "   ", "\t\n"} {
		got, err := svc.Rank(context.Background(), []string{"quick", "speedy", "rapid"}, ctxText, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"quick", "speedy"}, got)
	}

	got, err := svc.Rank(context.Background(), []string{"quick", "speedy"}, "", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"quick", "speedy"}, got)
}

func TestRank_BlankContextWithoutEmbedder(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, synonyms())

	got, err := svc.Rank(context.Background(), []string{"quick", "speedy"}, "", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"quick"}, got)

	_, err = svc.Rank(context.Background(), []string{"quick"}, "a fast car", 1)
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestRank_NonPositiveTopN(t *testing.T) {
	t.Parallel()

	svc := newTestService(failingEmbedder(t), synonyms())

	for _, n := range []int{0, -3} {
		got, err := svc.Rank(context.Background(), []string{"quick"}, "a fast car", n)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestRank_OrdersBySimilarity(t *testing.T) {
	t.Parallel()

	emb := vectorEmbedder(speedVectors)
	svc := newTestService(emb, synonyms())

	got, err := svc.Rank(context.Background(), []string{"quick", "firm", "speedy", "rapid"}, "a fast car", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"speedy", "rapid", "quick"}, got)

	// one context embedding plus one per candidate, not batched
	assert.Equal(t, []string{"a fast car", "quick", "firm", "speedy", "rapid"}, emb.calls)
}

func TestRank_DeduplicatesBeforeRanking(t *testing.T) {
	t.Parallel()

	emb := vectorEmbedder(speedVectors)
	svc := newTestService(emb, synonyms())

	got, err := svc.Rank(context.Background(), []string{"Quick", "quick", "go_without", "go without", "QUICK"}, "a fast car", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Quick", "go without"}, got)
	assert.Len(t, emb.calls, 3)
}

func TestRank_TiesKeepDiscoveryOrder(t *testing.T) {
	t.Parallel()

	svc := newTestService(vectorEmbedder(speedVectors), synonyms())

	// "tied" and "also tied" have identical vectors.
	got, err := svc.Rank(context.Background(), []string{"also tied", "tied", "firm"}, "a fast car", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"also tied", "tied", "firm"}, got)

	got, err = svc.Rank(context.Background(), []string{"tied", "also tied", "firm"}, "a fast car", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"tied", "also tied", "firm"}, got)
}

func TestRank_NegativeSimilarityLast(t *testing.T) {
	t.Parallel()

	svc := newTestService(vectorEmbedder(speedVectors), synonyms())

	got, err := svc.Rank(context.Background(), []string{"steadfast", "zero vector", "quick"}, "a fast car", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"quick", "zero vector", "steadfast"}, got)
}

func TestRank_Deterministic(t *testing.T) {
	t.Parallel()

	svc := newTestService(vectorEmbedder(speedVectors), synonyms())
	candidates := []string{"firm", "quick", "tied", "speedy", "also tied", "rapid"}

	first, err := svc.Rank(context.Background(), candidates, "a fast car", 4)
	require.NoError(t, err)
	for range 5 {
		again, err := svc.Rank(context.Background(), candidates, "a fast car", 4)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRank_LengthBound(t *testing.T) {
	t.Parallel()

	svc := newTestService(vectorEmbedder(speedVectors), synonyms())
	candidates := []string{"quick", "Quick", "speedy", "rapid"}

	for n := 0; n <= 6; n++ {
		got, err := svc.Rank(context.Background(), candidates, "a fast car", n)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), min(n, 3), "n=%d", n)
	}
}

func TestRank_EmbeddingErrorPropagates(t *testing.T) {
	t.Parallel()

	errModel := errors.New("model unavailable")

	t.Run("context", func(t *testing.T) {
		t.Parallel()
		emb := &mockEmbedder{EmbedFunc: func(context.Context, string) ([]float32, error) {
			return nil, errModel
		}}
		_, err := newTestService(emb, synonyms()).Rank(context.Background(), []string{"quick"}, "a fast car", 1)
		assert.ErrorIs(t, err, errModel)
		assert.ErrorContains(t, err, "embed context")
	})

	t.Run("candidate", func(t *testing.T) {
		t.Parallel()
		emb := &mockEmbedder{EmbedFunc: func(_ context.Context, text string) ([]float32, error) {
			if text == "speedy" {
				return nil, errModel
			}
			return []float32{1, 0}, nil
		}}
		_, err := newTestService(emb, synonyms()).Rank(context.Background(), []string{"quick", "speedy"}, "a fast car", 2)
		assert.ErrorIs(t, err, errModel)
		assert.ErrorContains(t, err, `"speedy"`)
	})
}

// ---------------------------------------------------------------------------
// RankByContext
// ---------------------------------------------------------------------------

func TestRankByContext_UnknownWordSkipsModel(t *testing.T) {
	t.Parallel()

	svc := newTestService(failingEmbedder(t), synonyms())

	got, err := svc.RankByContext(context.Background(), "qwzx", "a fast car", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestRankByContext_UsesUnfilteredSynonyms(t *testing.T) {
	t.Parallel()

	var gotPOS *domain.PartOfSpeech
	var gotWord string
	src := &mockSynonymSource{SynonymsFunc: func(word string, pos *domain.PartOfSpeech) []string {
		gotWord, gotPOS = word, pos
		return []string{"firm", "speedy", "go without"}
	}}
	svc := newTestService(vectorEmbedder(speedVectors), src)

	got, err := svc.RankByContext(context.Background(), "fast", "a fast car", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"speedy", "firm"}, got)
	assert.Equal(t, "fast", gotWord)
	assert.Nil(t, gotPOS)
}

func TestCosine(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, cosine([]float32{1, 2}, []float32{2, 4}), 1e-6)
	assert.InDelta(t, -1.0, cosine([]float32{1, 0}, []float32{-3, 0}), 1e-6)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.Zero(t, cosine(nil, []float32{1}))
	assert.Zero(t, cosine([]float32{0, 0}, []float32{1, 1}))
}

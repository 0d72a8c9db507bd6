package wordnet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordlens/internal/domain"
)

func loadFixture(t *testing.T) *Index {
	t.Helper()
	idx, err := Load(filepath.Join("testdata", "oewn"))
	require.NoError(t, err)
	return idx
}

func posPtr(p domain.PartOfSpeech) *domain.PartOfSpeech { return &p }

func TestLoad_Stats(t *testing.T) {
	t.Parallel()

	idx := loadFixture(t)
	assert.Equal(t, Stats{Lemmas: 11, Synsets: 8, Senses: 15}, idx.Stats())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := Load("/nonexistent/oewn")
		assert.ErrorContains(t, err, "open directory")
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "entries-a.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "is not a directory")
	})

	t.Run("no entry files", func(t *testing.T) {
		t.Parallel()
		_, err := Load(t.TempDir())
		assert.ErrorContains(t, err, "no entries-*.json files")
	})

	t.Run("invalid entry JSON", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "entries-a.json"), []byte("not json"), 0o644))
		_, err := Load(dir)
		assert.ErrorContains(t, err, "entries-a.json")
	})

	t.Run("invalid synset JSON", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "entries-a.json"), []byte("{}"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "noun.act.json"), []byte("[1,2]"), 0o644))
		_, err := Load(dir)
		assert.ErrorContains(t, err, "noun.act.json")
	})
}

func TestIndex_Synonyms(t *testing.T) {
	t.Parallel()

	idx := loadFixture(t)

	tests := []struct {
		name string
		word string
		pos  *domain.PartOfSpeech
		want []string
	}{
		{
			name: "unfiltered in part-of-speech order",
			word: "fast",
			want: []string{"fasting", "go without", "quick", "speedy", "firm", "steadfast", "quickly"},
		},
		{
			name: "adjective includes satellites",
			word: "fast",
			pos:  posPtr(domain.PartOfSpeechAdjective),
			want: []string{"quick", "speedy", "firm", "steadfast"},
		},
		{
			name: "verb",
			word: "fast",
			pos:  posPtr(domain.PartOfSpeechVerb),
			want: []string{"go without"},
		},
		{
			name: "case-insensitive",
			word: "QUICK",
			want: []string{"fast", "speedy"},
		},
		{
			name: "underscore lookup",
			word: "go_without",
			want: []string{"fast"},
		},
		{
			name: "no synset for filtered part of speech",
			word: "slow",
			pos:  posPtr(domain.PartOfSpeechNoun),
			want: []string{},
		},
		{
			name: "unknown word",
			word: "qwzx",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := idx.Synonyms(tt.word, tt.pos)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndex_Definitions(t *testing.T) {
	t.Parallel()

	idx := loadFixture(t)

	assert.Equal(t, []string{
		"abstaining from food",
		"abstain from certain foods, as for religious or medical reasons",
		"acting or moving or capable of acting or moving quickly",
		"securely fixed in place",
		"quickly or rapidly",
	}, idx.Definitions("Fast"))

	assert.Equal(t, []string{"abstaining from food"}, idx.Definitions("fasting"))
	assert.Empty(t, idx.Definitions("qwzx"))
	assert.NotNil(t, idx.Definitions("qwzx"))
}

func TestIndex_Examples(t *testing.T) {
	t.Parallel()

	idx := loadFixture(t)

	assert.Equal(t, []string{
		"Catholics sometimes fast during Lent",
		"fast film",
		"on the fast track in school",
		"the post was still firm after being hit by the car",
		"run fast",
	}, idx.Examples("fast"))

	assert.Empty(t, idx.Examples("slow"))
}

func TestIndex_Antonyms(t *testing.T) {
	t.Parallel()

	idx := loadFixture(t)

	assert.Equal(t, []string{"slow", "slowly"}, idx.Antonyms("fast"))
	assert.Equal(t, []string{"fast"}, idx.Antonyms("slow"))
	// quick shares a synset with fast but has no antonym of its own.
	assert.Empty(t, idx.Antonyms("quick"))
	assert.Empty(t, idx.Antonyms("qwzx"))
}

func TestIndex_Complete(t *testing.T) {
	t.Parallel()

	idx := loadFixture(t)

	assert.Equal(t, []string{"fast", "fastball", "fasting"}, idx.Complete("fa", 10))
	assert.Equal(t, []string{"fast", "fastball"}, idx.Complete("FA", 2))
	assert.Equal(t, []string{"go without"}, idx.Complete("go_", 5))
	assert.Equal(t, []string{"slow", "slowly"}, idx.Complete("slo", 5))
	assert.Empty(t, idx.Complete("zz", 5))
	assert.Empty(t, idx.Complete("  ", 5))
	assert.Empty(t, idx.Complete("fa", 0))
}

// Package wordnet is an in-memory lexical index over an Open English WordNet
// JSON distribution. It answers synonym, definition, example, antonym and
// prefix-completion queries. All lookups are case-insensitive and treat "_"
// and " " alike; unknown words yield empty results, never errors.
package wordnet

import (
	"cmp"
	"slices"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/heartmarshall/wordlens/internal/domain"
)

type sense struct {
	synset   string
	pos      domain.PartOfSpeech
	antonyms []string // target sense IDs
}

type synset struct {
	members     []string
	pos         domain.PartOfSpeech
	definitions []string
	examples    []string
}

// Index is a read-only lexicon. Safe for concurrent use after Load returns.
type Index struct {
	words      map[string][]sense // normalized lemma -> senses in file order
	synsets    map[string]synset
	senseLemma map[string]string // sense ID -> display lemma
	trie       *patricia.Trie    // normalized lemma -> display lemma
}

func newIndex() *Index {
	return &Index{
		words:      make(map[string][]sense),
		synsets:    make(map[string]synset),
		senseLemma: make(map[string]string),
		trie:       patricia.NewTrie(),
	}
}

// Stats describes the loaded lexicon.
type Stats struct {
	Lemmas  int
	Synsets int
	Senses  int
}

func (idx *Index) Stats() Stats {
	return Stats{
		Lemmas:  len(idx.words),
		Synsets: len(idx.synsets),
		Senses:  len(idx.senseLemma),
	}
}

// Synonyms returns the lemma members of every synset of word, restricted to
// pos when it is non-nil. The query word itself is excluded and duplicates
// are dropped, keeping discovery order.
func (idx *Index) Synonyms(word string, pos *domain.PartOfSpeech) []string {
	var members []string
	for _, s := range idx.senses(word) {
		if pos != nil && idx.senseSynsetPOS(s) != *pos {
			continue
		}
		members = append(members, idx.synsets[s.synset].members...)
	}
	return domain.DedupCandidates(word, members)
}

// Definitions returns the distinct definitions of every synset of word.
func (idx *Index) Definitions(word string) []string {
	var out []string
	for _, s := range idx.senses(word) {
		out = append(out, idx.synsets[s.synset].definitions...)
	}
	return distinct(out)
}

// Examples returns the distinct usage examples of every synset of word.
func (idx *Index) Examples(word string) []string {
	var out []string
	for _, s := range idx.senses(word) {
		out = append(out, idx.synsets[s.synset].examples...)
	}
	return distinct(out)
}

// Antonyms returns the lemmas of the antonym targets of word's own senses.
func (idx *Index) Antonyms(word string) []string {
	var out []string
	for _, s := range idx.senses(word) {
		for _, target := range s.antonyms {
			if lemma, ok := idx.senseLemma[target]; ok {
				out = append(out, lemma)
			}
		}
	}
	return domain.DedupCandidates(word, out)
}

// Complete returns up to limit lemmas starting with prefix. Lemmas with more
// senses come first; ties are alphabetical. A blank prefix or non-positive
// limit yields an empty result.
func (idx *Index) Complete(prefix string, limit int) []string {
	key := domain.NormalizeCandidate(prefix)
	if key == "" || limit <= 0 {
		return []string{}
	}

	type match struct {
		lemma  string
		senses int
	}
	var matches []match

	_ = idx.trie.VisitSubtree(patricia.Prefix(key), func(p patricia.Prefix, item patricia.Item) error {
		lemma, _ := item.(string)
		matches = append(matches, match{lemma: lemma, senses: len(idx.words[string(p)])})
		return nil
	})

	slices.SortFunc(matches, func(a, b match) int {
		if c := cmp.Compare(b.senses, a.senses); c != 0 {
			return c
		}
		return cmp.Compare(a.lemma, b.lemma)
	})

	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches[:min(limit, len(matches))] {
		out = append(out, m.lemma)
	}
	return out
}

func (idx *Index) senses(word string) []sense {
	return idx.words[domain.NormalizeCandidate(word)]
}

// senseSynsetPOS prefers the entry's POS and falls back to the synset's.
func (idx *Index) senseSynsetPOS(s sense) domain.PartOfSpeech {
	if s.pos != "" {
		return s.pos
	}
	return idx.synsets[s.synset].pos
}

func distinct(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

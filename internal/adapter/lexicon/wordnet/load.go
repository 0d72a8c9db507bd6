package wordnet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/heartmarshall/wordlens/internal/domain"
)

// OEWN 2025 JSON deserialization types.
//
// Expected directory structure (as distributed by https://github.com/globalwordnet/english-wordnet):
//
//	entries-a.json … entries-z.json   lemma entries keyed by word
//	noun.*.json, verb.*.json, …       synsets keyed by synset ID

// oewnEntryFile represents an entries-*.json file: {"word": {"pos": {...}}}.
type oewnEntryFile map[string]map[string]json.RawMessage

type oewnPOSEntry struct {
	Sense []oewnSense `json:"sense"`
}

type oewnSense struct {
	ID      string   `json:"id"`
	Synset  string   `json:"synset"`
	Antonym []string `json:"antonym"`
}

type oewnSynset struct {
	Members      []string          `json:"members"`
	PartOfSpeech string            `json:"partOfSpeech"`
	Definition   []string          `json:"definition"`
	Example      []json.RawMessage `json:"example"`
}

// oewnExample is the object form of a synset example; plain strings are
// also allowed.
type oewnExample struct {
	Text string `json:"text"`
}

// entryPOSOrder fixes the order in which a word's parts of speech are
// visited, since JSON object order is not preserved.
var entryPOSOrder = []string{"n", "v", "a", "s", "r"}

// Load reads an OEWN JSON directory into a new Index.
func Load(dir string) (*Index, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("wordnet: open directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("wordnet: %s is not a directory", dir)
	}

	entryFiles, err := filepath.Glob(filepath.Join(dir, "entries-*.json"))
	if err != nil {
		return nil, fmt.Errorf("wordnet: glob entry files: %w", err)
	}
	if len(entryFiles) == 0 {
		return nil, fmt.Errorf("wordnet: no entries-*.json files in %s", dir)
	}
	slices.Sort(entryFiles)

	idx := newIndex()

	for _, path := range entryFiles {
		entries, err := readEntryFile(path)
		if err != nil {
			return nil, fmt.Errorf("wordnet: read %s: %w", filepath.Base(path), err)
		}
		if err := idx.addEntries(entries); err != nil {
			return nil, fmt.Errorf("wordnet: read %s: %w", filepath.Base(path), err)
		}
	}

	synsetFiles, err := globSynsetFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("wordnet: glob synset files: %w", err)
	}

	for _, path := range synsetFiles {
		synsets, err := readSynsetFile(path)
		if err != nil {
			return nil, fmt.Errorf("wordnet: read %s: %w", filepath.Base(path), err)
		}
		for id, s := range synsets {
			idx.synsets[id] = convertSynset(s)
		}
	}

	return idx, nil
}

func (idx *Index) addEntries(entries oewnEntryFile) error {
	// Sorted keys keep display forms stable when two spellings normalize
	// to the same lemma ("Fast" and "fast"); upper case sorts first.
	words := make([]string, 0, len(entries))
	for w := range entries {
		words = append(words, w)
	}
	slices.Sort(words)

	for _, word := range words {
		posMap := entries[word]
		key := domain.NormalizeCandidate(word)
		if key == "" {
			continue
		}
		display := domain.DisplayCandidate(word)

		for _, code := range entryPOSOrder {
			raw, ok := posMap[code]
			if !ok {
				continue
			}
			pos, _ := domain.PartOfSpeechFromWordNet(code)

			var posEntry oewnPOSEntry
			if err := json.Unmarshal(raw, &posEntry); err != nil {
				return fmt.Errorf("decode %q/%s: %w", word, code, err)
			}
			for _, s := range posEntry.Sense {
				idx.senseLemma[s.ID] = display
				idx.words[key] = append(idx.words[key], sense{
					synset:   s.Synset,
					pos:      pos,
					antonyms: s.Antonym,
				})
			}
		}

		// Insert keeps the first display form for a lemma.
		idx.trie.Insert(patricia.Prefix(key), display)
	}
	return nil
}

func convertSynset(s oewnSynset) synset {
	out := synset{
		members:     s.Members,
		definitions: s.Definition,
	}
	out.pos, _ = domain.PartOfSpeechFromWordNet(s.PartOfSpeech)

	for _, raw := range s.Example {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			var ex oewnExample
			if err := json.Unmarshal(raw, &ex); err != nil {
				continue
			}
			text = ex.Text
		}
		if text = strings.TrimSpace(text); text != "" {
			out.examples = append(out.examples, text)
		}
	}
	return out
}

func readEntryFile(path string) (oewnEntryFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var entries oewnEntryFile
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return entries, nil
}

func readSynsetFile(path string) (map[string]oewnSynset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var synsets map[string]oewnSynset
	if err := json.NewDecoder(f).Decode(&synsets); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return synsets, nil
}

// globSynsetFiles finds {pos}.{category}.json files, pos being noun/verb/adj/adv.
func globSynsetFiles(dir string) ([]string, error) {
	var result []string
	for _, prefix := range []string{"noun.", "verb.", "adj.", "adv."} {
		matches, err := filepath.Glob(filepath.Join(dir, prefix+"*.json"))
		if err != nil {
			return nil, err
		}
		result = append(result, matches...)
	}
	return result, nil
}

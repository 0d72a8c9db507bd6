package domain

// Analysis is the result of analyzing one word, optionally in the context of
// a sentence. Empty slices mean "not found" and are never nil.
type Analysis struct {
	Word    string
	Context string

	Definitions []string
	Examples    []string
	Antonyms    []string

	// Synonyms are all lexicon synonyms, unfiltered.
	Synonyms []string

	// ContextPOS is the part of speech resolved for Word inside Context.
	// nil when there is no context or the tagger could not place the word.
	ContextPOS *PartOfSpeech

	// ContextualSynonyms are synonyms restricted to ContextPOS. Only filled
	// when a context sentence was given.
	ContextualSynonyms []string

	// Ranked are the top synonyms by similarity to Context, with like counts.
	Ranked []RankedCandidate

	// Enrichment is nil unless it was requested.
	Enrichment *Enrichment
}

// Found reports whether the lexicon knew anything about the word.
func (a *Analysis) Found() bool {
	return len(a.Definitions) > 0 || len(a.Examples) > 0 ||
		len(a.Antonyms) > 0 || len(a.Synonyms) > 0
}

// RankedCandidate is one ranked synonym and its feedback count.
type RankedCandidate struct {
	Candidate string
	Likes     int
}

// Enrichment is dictionary data from the external dictionary API.
type Enrichment struct {
	Word          string
	Pronunciation string
	Origin        string
	Meanings      []Meaning
}

// IsEmpty reports whether the dictionary returned no usable data.
func (e *Enrichment) IsEmpty() bool {
	return e == nil || (e.Pronunciation == "" && e.Origin == "" && len(e.Meanings) == 0)
}

// Meaning groups the definitions of one part of speech. PartOfSpeech is the
// dictionary's own label ("noun", "exclamation", ...), not a PartOfSpeech.
type Meaning struct {
	PartOfSpeech string
	Definitions  []Definition
}

// Definition is one dictionary definition with an optional example.
type Definition struct {
	Text     string
	Example  string
	Synonyms []string
}

package domain

import "strings"

// PartOfSpeech represents the grammatical category of a word occurrence.
// Only the four WordNet categories are modelled.
type PartOfSpeech string

const (
	PartOfSpeechNoun      PartOfSpeech = "NOUN"
	PartOfSpeechVerb      PartOfSpeech = "VERB"
	PartOfSpeechAdjective PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb    PartOfSpeech = "ADVERB"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb:
		return true
	}
	return false
}

// PartOfSpeechFromWordNet maps a WordNet POS code (n, v, a, s, r) to a
// PartOfSpeech. Adjective satellites ("s") are adjectives.
func PartOfSpeechFromWordNet(code string) (PartOfSpeech, bool) {
	switch code {
	case "n":
		return PartOfSpeechNoun, true
	case "v":
		return PartOfSpeechVerb, true
	case "a", "s":
		return PartOfSpeechAdjective, true
	case "r":
		return PartOfSpeechAdverb, true
	}
	return "", false
}

// PartOfSpeechFromTreebank maps a Penn Treebank tag to a PartOfSpeech:
// J* adjective, V* verb, N* noun, R* adverb. Other tags have no mapping.
func PartOfSpeechFromTreebank(tag string) (PartOfSpeech, bool) {
	switch {
	case strings.HasPrefix(tag, "J"):
		return PartOfSpeechAdjective, true
	case strings.HasPrefix(tag, "V"):
		return PartOfSpeechVerb, true
	case strings.HasPrefix(tag, "N"):
		return PartOfSpeechNoun, true
	case strings.HasPrefix(tag, "R"):
		return PartOfSpeechAdverb, true
	}
	return "", false
}

// ParsePartOfSpeech accepts the upper-case names as well as the WordNet
// codes, case-insensitively.
func ParsePartOfSpeech(s string) (PartOfSpeech, bool) {
	s = strings.TrimSpace(s)
	if p := PartOfSpeech(strings.ToUpper(s)); p.IsValid() {
		return p, true
	}
	return PartOfSpeechFromWordNet(strings.ToLower(s))
}

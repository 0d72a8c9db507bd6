package domain

import (
	"strings"
)

// FeedbackKeySeparator joins the word and candidate halves of a feedback key.
const FeedbackKeySeparator = "::"

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeCandidate is NormalizeText with WordNet's lemma joiner ("_")
// treated as a space, so "Look_up" and "look up" are the same candidate.
func NormalizeCandidate(s string) string {
	return NormalizeText(strings.ReplaceAll(s, "_", " "))
}

// DisplayCandidate converts a raw lemma to its display form: underscores
// become spaces, surrounding whitespace is trimmed, case is kept.
func DisplayCandidate(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
}

// DedupCandidates returns candidates in first-discovery order with empty
// entries, duplicates (by NormalizeCandidate) and the query word removed.
// The returned strings are the display form of the first occurrence.
func DedupCandidates(word string, candidates []string) []string {
	self := NormalizeCandidate(word)
	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))

	for _, c := range candidates {
		key := NormalizeCandidate(c)
		if key == "" || key == self || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, DisplayCandidate(c))
	}
	return out
}

// FeedbackKey builds the identity of a like counter:
// lowercase(word) + "::" + lowercase(candidate).
func FeedbackKey(word, candidate string) string {
	return strings.ToLower(word) + FeedbackKeySeparator + strings.ToLower(candidate)
}


package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/wordlens/internal/domain"
)

func renderAnalysis(w io.Writer, a *domain.Analysis) {
	if !a.Found() {
		fmt.Fprintf(w, "No entry found for %q.\n\n", a.Word)
	}

	section(w, "Definitions")
	bullets(w, a.Definitions, "No definitions found.")

	section(w, "Examples")
	bullets(w, a.Examples, "No examples found.")

	section(w, "Antonyms")
	inline(w, a.Antonyms, "No antonyms found.")

	section(w, "Basic Synonyms")
	inline(w, a.Synonyms, "No synonyms found.")

	if a.Context != "" {
		title := "Contextual Synonyms"
		if a.ContextPOS != nil {
			title += " (" + strings.ToLower(a.ContextPOS.String()) + ")"
		}
		section(w, title)
		inline(w, a.ContextualSynonyms, "No contextual synonyms found.")
	}

	section(w, "Advanced Synonyms")
	if len(a.Ranked) == 0 {
		fmt.Fprintln(w, "No advanced synonyms found.")
	}
	for _, rc := range a.Ranked {
		fmt.Fprintf(w, "- %s (likes: %d)\n", rc.Candidate, rc.Likes)
	}

	if a.Enrichment != nil {
		renderEnrichment(w, a.Enrichment)
	}
}

func renderEnrichment(w io.Writer, e *domain.Enrichment) {
	section(w, "Dictionary")
	if e.IsEmpty() {
		fmt.Fprintln(w, "No dictionary entry found.")
		return
	}
	if e.Pronunciation != "" {
		fmt.Fprintf(w, "Pronunciation: %s\n", e.Pronunciation)
	}
	if e.Origin != "" {
		fmt.Fprintf(w, "Origin: %s\n", e.Origin)
	}
	for _, m := range e.Meanings {
		fmt.Fprintf(w, "%s\n", m.PartOfSpeech)
		for i, d := range m.Definitions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, d.Text)
			if d.Example != "" {
				fmt.Fprintf(w, "     %q\n", d.Example)
			}
			if len(d.Synonyms) > 0 {
				fmt.Fprintf(w, "     synonyms: %s\n", strings.Join(d.Synonyms, ", "))
			}
		}
	}
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func bullets(w io.Writer, items []string, empty string) {
	if len(items) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	for _, it := range items {
		fmt.Fprintf(w, "- %s\n", it)
	}
}

func inline(w io.Writer, items []string, empty string) {
	if len(items) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	fmt.Fprintln(w, strings.Join(items, ", "))
}

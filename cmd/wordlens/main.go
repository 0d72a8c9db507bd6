// Command wordlens is a dictionary and thesaurus: WordNet lookups,
// context-ranked synonyms, like feedback and LLM suggestions, from the
// command line or over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/heartmarshall/wordlens/cmd/wordlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

package rest

import "github.com/heartmarshall/wordlens/internal/domain"

type analysisResponse struct {
	Word               string              `json:"word"`
	Context            string              `json:"context,omitempty"`
	Found              bool                `json:"found"`
	Definitions        []string            `json:"definitions"`
	Examples           []string            `json:"examples"`
	Antonyms           []string            `json:"antonyms"`
	Synonyms           []string            `json:"synonyms"`
	ContextPOS         string              `json:"context_pos,omitempty"`
	ContextualSynonyms []string            `json:"contextual_synonyms"`
	Ranked             []rankedResponse    `json:"ranked"`
	Enrichment         *enrichmentResponse `json:"enrichment,omitempty"`
}

type rankedResponse struct {
	Candidate string `json:"candidate"`
	Likes     int    `json:"likes"`
}

type enrichmentResponse struct {
	Pronunciation string            `json:"pronunciation,omitempty"`
	Origin        string            `json:"origin,omitempty"`
	Meanings      []meaningResponse `json:"meanings"`
}

type meaningResponse struct {
	PartOfSpeech string               `json:"part_of_speech"`
	Definitions  []definitionResponse `json:"definitions"`
}

type definitionResponse struct {
	Text     string   `json:"text"`
	Example  string   `json:"example,omitempty"`
	Synonyms []string `json:"synonyms"`
}

func toAnalysisResponse(a *domain.Analysis) analysisResponse {
	resp := analysisResponse{
		Word:               a.Word,
		Context:            a.Context,
		Found:              a.Found(),
		Definitions:        nonNil(a.Definitions),
		Examples:           nonNil(a.Examples),
		Antonyms:           nonNil(a.Antonyms),
		Synonyms:           nonNil(a.Synonyms),
		ContextualSynonyms: nonNil(a.ContextualSynonyms),
		Ranked:             make([]rankedResponse, 0, len(a.Ranked)),
	}
	if a.ContextPOS != nil {
		resp.ContextPOS = a.ContextPOS.String()
	}
	for _, rc := range a.Ranked {
		resp.Ranked = append(resp.Ranked, rankedResponse{Candidate: rc.Candidate, Likes: rc.Likes})
	}
	if a.Enrichment != nil {
		resp.Enrichment = toEnrichmentResponse(a.Enrichment)
	}
	return resp
}

func toEnrichmentResponse(e *domain.Enrichment) *enrichmentResponse {
	out := &enrichmentResponse{
		Pronunciation: e.Pronunciation,
		Origin:        e.Origin,
		Meanings:      make([]meaningResponse, 0, len(e.Meanings)),
	}
	for _, m := range e.Meanings {
		mr := meaningResponse{PartOfSpeech: m.PartOfSpeech, Definitions: make([]definitionResponse, 0, len(m.Definitions))}
		for _, d := range m.Definitions {
			mr.Definitions = append(mr.Definitions, definitionResponse{Text: d.Text, Example: d.Example, Synonyms: nonNil(d.Synonyms)})
		}
		out.Meanings = append(out.Meanings, mr)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

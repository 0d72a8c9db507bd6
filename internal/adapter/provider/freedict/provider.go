// Package freedict enriches a word with data from the FreeDictionary API
// (https://dictionaryapi.dev): pronunciation, origin and meanings.
package freedict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/wordlens/internal/config"
	"github.com/heartmarshall/wordlens/internal/domain"
)

// Provider fetches dictionary data from the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider from DictionaryConfig.
func NewProvider(cfg config.DictionaryConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "freedict"),
	}
}

// Lookup fetches the enrichment for word. Any failure (network, non-200,
// malformed body, no entries) yields an empty Enrichment, never nil.
func (p *Provider) Lookup(ctx context.Context, word string) *domain.Enrichment {
	empty := &domain.Enrichment{Word: word, Meanings: []domain.Meaning{}}

	entries, err := p.fetch(ctx, word)
	switch {
	case errors.Is(err, errUnknownWord):
		p.log.DebugContext(ctx, "freedict has no entry", slog.String("word", word))
		return empty
	case err != nil:
		p.log.WarnContext(ctx, "freedict lookup failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return empty
	case len(entries) == 0:
		return empty
	}

	result := mapEntry(entries[0])
	if result.Word == "" {
		result.Word = word
	}
	p.log.DebugContext(ctx, "freedict lookup",
		slog.String("word", word),
		slog.Int("meanings", len(result.Meanings)),
	)
	return result
}

const (
	maxAttempts  = 2
	maxBodyBytes = 1 << 20
)

// errUnknownWord is the API's 404 for words it has no entry for.
var errUnknownWord = errors.New("freedict: unknown word")

// errRetryable marks failures worth a second attempt: transport errors and 5xx.
type errRetryable struct{ err error }

func (e errRetryable) Error() string { return e.err.Error() }
func (e errRetryable) Unwrap() error { return e.err }

func (p *Provider) fetch(ctx context.Context, word string) ([]apiEntry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(strings.TrimSpace(word))

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			p.log.WarnContext(ctx, "freedict retry",
				slog.String("word", word),
				slog.String("reason", lastErr.Error()),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(p.retryDelay):
			}
		}

		entries, err := p.get(ctx, reqURL)
		if err == nil {
			return entries, nil
		}
		lastErr = err

		var retry errRetryable
		if !errors.As(err, &retry) || ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

func (p *Provider) get(ctx context.Context, reqURL string) ([]apiEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errRetryable{fmt.Errorf("freedict: request: %w", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errUnknownWord
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, errRetryable{fmt.Errorf("freedict: status %d", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("freedict: status %d", resp.StatusCode)
	}

	var entries []apiEntry
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&entries); err != nil {
		return nil, fmt.Errorf("freedict: decode: %w", err)
	}
	return entries, nil
}

// mapEntry converts the first API entry into an Enrichment. Pronunciation is
// the first non-empty phonetic text, falling back to the top-level phonetic.
func mapEntry(entry apiEntry) *domain.Enrichment {
	result := &domain.Enrichment{
		Word:     entry.Word,
		Origin:   strings.TrimSpace(entry.Origin),
		Meanings: make([]domain.Meaning, 0, len(entry.Meanings)),
	}

	for _, ph := range entry.Phonetics {
		if t := strings.TrimSpace(ph.Text); t != "" {
			result.Pronunciation = t
			break
		}
	}
	if result.Pronunciation == "" {
		result.Pronunciation = strings.TrimSpace(entry.Phonetic)
	}

	for _, m := range entry.Meanings {
		meaning := domain.Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  make([]domain.Definition, 0, len(m.Definitions)),
		}
		for _, d := range m.Definitions {
			if strings.TrimSpace(d.Definition) == "" {
				continue
			}
			syns := d.Synonyms
			if syns == nil {
				syns = []string{}
			}
			meaning.Definitions = append(meaning.Definitions, domain.Definition{
				Text:     d.Definition,
				Example:  d.Example,
				Synonyms: syns,
			})
		}
		if len(meaning.Definitions) > 0 {
			result.Meanings = append(result.Meanings, meaning)
		}
	}
	return result
}

package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Ranker.TopN <= 0 {
		return fmt.Errorf("ranker.top_n must be > 0 (got %d)", c.Ranker.TopN)
	}

	if err := c.Feedback.validate(c.Database); err != nil {
		return fmt.Errorf("feedback: %w", err)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Embedding.validate(); err != nil {
		return fmt.Errorf("embedding: %w", err)
	}

	if c.Dictionary.Timeout <= 0 {
		return fmt.Errorf("dictionary.timeout must be > 0 (got %s)", c.Dictionary.Timeout)
	}

	return nil
}

func (f *FeedbackConfig) validate(db DatabaseConfig) error {
	f.Backend = strings.ToLower(strings.TrimSpace(f.Backend))

	switch f.Backend {
	case FeedbackBackendFile:
		if f.Path == "" {
			return fmt.Errorf("path is required for the %q backend", f.Backend)
		}
	case FeedbackBackendBolt:
		if f.BoltPath == "" {
			return fmt.Errorf("bolt_path is required for the %q backend", f.Backend)
		}
	case FeedbackBackendPostgres:
		if db.DSN == "" {
			return fmt.Errorf("database.dsn is required for the %q backend", f.Backend)
		}
	default:
		return fmt.Errorf("unknown backend %q", f.Backend)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	l.Backend = strings.ToLower(strings.TrimSpace(l.Backend))

	switch l.Backend {
	case LLMBackendHFInference, LLMBackendAnthropic:
	default:
		return fmt.Errorf("unknown backend %q", l.Backend)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", l.Timeout)
	}
	if l.PredictMaxTokens <= 0 || l.GenerateMaxTokens <= 0 {
		return fmt.Errorf("max token limits must be > 0")
	}
	return nil
}

func (e *EmbeddingConfig) validate() error {
	e.Backend = strings.ToLower(strings.TrimSpace(e.Backend))

	switch e.Backend {
	case EmbeddingBackendNone:
		return nil
	case EmbeddingBackendONNX:
	default:
		return fmt.Errorf("unknown backend %q", e.Backend)
	}
	if e.MaxSeqLen <= 0 {
		return fmt.Errorf("max_seq_len must be > 0 (got %d)", e.MaxSeqLen)
	}
	if e.Dimension <= 0 {
		return fmt.Errorf("dimension must be > 0 (got %d)", e.Dimension)
	}
	return nil
}

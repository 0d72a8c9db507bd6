// Package hfinference calls a Hugging Face Inference API text-generation
// endpoint. Failures are returned as domain.GenerationFailure values.
package hfinference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/wordlens/internal/domain"
)

const maxResponseBytes = 1 << 20

// Client talks to one model endpoint.
type Client struct {
	url        string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client for the model at url.
func New(url, token string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		url:        url,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "hfinference"),
	}
}

type request struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type parameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generation struct {
	GeneratedText *string `json:"generated_text"`
}

type apiError struct {
	Error string `json:"error"`
}

// Generate sends prompt to the endpoint and returns the first generated
// text. An empty result list is a successful empty completion.
func (c *Client) Generate(ctx context.Context, prompt string, params domain.GenerationParams) domain.GenerationResult {
	if strings.TrimSpace(c.token) == "" {
		return domain.Failed(domain.FailureMissingToken, 0, "HF_API_TOKEN is not set")
	}

	payload, err := json.Marshal(request{
		Inputs: prompt,
		Parameters: parameters{
			MaxNewTokens:   params.MaxNewTokens,
			Temperature:    params.Temperature,
			ReturnFullText: params.ReturnFullText,
		},
	})
	if err != nil {
		return domain.Failed(domain.FailureInvalidInput, 0, "encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return domain.Failed(domain.FailureInvalidInput, 0, "create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "inference request",
		slog.String("url", c.url),
		slog.Int("max_new_tokens", params.MaxNewTokens),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "inference request failed", slog.String("error", err.Error()))
		return domain.Failed(domain.FailureTransport, 0, "%v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.Failed(domain.FailureTransport, resp.StatusCode, "read body: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(body)
		c.log.WarnContext(ctx, "inference endpoint returned error",
			slog.Int("status", resp.StatusCode),
			slog.String("error", msg),
		)
		return domain.Failed(domain.FailureHTTPStatus, resp.StatusCode, "%s", msg)
	}

	text, err := decodeText(body)
	if err != nil {
		c.log.WarnContext(ctx, "inference response malformed", slog.String("error", err.Error()))
		return domain.Failed(domain.FailureMalformedResponse, resp.StatusCode, "%v", err)
	}
	return domain.Generated(text)
}

// decodeText accepts a list of generations or a single generation object.
// An empty list is an empty completion; anything without generated_text is
// malformed.
func decodeText(body []byte) (string, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return "", errors.New("empty response body")
	}

	var out []generation
	if body[0] == '[' {
		if err := json.Unmarshal(body, &out); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		if len(out) == 0 {
			return "", nil
		}
	} else {
		var single generation
		if err := json.Unmarshal(body, &single); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		out = []generation{single}
	}

	if out[0].GeneratedText == nil {
		return "", errors.New("response has no generated_text")
	}
	return *out[0].GeneratedText, nil
}

// errorMessage extracts {"error": "..."} or falls back to the raw body.
func errorMessage(body []byte) string {
	var e apiError
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	if msg == "" {
		msg = "empty response body"
	}
	return msg
}

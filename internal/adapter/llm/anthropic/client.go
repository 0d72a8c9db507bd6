// Package anthropic generates text with the Anthropic Messages API. It is
// an alternative to the Hugging Face endpoints with the same tagged result.
package anthropic

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/wordlens/internal/domain"
)

// Config holds client settings.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
}

// Client wraps the Anthropic SDK client.
type Client struct {
	client sdk.Client
	model  string
	hasKey bool
	log    *slog.Logger
}

// New creates a Client. A missing API key is reported on each Generate call.
func New(cfg Config, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
		option.WithMaxRetries(1),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{
		client: sdk.NewClient(opts...),
		model:  cfg.Model,
		hasKey: strings.TrimSpace(cfg.APIKey) != "",
		log:    logger.With("adapter", "anthropic"),
	}
}

// Generate sends prompt as a single user message and returns the first
// text block of the reply.
func (c *Client) Generate(ctx context.Context, prompt string, params domain.GenerationParams) domain.GenerationResult {
	if !c.hasKey {
		return domain.Failed(domain.FailureMissingToken, 0, "ANTHROPIC_API_KEY is not set")
	}

	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(c.model),
		MaxTokens:   int64(params.MaxNewTokens),
		Temperature: sdk.Float(params.Temperature),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *sdk.Error
		if errors.As(err, &apiErr) {
			c.log.WarnContext(ctx, "anthropic api error",
				slog.Int("status", apiErr.StatusCode),
				slog.String("error", err.Error()),
			)
			return domain.Failed(domain.FailureHTTPStatus, apiErr.StatusCode, "%v", err)
		}
		c.log.WarnContext(ctx, "anthropic request failed", slog.String("error", err.Error()))
		return domain.Failed(domain.FailureTransport, 0, "%v", err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return domain.Generated(block.Text)
		}
	}
	return domain.Failed(domain.FailureMalformedResponse, 0, "response has no text content")
}

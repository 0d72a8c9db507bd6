package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordlens/internal/config"
	"github.com/heartmarshall/wordlens/internal/transport/middleware"
)

// RouterConfig collects what NewRouter needs.
type RouterConfig struct {
	Service   thesaurusService
	Checks    map[string]func(ctx context.Context) error
	Version   string
	CORS      config.CORSConfig
	RateLimit int
	Limiter   *middleware.RateLimiter
	Logger    *slog.Logger
}

// NewRouter registers every endpoint and wraps the mux in the middleware
// chain Recovery, RequestID, Logger, CORS, RateLimit. Health probes are
// not rate limited.
func NewRouter(cfg RouterConfig) http.Handler {
	th := NewThesaurusHandler(cfg.Service, cfg.Logger)
	hh := NewHealthHandler(cfg.Checks, cfg.Version)

	api := http.NewServeMux()
	api.HandleFunc("GET /api/analyze", th.Analyze)
	api.HandleFunc("GET /api/likes", th.GetLikes)
	api.HandleFunc("POST /api/likes", th.Like)
	api.HandleFunc("POST /api/predict", th.Predict)
	api.HandleFunc("POST /api/generate", th.Generate)
	api.HandleFunc("GET /api/complete", th.Complete)

	var limit middleware.Middleware
	if cfg.Limiter != nil {
		limit = cfg.Limiter.Limit(cfg.RateLimit)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", hh.Live)
	mux.HandleFunc("GET /ready", hh.Ready)
	mux.HandleFunc("GET /health", hh.Health)
	mux.Handle("/api/", middleware.Chain(limit)(api))

	return middleware.Chain(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID,
		middleware.Logger(cfg.Logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}

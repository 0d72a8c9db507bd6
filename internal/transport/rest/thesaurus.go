package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/wordlens/internal/domain"
	"github.com/heartmarshall/wordlens/internal/service/thesaurus"
)

const maxBodyBytes = 1 << 16

// thesaurusService defines the minimal interface needed by ThesaurusHandler.
type thesaurusService interface {
	Analyze(ctx context.Context, in thesaurus.AnalyzeInput) (*domain.Analysis, error)
	Like(ctx context.Context, word, candidate string) (int, error)
	Likes(ctx context.Context, word, candidate string) (int, error)
	Predict(ctx context.Context, partial string) domain.GenerationResult
	GenerateSynonyms(ctx context.Context, word, contextText string) domain.GenerationResult
	Complete(ctx context.Context, prefix string, limit int) []string
}

// ThesaurusHandler serves the /api endpoints.
type ThesaurusHandler struct {
	svc thesaurusService
	log *slog.Logger
}

// NewThesaurusHandler creates a ThesaurusHandler.
func NewThesaurusHandler(svc thesaurusService, logger *slog.Logger) *ThesaurusHandler {
	return &ThesaurusHandler{svc: svc, log: logger.With("handler", "thesaurus")}
}

type likeRequest struct {
	Word      string `json:"word"`
	Candidate string `json:"candidate"`
}

type likeResponse struct {
	Word      string `json:"word"`
	Candidate string `json:"candidate"`
	Likes     int    `json:"likes"`
}

type predictRequest struct {
	Text string `json:"text"`
}

type generateRequest struct {
	Word    string `json:"word"`
	Context string `json:"context"`
}

type completeResponse struct {
	Prefix      string   `json:"prefix"`
	Completions []string `json:"completions"`
}

// Analyze handles GET /api/analyze?word=&context=&top=&enrich=.
func (h *ThesaurusHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := thesaurus.AnalyzeInput{
		Word:    q.Get("word"),
		Context: q.Get("context"),
	}

	var verr domain.ValidationError
	if v := q.Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			verr.Add("top", "must be a positive integer")
		}
		in.TopN = n
	}
	if v := q.Get("enrich"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			verr.Add("enrich", "must be a boolean")
		}
		in.Enrich = b
	}
	if err := verr.Err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.Analyze(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalysisResponse(a))
}

// GetLikes handles GET /api/likes?word=&candidate=.
func (h *ThesaurusHandler) GetLikes(w http.ResponseWriter, r *http.Request) {
	word, candidate := r.URL.Query().Get("word"), r.URL.Query().Get("candidate")
	n, err := h.svc.Likes(r.Context(), word, candidate)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, likeResponse{Word: word, Candidate: candidate, Likes: n})
}

// Like handles POST /api/likes.
func (h *ThesaurusHandler) Like(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	n, err := h.svc.Like(r.Context(), req.Word, req.Candidate)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, likeResponse{Word: req.Word, Candidate: req.Candidate, Likes: n})
}

// Predict handles POST /api/predict.
func (h *ThesaurusHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeGeneration(w, h.svc.Predict(r.Context(), req.Text))
}

// Generate handles POST /api/generate.
func (h *ThesaurusHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeGeneration(w, h.svc.GenerateSynonyms(r.Context(), req.Word, req.Context))
}

// Complete handles GET /api/complete?prefix=&limit=.
func (h *ThesaurusHandler) Complete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}
	prefix := q.Get("prefix")
	writeJSON(w, http.StatusOK, completeResponse{
		Prefix:      prefix,
		Completions: h.svc.Complete(r.Context(), prefix, limit),
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "validation", "invalid request body")
		return false
	}
	return true
}

package hfinference

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordlens/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var predictParams = domain.GenerationParams{MaxNewTokens: 50, Temperature: 0.7}

func TestClient_Generate_Success(t *testing.T) {
	t.Parallel()

	var got request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`[{"generated_text": " to the park"}, {"generated_text": "ignored"}]`))
	}))
	defer srv.Close()

	res := New(srv.URL, "hf_test", time.Second, newTestLogger()).
		Generate(context.Background(), "I want to go", predictParams)

	require.True(t, res.OK(), "%v", res.Failure)
	assert.Equal(t, " to the park", res.Text)
	assert.Equal(t, request{
		Inputs:     "I want to go",
		Parameters: parameters{MaxNewTokens: 50, Temperature: 0.7, ReturnFullText: false},
	}, got)
}

func TestClient_Generate_RawPayload(t *testing.T) {
	t.Parallel()

	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	res := New(srv.URL, "hf_test", time.Second, newTestLogger()).
		Generate(context.Background(), "fast", domain.GenerationParams{MaxNewTokens: 60, Temperature: 0.7})

	require.True(t, res.OK())
	assert.Empty(t, res.Text)
	assert.Equal(t, map[string]any{
		"inputs": "fast",
		"parameters": map[string]any{
			"max_new_tokens":   float64(60),
			"temperature":      0.7,
			"return_full_text": false,
		},
	}, raw)
}

func TestClient_Generate_MissingToken(t *testing.T) {
	t.Parallel()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	defer srv.Close()

	res := New(srv.URL, " ", time.Second, newTestLogger()).Generate(context.Background(), "hi", predictParams)

	require.False(t, res.OK())
	assert.Equal(t, domain.FailureMissingToken, res.Failure.Kind)
	assert.Empty(t, res.Text)
	assert.False(t, called)
}

func TestClient_Generate_HTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"json error", http.StatusServiceUnavailable, `{"error":"Model bigcode/starcoder is currently loading","estimated_time":20}`, "Model bigcode/starcoder is currently loading"},
		{"plain body", http.StatusUnauthorized, "Unauthorized", "Unauthorized"},
		{"empty body", http.StatusInternalServerError, "", "empty response body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			res := New(srv.URL, "hf_test", time.Second, newTestLogger()).Generate(context.Background(), "hi", predictParams)

			require.False(t, res.OK())
			assert.Equal(t, domain.FailureHTTPStatus, res.Failure.Kind)
			assert.Equal(t, tt.status, res.Failure.StatusCode)
			assert.Equal(t, tt.wantMsg, res.Failure.Message)
		})
	}
}

func TestClient_Generate_Malformed(t *testing.T) {
	t.Parallel()

	for _, body := range []string{
		`not json`,
		`{"unexpected": true}`,
		``,
		`null`,
		`[{"summary_text":"oops"}]`,
		`[null]`,
		`[{"generated_text": 5}]`,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		res := New(srv.URL, "hf_test", time.Second, newTestLogger()).Generate(context.Background(), "hi", predictParams)
		srv.Close()

		require.False(t, res.OK(), "body %q", body)
		assert.Equal(t, domain.FailureMalformedResponse, res.Failure.Kind, "body %q", body)
	}
}

func TestClient_Generate_EmptyGeneratedText(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"generated_text":""}]`))
	}))
	defer srv.Close()

	res := New(srv.URL, "hf_test", time.Second, newTestLogger()).Generate(context.Background(), "hi", predictParams)
	require.True(t, res.OK())
	assert.Empty(t, res.Text)
}

func TestClient_Generate_SingleObject(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generated_text":"quick, rapid"}`))
	}))
	defer srv.Close()

	res := New(srv.URL, "hf_test", time.Second, newTestLogger()).Generate(context.Background(), "hi", predictParams)
	require.True(t, res.OK())
	assert.Equal(t, "quick, rapid", res.Text)
}

func TestClient_Generate_Transport(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	res := New(srv.URL, "hf_test", 20*time.Millisecond, newTestLogger()).Generate(context.Background(), "hi", predictParams)

	require.False(t, res.OK())
	assert.Equal(t, domain.FailureTransport, res.Failure.Kind)
}

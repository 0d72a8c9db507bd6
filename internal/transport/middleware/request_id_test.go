package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordlens/pkg/ctxutil"
)

func serveWithRequestID(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(RequestIDHeader)
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serveWithRequestID(t, "client-abc")
	assert.Equal(t, "client-abc", ctxID)
	assert.Equal(t, "client-abc", headerID)
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serveWithRequestID(t, "")
	_, err := uuid.Parse(ctxID)
	require.NoError(t, err)
	assert.Equal(t, ctxID, headerID)
}

func TestRequestID_ReplacesOversized(t *testing.T) {
	t.Parallel()

	ctxID, _ := serveWithRequestID(t, strings.Repeat("x", maxRequestIDLen+1))
	_, err := uuid.Parse(ctxID)
	require.NoError(t, err)
}

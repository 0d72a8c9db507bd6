package ctxutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestIDFromCtx(ctx))
}

func TestRequestID_Missing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RequestIDFromCtx(context.Background()))
}

func TestRequestID_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), requestIDKey{}, 42)
	assert.Empty(t, RequestIDFromCtx(ctx))
}

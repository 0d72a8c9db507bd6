package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationResult_Generated(t *testing.T) {
	t.Parallel()

	r := Generated("go to the park")
	assert.True(t, r.OK())
	assert.Equal(t, "go to the park", r.Text)
	assert.Nil(t, r.Failure)
}

func TestGenerationResult_Failed(t *testing.T) {
	t.Parallel()

	r := Failed(FailureHTTPStatus, 503, "model %s is loading", "starcoder")
	assert.False(t, r.OK())
	assert.Empty(t, r.Text)
	require.NotNil(t, r.Failure)
	assert.Equal(t, FailureHTTPStatus, r.Failure.Kind)
	assert.Equal(t, 503, r.Failure.StatusCode)
	assert.Equal(t, "http_status (status 503): model starcoder is loading", r.Failure.Error())
}

func TestGenerationFailure_ErrorWithoutStatus(t *testing.T) {
	t.Parallel()

	f := &GenerationFailure{Kind: FailureMissingToken, Message: "HF_API_TOKEN is not set"}
	assert.Equal(t, "missing_token: HF_API_TOKEN is not set", f.Error())
}

func TestEnrichment_IsEmpty(t *testing.T) {
	t.Parallel()

	var nilEnrichment *Enrichment
	assert.True(t, nilEnrichment.IsEmpty())
	assert.True(t, (&Enrichment{Word: "fast"}).IsEmpty())
	assert.False(t, (&Enrichment{Origin: "Old English fæst"}).IsEmpty())
}

func TestAnalysis_Found(t *testing.T) {
	t.Parallel()

	assert.False(t, (&Analysis{Word: "qwzx"}).Found())
	assert.True(t, (&Analysis{Word: "fast", Antonyms: []string{"slow"}}).Found())
}

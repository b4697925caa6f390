package skills

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailoring/internal/llm"
)

type stubClient struct {
	response string
	err      error
	calls    int
}

func (s *stubClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.GenerateJSON(ctx, prompt, tier)
}

func (s *stubClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func TestExtractFlattensCategories(t *testing.T) {
	client := &stubClient{response: `{
		"programmingLanguages": ["Go", "Python"],
		"frameworksAndLibraries": ["gin"],
		"toolsAndPlatforms": ["Docker", "Go"],
		"databases": ["PostgreSQL"],
		"otherTechnologies": []
	}`}
	extractor := NewLLMExtractor(client)

	skills, err := extractor.Extract(context.Background(), "I use Go, Python, gin, Docker and PostgreSQL")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Python", "gin", "Docker", "PostgreSQL"}, skills)
}

func TestExtractEmptyTextSkipsCall(t *testing.T) {
	client := &stubClient{}
	extractor := NewLLMExtractor(client)

	skills, err := extractor.Extract(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, skills)
	assert.Zero(t, client.calls)
}

func TestExtractUnparseableResponseIsEmptyNotError(t *testing.T) {
	client := &stubClient{response: "no JSON here"}
	extractor := NewLLMExtractor(client)

	skills, err := extractor.Extract(context.Background(), "some text")
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestExtractTransportErrorSurfaces(t *testing.T) {
	cause := errors.New("quota exceeded")
	client := &stubClient{err: cause}
	extractor := NewLLMExtractor(client)

	_, err := extractor.Extract(context.Background(), "some text")
	assert.ErrorIs(t, err, cause)
}

func TestExtractAcceptsFencedResponse(t *testing.T) {
	client := &stubClient{response: "```json\n{\"programmingLanguages\": [\"Rust\"]}\n```"}
	extractor := NewLLMExtractor(client)

	skills, err := extractor.Extract(context.Background(), "I write Rust")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rust"}, skills)
}

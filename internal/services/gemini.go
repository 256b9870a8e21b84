package services

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// Embedder is the outbound boundary to the semantic-embedding provider.
// It returns one vector per input text, in input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

type geminiEmbedder struct {
	client     *genai.Client
	embedModel string
	timeout    time.Duration
}

// NewGeminiEmbedder builds the long-lived provider handle. It is constructed
// once at startup and passed into the scoring engine explicitly.
func NewGeminiEmbedder(apiKey, embedModel string, timeout time.Duration) (Embedder, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiEmbedder{
		client:     client,
		embedModel: embedModel,
		timeout:    timeout,
	}, nil
}

// Embed implements Embedder. All texts go out in a single batched call in
// document-search mode; a single attempt, bounded by the configured timeout.
func (g *geminiEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, contents, &genai.EmbedContentConfig{
		TaskType: "RETRIEVAL_DOCUMENT",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if result == nil || len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding result count mismatch: want %d", len(texts))
	}

	vectors := make([][]float32, 0, len(texts))
	for _, embedding := range result.Embeddings {
		if len(embedding.Values) == 0 {
			return nil, fmt.Errorf("empty embedding vector in result")
		}
		vectors = append(vectors, embedding.Values)
	}

	return vectors, nil
}

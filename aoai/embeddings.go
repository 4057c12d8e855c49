package aoai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openai/openai-go"

	"github.com/ailand-ai/ailand-go/internal/httpcapture"
	"github.com/ailand-ai/ailand-go/internal/retry"
)

// Embed returns one embedding vector per input string, in input order.
func (c *Client) Embed(ctx context.Context, inputs []string) ([][]float64, error) {
	if len(inputs) == 0 {
		return nil, errors.New("at least one input is required")
	}

	ctx, cancel := retry.EnsureTimeout(ctx, retry.RequestTimeout)
	defer cancel()

	req := openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.embeddingModel),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: inputs,
		},
	}

	requestID := uuid.NewString()
	slog.Info("embedding request",
		"model", string(c.embeddingModel),
		"inputs", len(inputs),
		"request_id", requestID,
	)

	var capture *httpcapture.Transport
	api := c.newAPIClient(&capture)

	resp, err := retry.Do(ctx, c.retryConfig, func() (*openai.CreateEmbeddingResponse, error) {
		return api.Embeddings.New(ctx, req)
	})
	if err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}
	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("embedding: expected %d vectors, got %d", len(inputs), len(resp.Data))
	}

	vectors := make([][]float64, len(resp.Data))
	for _, d := range resp.Data {
		vectors[d.Index] = d.Embedding
	}

	slog.Info("embedding request completed",
		"model", string(c.embeddingModel),
		"request_id", requestID,
		"tokens_in", resp.Usage.PromptTokens,
	)
	return vectors, nil
}

package ports

import "context"

// Embedder computes an embedding vector for a piece of text. Implemented by
// the HTTP client for the external embedding provider.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

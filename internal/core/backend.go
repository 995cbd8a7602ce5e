package core

import "context"

// Recommender is the remote recommendation backend. Both calls are a single
// attempt: no retries, no backoff; failures surface directly to the caller.
type Recommender interface {
	Health(ctx context.Context) (HealthStatus, error)
	Recommend(ctx context.Context, description string, constraints map[string]any) (*RecommendResponse, error)
}

package core

import "context"

// SessionRepository persists the chat transcript and the last recommendation
// response between runs. It is the terminal stand-in for the browser's
// localStorage pair of keys.
type SessionRepository interface {
	LoadTranscript(ctx context.Context) ([]ChatMessage, error)
	SaveTranscript(ctx context.Context, messages []ChatMessage) error
	LoadResponse(ctx context.Context) (*RecommendResponse, error)
	// SaveResponse with nil removes the stored response.
	SaveResponse(ctx context.Context, resp *RecommendResponse) error
	Reset(ctx context.Context) error
}

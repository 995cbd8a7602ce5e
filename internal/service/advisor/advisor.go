package advisor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/autonara/smartmatch/internal/core"
	"github.com/autonara/smartmatch/pkg/log"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

const fallbackError = "Something went wrong"

// HealthSource reports the last known backend health, maintained elsewhere
// on a fixed interval.
type HealthSource interface {
	Healthy() bool
}

// Advisor owns the Smart Match page state: the chat transcript, the last
// recommendation response, and the loading/error flags. All mutation goes
// through Ask and Reset.
//
// The one non-obvious contract: the backend is stateless across calls, so
// every request resends the full accumulated context — the space-joined
// trimmed text of every prior user message, in chronological order.
type Advisor struct {
	mu sync.Mutex

	client core.Recommender
	repo   core.SessionRepository
	health HealthSource

	messages []core.ChatMessage
	response *core.RecommendResponse
	state    State
	lastErr  string
}

// Snapshot is a read-only copy of the page state for rendering.
type Snapshot struct {
	State    State
	Error    string
	Messages []core.ChatMessage
	Response *core.RecommendResponse
}

func NewAdvisor(client core.Recommender, repo core.SessionRepository, health HealthSource) *Advisor {
	return &Advisor{
		client: client,
		repo:   repo,
		health: health,
		state:  StateIdle,
	}
}

// Restore seeds the page from the persisted session. Unreadable state is
// treated as no prior session.
func (a *Advisor) Restore(ctx context.Context) {
	logger := log.FromCtx(ctx)

	messages, err := a.repo.LoadTranscript(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load transcript, starting empty")
		messages = nil
	}

	response, err := a.repo.LoadResponse(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load stored response, starting empty")
		response = nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = messages
	a.response = response
	if response != nil {
		a.state = StateSuccess
	}
}

// Ask runs one user submission through the page state machine and returns
// the assistant's reply. An empty reply means the submission was a no-op.
func (a *Advisor) Ask(ctx context.Context, input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if a.health != nil && !a.health.Healthy() {
		return ReplyUnavailable
	}

	if isGreeting(input) {
		a.mu.Lock()
		a.messages = append(a.messages, core.NewUserMessage(input), core.NewAssistantMessage(ReplyIntro))
		transcript := a.transcriptLocked()
		a.mu.Unlock()

		a.persistTranscript(ctx, transcript)
		return ReplyIntro
	}

	a.mu.Lock()
	a.messages = append(a.messages, core.NewUserMessage(input))
	description := a.describeLocked()
	transcript := a.transcriptLocked()
	a.state = StateLoading
	a.lastErr = ""
	a.mu.Unlock()

	a.persistTranscript(ctx, transcript)

	resp, err := a.client.Recommend(ctx, description, nil)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = fallbackError
		}
		log.FromCtx(ctx).Error().Err(err).Msg("recommend call failed")

		a.mu.Lock()
		a.state = StateError
		a.lastErr = msg
		a.mu.Unlock()

		// The apology goes to the chat view only, never into the transcript
		return ReplyApology
	}

	reply := summarize(resp)

	a.mu.Lock()
	a.response = resp
	a.messages = append(a.messages, core.NewAssistantMessage(reply))
	transcript = a.transcriptLocked()
	a.state = StateSuccess
	a.mu.Unlock()

	a.persistResponse(ctx, resp)
	a.persistTranscript(ctx, transcript)
	return reply
}

// Reset clears the transcript, the stored response and both persisted keys,
// returning the page to its initial state.
func (a *Advisor) Reset(ctx context.Context) {
	a.mu.Lock()
	a.messages = nil
	a.response = nil
	a.state = StateIdle
	a.lastErr = ""
	a.mu.Unlock()

	if err := a.repo.Reset(ctx); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to clear persisted session")
	}
}

func (a *Advisor) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		State:    a.state,
		Error:    a.lastErr,
		Messages: a.transcriptLocked(),
		Response: a.response,
	}
}

// describeLocked rebuilds the aggregated user description: every user turn
// so far, trimmed and space-joined in order.
func (a *Advisor) describeLocked() string {
	parts := make([]string, 0, len(a.messages))
	for _, msg := range a.messages {
		if msg.Role != core.RoleUser {
			continue
		}
		if text := strings.TrimSpace(msg.Content); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func (a *Advisor) transcriptLocked() []core.ChatMessage {
	out := make([]core.ChatMessage, len(a.messages))
	copy(out, a.messages)
	return out
}

// Write failures degrade the session to in-memory only; they are never
// surfaced to the user.
func (a *Advisor) persistTranscript(ctx context.Context, messages []core.ChatMessage) {
	if err := a.repo.SaveTranscript(ctx, messages); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to persist transcript")
	}
}

func (a *Advisor) persistResponse(ctx context.Context, resp *core.RecommendResponse) {
	if err := a.repo.SaveResponse(ctx, resp); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to persist response")
	}
}

func summarize(resp *core.RecommendResponse) string {
	if resp == nil || len(resp.Matches) == 0 {
		return ReplyNoStrongMatch
	}

	top := resp.Matches[0]
	reason := ""
	if len(top.Reasons) > 0 {
		reason = top.Reasons[0]
	}

	return strings.TrimSpace(fmt.Sprintf(
		"Based on what you've shared so far, your best match is the %s (%d%% lifestyle fit). %s",
		top.Name, top.Score, reason,
	))
}

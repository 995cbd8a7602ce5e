package advisor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/autonara/smartmatch/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecommender struct {
	descriptions []string
	resp         *core.RecommendResponse
	err          error
}

func (f *fakeRecommender) Health(ctx context.Context) (core.HealthStatus, error) {
	return core.HealthStatus{Status: "ok"}, nil
}

func (f *fakeRecommender) Recommend(ctx context.Context, description string, constraints map[string]any) (*core.RecommendResponse, error) {
	f.descriptions = append(f.descriptions, description)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type memRepo struct {
	transcript []core.ChatMessage
	response   *core.RecommendResponse
	saveErr    error
}

func (m *memRepo) LoadTranscript(ctx context.Context) ([]core.ChatMessage, error) {
	return m.transcript, nil
}

func (m *memRepo) SaveTranscript(ctx context.Context, messages []core.ChatMessage) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.transcript = messages
	return nil
}

func (m *memRepo) LoadResponse(ctx context.Context) (*core.RecommendResponse, error) {
	return m.response, nil
}

func (m *memRepo) SaveResponse(ctx context.Context, resp *core.RecommendResponse) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.response = resp
	return nil
}

func (m *memRepo) Reset(ctx context.Context) error {
	m.transcript = nil
	m.response = nil
	return nil
}

type stubHealth bool

func (s stubHealth) Healthy() bool { return bool(s) }

func oneMatch() *core.RecommendResponse {
	return &core.RecommendResponse{
		Persona: core.Persona{Label: "Urban Commuter", PrimaryNeeds: []string{"mileage"}},
		Matches: []core.Match{{ID: "v1", Name: "X", Score: 87, Reasons: []string{"good mileage"}}},
	}
}

func TestAggregatedDescriptionResendsFullContext(t *testing.T) {
	ctx := context.Background()
	client := &fakeRecommender{resp: oneMatch()}
	a := NewAdvisor(client, &memRepo{}, stubHealth(true))

	a.Ask(ctx, "  i commute 40km daily  ")
	a.Ask(ctx, "two kids, one dog")
	a.Ask(ctx, "  budget around 12 lakh ")

	require.Len(t, client.descriptions, 3)
	assert.Equal(t, "i commute 40km daily", client.descriptions[0])
	assert.Equal(t, "i commute 40km daily two kids, one dog", client.descriptions[1])
	assert.Equal(t, "i commute 40km daily two kids, one dog budget around 12 lakh", client.descriptions[2])
}

func TestAggregationSkipsAssistantTurns(t *testing.T) {
	ctx := context.Background()
	client := &fakeRecommender{resp: oneMatch()}
	a := NewAdvisor(client, &memRepo{}, stubHealth(true))

	// The greeting appends a user and an assistant turn; only the user one
	// belongs to the aggregated description.
	a.Ask(ctx, "hi")
	a.Ask(ctx, "i need a family car")

	require.Len(t, client.descriptions, 1)
	assert.Equal(t, "hi i need a family car", client.descriptions[0])
}

func TestEmptyInputIsNoOp(t *testing.T) {
	ctx := context.Background()
	client := &fakeRecommender{resp: oneMatch()}
	a := NewAdvisor(client, &memRepo{}, stubHealth(true))

	for _, input := range []string{"", "   ", "\n\t"} {
		reply := a.Ask(ctx, input)
		assert.Empty(t, reply)
	}

	assert.Empty(t, client.descriptions)
	assert.Empty(t, a.Snapshot().Messages)
	assert.Equal(t, StateIdle, a.Snapshot().State)
}

func TestUnhealthyBackendShortCircuits(t *testing.T) {
	ctx := context.Background()
	client := &fakeRecommender{resp: oneMatch()}
	a := NewAdvisor(client, &memRepo{}, stubHealth(false))

	reply := a.Ask(ctx, "i commute daily")

	assert.Equal(t, ReplyUnavailable, reply)
	assert.Empty(t, client.descriptions)
	assert.Empty(t, a.Snapshot().Messages)
}

func TestGreetingShortCircuits(t *testing.T) {
	ctx := context.Background()
	client := &fakeRecommender{resp: oneMatch()}
	repo := &memRepo{}
	a := NewAdvisor(client, repo, stubHealth(true))

	reply := a.Ask(ctx, "hi")

	assert.Equal(t, ReplyIntro, reply)
	assert.Empty(t, client.descriptions)

	snap := a.Snapshot()
	require.Len(t, snap.Messages, 2)
	assert.Equal(t, core.RoleUser, snap.Messages[0].Role)
	assert.Equal(t, "hi", snap.Messages[0].Content)
	assert.Equal(t, core.RoleAssistant, snap.Messages[1].Role)
	assert.Equal(t, ReplyIntro, snap.Messages[1].Content)

	// persisted, not just in memory
	require.Len(t, repo.transcript, 2)
}

func TestSuccessBuildsTopMatchSummary(t *testing.T) {
	ctx := context.Background()
	client := &fakeRecommender{resp: oneMatch()}
	repo := &memRepo{}
	a := NewAdvisor(client, repo, stubHealth(true))

	reply := a.Ask(ctx, "i commute daily")

	assert.Equal(t, "Based on what you've shared so far, your best match is the X (87% lifestyle fit). good mileage", reply)

	snap := a.Snapshot()
	assert.Equal(t, StateSuccess, snap.State)
	require.Len(t, snap.Messages, 2)
	assert.Equal(t, reply, snap.Messages[1].Content)
	require.NotNil(t, snap.Response)
	assert.Equal(t, "Urban Commuter", snap.Response.Persona.Label)

	require.NotNil(t, repo.response)
	require.Len(t, repo.transcript, 2)
}

func TestSummaryWithoutReasons(t *testing.T) {
	resp := oneMatch()
	resp.Matches[0].Reasons = nil

	got := summarize(resp)
	assert.Equal(t, "Based on what you've shared so far, your best match is the X (87% lifestyle fit).", got)
}

func TestNoMatchesYieldsNoStrongMatchReply(t *testing.T) {
	ctx := context.Background()
	client := &fakeRecommender{resp: &core.RecommendResponse{Persona: core.Persona{Label: "Unknown"}}}
	a := NewAdvisor(client, &memRepo{}, stubHealth(true))

	reply := a.Ask(ctx, "i commute daily")
	assert.Equal(t, ReplyNoStrongMatch, reply)
	assert.Equal(t, StateSuccess, a.Snapshot().State)
}

func TestFailureKeepsPreviousDataAndReturnsApology(t *testing.T) {
	ctx := context.Background()
	client := &fakeRecommender{resp: oneMatch()}
	a := NewAdvisor(client, &memRepo{}, stubHealth(true))

	a.Ask(ctx, "i commute daily")
	client.err = errors.New("recommend failed: http 500")

	reply := a.Ask(ctx, "and weekend trips")

	assert.Equal(t, ReplyApology, reply)

	snap := a.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, "recommend failed: http 500", snap.Error)

	// data remains the previous value; the apology is not in the transcript
	require.NotNil(t, snap.Response)
	require.Len(t, snap.Messages, 3)
	assert.Equal(t, core.RoleUser, snap.Messages[2].Role)
	assert.Equal(t, "and weekend trips", snap.Messages[2].Content)
}

func TestStorageWriteFailureIsSilent(t *testing.T) {
	ctx := context.Background()
	client := &fakeRecommender{resp: oneMatch()}
	a := NewAdvisor(client, &memRepo{saveErr: fmt.Errorf("disk full")}, stubHealth(true))

	reply := a.Ask(ctx, "i commute daily")

	// the exchange still succeeds in memory
	assert.Contains(t, reply, "your best match is the X")
	assert.Equal(t, StateSuccess, a.Snapshot().State)
	require.Len(t, a.Snapshot().Messages, 2)
}

func TestResetClearsEverything(t *testing.T) {
	ctx := context.Background()
	client := &fakeRecommender{resp: oneMatch()}
	repo := &memRepo{}
	a := NewAdvisor(client, repo, stubHealth(true))

	a.Ask(ctx, "i commute daily")
	a.Reset(ctx)

	snap := a.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, snap.Messages)
	assert.Nil(t, snap.Response)

	assert.Nil(t, repo.transcript)
	assert.Nil(t, repo.response)
}

func TestRestoreSeedsFromPersistedSession(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{
		transcript: []core.ChatMessage{
			core.NewUserMessage("i commute daily"),
			core.NewAssistantMessage("Based on what you've shared so far, your best match is the X (87% lifestyle fit). good mileage"),
		},
		response: oneMatch(),
	}
	a := NewAdvisor(&fakeRecommender{}, repo, stubHealth(true))

	a.Restore(ctx)

	snap := a.Snapshot()
	assert.Equal(t, StateSuccess, snap.State)
	require.Len(t, snap.Messages, 2)
	require.NotNil(t, snap.Response)
	assert.Equal(t, "Urban Commuter", snap.Response.Persona.Label)
}

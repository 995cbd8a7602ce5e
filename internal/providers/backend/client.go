package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/autonara/smartmatch/internal/config"
	"github.com/autonara/smartmatch/internal/core"
	"github.com/autonara/smartmatch/pkg/log"
)

// Client talks to the recommendation backend over HTTP. It wraps exactly two
// calls, /health and /api/recommend, with JSON encode/decode and error
// propagation; everything behind them is out of scope for this client.
type Client struct {
	baseClient
}

func NewClient(ctx context.Context, cfg *config.BackendConfig) *Client {
	log.FromCtx(ctx).Info().
		Str("base_url", cfg.GetBaseURL()).
		Msg("recommendation backend configured")

	return &Client{
		baseClient: newBaseClient(cfg.GetBaseURL()),
	}
}

func (c *Client) Health(ctx context.Context) (core.HealthStatus, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return core.HealthStatus{}, fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.HealthStatus{}, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return core.HealthStatus{}, fmt.Errorf("health check failed: http %d", resp.StatusCode)
	}

	var status core.HealthStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return core.HealthStatus{}, fmt.Errorf("decode health response: %w", err)
	}
	return status, nil
}

type recommendRequest struct {
	UserDescription string         `json:"user_description"`
	Constraints     map[string]any `json:"constraints"`
}

func (c *Client) Recommend(ctx context.Context, description string, constraints map[string]any) (*core.RecommendResponse, error) {
	if constraints == nil {
		constraints = map[string]any{}
	}

	body := recommendRequest{
		UserDescription: description,
		Constraints:     constraints,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/recommend", body)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("recommend failed: http %d: %s", resp.StatusCode, string(data))
	}

	var rec core.RecommendResponse
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode recommend response: %w", err)
	}

	log.FromCtx(ctx).Debug().
		Int("matches", len(rec.Matches)).
		Str("persona", rec.Persona.Label).
		Msg("recommendation received")

	return &rec, nil
}

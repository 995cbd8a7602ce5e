package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/autonara/smartmatch/internal/core"
	"github.com/autonara/smartmatch/pkg/log"
)

// Two state keys, mirroring the localStorage pair of the original page:
// the last recommendation response (absent when none) and the chat
// transcript (always present once written, possibly an empty array).
const (
	keyLastResponse = "smartmatch:last_response"
	keyTranscript   = "smartmatch:transcript"
)

type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) LoadTranscript(ctx context.Context) ([]core.ChatMessage, error) {
	raw, err := r.getValue(ctx, keyTranscript)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var messages []core.ChatMessage
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		// Corrupt state is treated as no prior session
		log.FromCtx(ctx).Warn().Err(err).Msg("discarding unreadable transcript")
		return nil, nil
	}
	return messages, nil
}

func (r *SessionRepo) SaveTranscript(ctx context.Context, messages []core.ChatMessage) error {
	if messages == nil {
		messages = []core.ChatMessage{}
	}
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}
	return r.setValue(ctx, keyTranscript, string(data))
}

func (r *SessionRepo) LoadResponse(ctx context.Context) (*core.RecommendResponse, error) {
	raw, err := r.getValue(ctx, keyLastResponse)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var resp core.RecommendResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("discarding unreadable stored response")
		return nil, nil
	}
	return &resp, nil
}

func (r *SessionRepo) SaveResponse(ctx context.Context, resp *core.RecommendResponse) error {
	if resp == nil {
		return r.deleteValue(ctx, keyLastResponse)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	return r.setValue(ctx, keyLastResponse, string(data))
}

func (r *SessionRepo) Reset(ctx context.Context) error {
	if err := r.deleteValue(ctx, keyLastResponse); err != nil {
		return err
	}
	return r.deleteValue(ctx, keyTranscript)
}

func (r *SessionRepo) getValue(ctx context.Context, key string) (string, error) {
	var value string
	query := `SELECT value FROM session_state WHERE key = ?`
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (r *SessionRepo) setValue(ctx context.Context, key, value string) error {
	query := `INSERT INTO session_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (r *SessionRepo) deleteValue(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

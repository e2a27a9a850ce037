package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// StateKey is the single key the serialized GameState lives under.
const StateKey = "game_state"

// StateRepo mirrors the in-memory GameState to the local store. It never
// mutates the state it is given.
type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Load reads the persisted state. Returns (nil, nil) when nothing has been
// saved yet.
func (r *StateRepo) Load(ctx context.Context) (*GameState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM game_state WHERE key = ?`, StateKey)

	var data string
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("state load: %w", err)
	}

	var st GameState
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, fmt.Errorf("state decode: %w", err)
	}
	st.Normalize()
	return &st, nil
}

// Save serializes the full state and writes it under StateKey.
func (r *StateRepo) Save(ctx context.Context, st *GameState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("state encode: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO game_state (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, StateKey, string(data))
	if err != nil {
		return fmt.Errorf("state save: %w", err)
	}
	return nil
}

// Clear removes the persisted state.
func (r *StateRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM game_state WHERE key = ?`, StateKey); err != nil {
		return fmt.Errorf("state clear: %w", err)
	}
	return nil
}

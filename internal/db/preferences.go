package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/scout2retire/town-match/internal/types"
)

// GetUserPreferences retrieves a user's saved onboarding preferences.
// Preferences are stored as a single JSONB document per user; returns nil
// when the user has never completed onboarding.
func (db *DB) GetUserPreferences(ctx context.Context, userID uuid.UUID) (*types.UserPreferences, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT preferences FROM user_preferences WHERE user_id = $1`,
		userID,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preferences for user %s: %w", userID, err)
	}

	var prefs types.UserPreferences
	if err := json.Unmarshal(payload, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences for user %s: %w", userID, err)
	}
	prefs.UserID = userID
	return &prefs, nil
}

// SaveUserPreferences upserts a user's preferences document.
func (db *DB) SaveUserPreferences(ctx context.Context, prefs *types.UserPreferences) error {
	if prefs.UserID == uuid.Nil {
		return fmt.Errorf("cannot save preferences without a user ID")
	}

	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO user_preferences (user_id, preferences)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET preferences = $2, updated_at = NOW()`,
		prefs.UserID, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences for user %s: %w", prefs.UserID, err)
	}
	return nil
}

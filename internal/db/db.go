// Package db provides PostgreSQL persistence for resume snapshots and
// gap walk session outcomes.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// SaveResume upserts the latest resume snapshot for a user.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, resume any) error {
	jsonBytes, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (user_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET content = $2, updated_at = NOW()`,
		userID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// GetResume retrieves the latest resume snapshot for a user. Returns
// nil, nil when the user has no stored resume.
func (db *DB) GetResume(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM resumes WHERE user_id = $1`,
		userID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return content, nil
}

// SaveAnalysis stores a gap analysis result keyed by session.
func (db *DB) SaveAnalysis(ctx context.Context, sessionID string, analysis any) error {
	jsonBytes, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO gap_analyses (session_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (session_id) DO UPDATE SET content = $2, created_at = NOW()`,
		sessionID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// SaveSessionOutcome stores the final state of a finished gap walk: the
// updated resume, the match percentage, and per-gap disposition counts.
func (db *DB) SaveSessionOutcome(ctx context.Context, sessionID string, userID uuid.UUID, resume any, matchPercent, addressed, skipped int) error {
	jsonBytes, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO session_outcomes (session_id, user_id, resume, match_percent, gaps_addressed, gaps_skipped)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (session_id) DO UPDATE
		 SET resume = $3, match_percent = $4, gaps_addressed = $5, gaps_skipped = $6, completed_at = NOW()`,
		sessionID, userID, jsonBytes, matchPercent, addressed, skipped,
	)
	if err != nil {
		return fmt.Errorf("failed to save session outcome: %w", err)
	}
	return nil
}

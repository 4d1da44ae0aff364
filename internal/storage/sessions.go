package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents one reduction run in the database.
type Session struct {
	SessionID    string
	Size         int
	Seed         int64
	ScrambleText *string
	StartedAt    time.Time
	EndedAt      *time.Time
	DurationMs   *int64
	Reduced      bool
	ParityEvents int
	MoveCount    int
	FinalPhase   *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create records the start of a reduction run and returns its ID.
func (r *SessionRepository) Create(size int, seed int64, scramble string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, size, seed, scramble_text, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, size, seed, scramblePtr, startedAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Finish marks a session as complete with its outcome.
func (r *SessionRepository) Finish(sessionID string, reduced bool, parityEvents, moveCount int, finalPhase string) error {
	endedAt := time.Now().UTC()

	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	durationMs := endedAt.Sub(startedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, reduced = ?, parity_events = ?, move_count = ?, final_phase = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, boolToInt(reduced), parityEvents, moveCount, finalPhase, sessionID)

	if err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID, or nil when it does not exist.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, size, seed, scramble_text, started_at, ended_at,
		       duration_ms, reduced, parity_events, move_count, final_phase
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent session.
func (r *SessionRepository) GetLast() (*Session, error) {
	var sessionID string
	err := r.db.QueryRow(`
		SELECT session_id FROM sessions
		ORDER BY started_at DESC
		LIMIT 1
	`).Scan(&sessionID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}

	return r.Get(sessionID)
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, size, seed, scramble_text, started_at, ended_at,
		       duration_ms, reduced, parity_events, move_count, final_phase
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session.
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func scanSession(scan func(...any) error) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString
	var reduced int

	err := scan(
		&s.SessionID, &s.Size, &s.Seed, &s.ScrambleText, &startedAtStr,
		&endedAtStr, &s.DurationMs, &reduced, &s.ParityEvents,
		&s.MoveCount, &s.FinalPhase,
	)
	if err != nil {
		return nil, err
	}

	s.Reduced = reduced != 0
	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}

	return &s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/theyellowexpress/expressbot/internal/db"
)

// Entry is one message in a support conversation transcript.
type Entry struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone_number"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists support conversation transcripts keyed by phone number.
type Store struct {
	db *db.DB
}

// NewStore creates a transcript store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Append records one transcript message.
func (s *Store) Append(ctx context.Context, phone, role, message string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversations (id, phone_number, role, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), phone, role, message, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("inserting conversation entry: %w", err)
	}
	return nil
}

// Recent returns the latest transcript entries for a phone number, oldest
// first.
func (s *Store) Recent(ctx context.Context, phone string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, phone_number, role, message, created_at FROM (
		   SELECT id, phone_number, role, message, created_at FROM conversations
		   WHERE phone_number = ? ORDER BY created_at DESC LIMIT ?
		 ) ORDER BY created_at ASC`, phone, limit)
	if err != nil {
		return nil, fmt.Errorf("listing conversation: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Phone, &e.Role, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning conversation entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

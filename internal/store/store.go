// Package store keeps a local sqlite snapshot of the user's record set so
// the dashboard can still show the last good data when the backend is
// unreachable. It is a cache, never the source of truth.
package store

import (
	"context"
	"database/sql"
)

type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store { return &Store{DB: db} }

func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS applications (
	user_id TEXT NOT NULL,
	id TEXT NOT NULL,
	company TEXT NOT NULL,
	position TEXT NOT NULL,
	location TEXT,
	status TEXT NOT NULL,
	company_url TEXT,
	date_applied TEXT NOT NULL,
	notes TEXT,
	cv_file_name TEXT,
	resume_id TEXT,
	interview_time TEXT NULL,
	email_notifications INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (user_id, id)
);
`)
	return err
}

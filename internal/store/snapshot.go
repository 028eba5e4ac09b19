package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

// Replace swaps the user's snapshot for the given record set in one
// transaction, so a crash mid-write never leaves a half-merged cache.
func (s *Store) Replace(ctx context.Context, userID string, records []domain.ApplicationRecord) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM applications WHERE user_id = ?`, userID); err != nil {
		return err
	}

	for _, rec := range records {
		var interview sql.NullString
		if rec.InterviewTime != nil {
			interview = sql.NullString{String: rec.InterviewTime.Format(domain.WireTimeLayout), Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO applications
				(user_id, id, company, position, location, status, company_url,
				 date_applied, notes, cv_file_name, resume_id, interview_time, email_notifications)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			userID,
			rec.ID,
			rec.Company,
			rec.Position,
			rec.Location,
			string(rec.Status),
			rec.CompanyURL,
			rec.DateApplied.Format(domain.WireTimeLayout),
			rec.Notes,
			rec.CVFileName,
			rec.ResumeID,
			interview,
			boolToInt(rec.EmailNotifications),
		)
		if err != nil {
			return err
		}
	}

	committed = true
	return tx.Commit()
}

// Load returns the snapshot for the user, newest applications first.
func (s *Store) Load(ctx context.Context, userID string) ([]domain.ApplicationRecord, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, company, position, location, status, company_url,
		       date_applied, notes, cv_file_name, resume_id, interview_time, email_notifications
		FROM applications
		WHERE user_id = ?
		ORDER BY date_applied DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ApplicationRecord
	for rows.Next() {
		var (
			rec           domain.ApplicationRecord
			status        string
			dateApplied   string
			interviewTime sql.NullString
			notifications int
		)
		if err := rows.Scan(
			&rec.ID, &rec.Company, &rec.Position, &rec.Location, &status, &rec.CompanyURL,
			&dateApplied, &rec.Notes, &rec.CVFileName, &rec.ResumeID, &interviewTime, &notifications,
		); err != nil {
			return nil, err
		}
		// Unknown codes from an older snapshot degrade to APPLIED, same as
		// the API boundary.
		if st, err := domain.ParseStatus(status); err == nil {
			rec.Status = st
		} else {
			rec.Status = domain.StatusApplied
		}
		if t, err := time.Parse(domain.WireTimeLayout, dateApplied); err == nil {
			rec.DateApplied = t
		}
		if interviewTime.Valid {
			if t, err := time.Parse(domain.WireTimeLayout, interviewTime.String); err == nil {
				rec.InterviewTime = &t
			}
		}
		rec.EmailNotifications = notifications != 0 && rec.InterviewTime != nil
		records = append(records, rec)
	}
	return records, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package domain

import "time"

// ApplicationRecord is one tracked job application as held by the dashboard.
// Optional fields are zero-valued when absent; InterviewTime is a pointer
// because "no interview scheduled" must be distinguishable from any real time.
type ApplicationRecord struct {
	ID          string
	Company     string
	Position    string
	Location    string
	Status      Status
	CompanyURL  string
	DateApplied time.Time
	Notes       string

	// CVFileName and ResumeID travel as a pair: the human-readable name of
	// an uploaded resume and the opaque reference the resume store issued
	// for it.
	CVFileName string
	ResumeID   string

	InterviewTime *time.Time
	// EmailNotifications must stay false while InterviewTime is nil.
	EmailNotifications bool
}

// HasResume reports whether a stored resume is attached to the record.
func (r ApplicationRecord) HasResume() bool { return r.ResumeID != "" }

// StatsSummary is derived from the full record set on every render, never
// stored. WITHDRAWN counts toward Rejected, ACCEPTED toward Offers, so the
// four buckets always sum to Total.
type StatsSummary struct {
	Total      int
	Applied    int
	Interviews int
	Offers     int
	Rejected   int
}

// Note belongs to one application; owned by the notes store.
type Note struct {
	ID            string
	ApplicationID string
	Title         string
	Content       string
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ResumeInfo describes one stored resume blob.
type ResumeInfo struct {
	FileID     string
	FileName   string
	UploadedAt time.Time
}

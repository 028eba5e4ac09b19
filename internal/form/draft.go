// Package form manages the add/edit draft for a single application: which
// fields are live given the current status, whether the draft is valid, and
// the two-phase submit (optional resume upload, then record save).
//
// Lifecycle: Editing (mutable) → Submitting (frozen, requests in flight) →
// back to Editing on failure, or discarded by the caller on success. Only
// one draft is open at a time; a Draft is not safe for concurrent use.
package form

import (
	"sync/atomic"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

// Draft mirrors ApplicationRecord plus the transient attachment state.
// Timestamps are kept in the datetime-input form (domain.LocalTimeLayout)
// until submit normalizes them for the wire.
type Draft struct {
	ID string // empty until the backend assigns one (create vs. edit)

	Company            string
	Position           string
	Location           string
	CompanyURL         string
	Status             domain.Status
	Notes              string
	ApplyDate          string
	InterviewTime      string
	EmailNotifications bool

	// Stored resume pair as it exists on the record being edited.
	storedResumeID string
	storedFileName string

	pending      *Attachment // selected but not yet uploaded
	removeStored bool        // user explicitly detached the stored resume

	// submitting is atomic because Submit runs on a worker goroutine while
	// the UI loop polls Submitting to keep the draft frozen.
	submitting atomic.Bool
}

// NewDraft returns the empty "add application" draft.
func NewDraft() *Draft {
	return &Draft{Status: domain.StatusApplied}
}

// FromRecord seeds an "edit application" draft from an existing record.
func FromRecord(rec domain.ApplicationRecord) *Draft {
	d := &Draft{
		ID:                 rec.ID,
		Company:            rec.Company,
		Position:           rec.Position,
		Location:           rec.Location,
		CompanyURL:         rec.CompanyURL,
		Status:             rec.Status,
		Notes:              rec.Notes,
		EmailNotifications: rec.EmailNotifications,
		storedResumeID:     rec.ResumeID,
		storedFileName:     rec.CVFileName,
	}
	if !rec.DateApplied.IsZero() {
		d.ApplyDate = rec.DateApplied.Format(domain.LocalTimeLayout)
	}
	if rec.InterviewTime != nil {
		d.InterviewTime = rec.InterviewTime.Format(domain.LocalTimeLayout)
	}
	return d
}

// SetStatus applies the field-activation rule: leaving the interview stages
// clears the interview time and forces notifications off.
func (d *Draft) SetStatus(s domain.Status) {
	if d.submitting.Load() {
		return
	}
	d.Status = s
	if !domain.IsInterviewStage(s) {
		d.InterviewTime = ""
		d.EmailNotifications = false
	}
}

// SetInterviewTime updates the interview slot; clearing it forces
// notifications off.
func (d *Draft) SetInterviewTime(v string) {
	if d.submitting.Load() {
		return
	}
	d.InterviewTime = v
	if v == "" {
		d.EmailNotifications = false
	}
}

// SetEmailNotifications turns reminder emails on or off. Turning them on is
// only possible while an interview time is set — the switch is disabled
// otherwise (see NotificationsEnabled).
func (d *Draft) SetEmailNotifications(on bool) {
	if d.submitting.Load() {
		return
	}
	if on && d.InterviewTime == "" {
		return
	}
	d.EmailNotifications = on
}

// NotificationsEnabled reports whether the notifications switch is
// interactive.
func (d *Draft) NotificationsEnabled() bool { return d.InterviewTime != "" }

// FileName is the attachment name to display: the freshly selected file if
// any, else the stored one.
func (d *Draft) FileName() string {
	if d.pending != nil {
		return d.pending.FileName
	}
	if d.removeStored {
		return ""
	}
	return d.storedFileName
}

// HasAttachment reports whether submit will end with a resume on the record.
func (d *Draft) HasAttachment() bool { return d.FileName() != "" }

// RemoveFile detaches the resume: a staged file is simply dropped, a stored
// one is marked for deletion at submit time.
func (d *Draft) RemoveFile() {
	if d.submitting.Load() {
		return
	}
	d.pending = nil
	if d.storedResumeID != "" {
		d.removeStored = true
	}
}

// Submitting reports whether a submit is in flight (draft frozen).
func (d *Draft) Submitting() bool { return d.submitting.Load() }

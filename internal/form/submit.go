package form

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/client"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

// ErrSubmitInFlight guards against double submission of one draft.
var ErrSubmitInFlight = errors.New("submit already in flight")

// ApplicationStore is the record-save side of the submit sequence.
type ApplicationStore interface {
	Create(ctx context.Context, req client.ApplicationRequest) (domain.ApplicationRecord, error)
	Update(ctx context.Context, id string, req client.ApplicationRequest) (domain.ApplicationRecord, error)
}

// ResumeStore is the file side. Its failures are non-fatal to the save.
type ResumeStore interface {
	Upload(ctx context.Context, fileName string, data []byte) (domain.ResumeInfo, error)
	Delete(ctx context.Context, fileID string) error
}

// Result is a successful submit: the saved record plus any non-blocking
// warning about the resume side.
type Result struct {
	Record  domain.ApplicationRecord
	Warning string
}

// Submit runs the two-phase save: re-validate, upload a staged resume if
// any, retire a replaced or detached stored resume, then create or update
// the record. Resume failures downgrade to warnings; only validation and
// the record save itself can fail the submit, and on failure the draft is
// left intact for retry.
func (d *Draft) Submit(ctx context.Context, apps ApplicationStore, resumes ResumeStore, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	// Claim the in-flight guard first so a concurrent second Submit can
	// never slip past it.
	if !d.submitting.CompareAndSwap(false, true) {
		return Result{}, ErrSubmitInFlight
	}
	defer d.submitting.Store(false)
	if errs := d.Validate(time.Now()); len(errs) > 0 {
		return Result{}, &ValidationError{Fields: errs}
	}

	// --- 1) Resolve the resume reference the record should end up with ----

	resumeID, fileName := d.storedResumeID, d.storedFileName
	var retire string // stored resume to delete after a successful handover
	if d.removeStored && d.storedResumeID != "" {
		retire = d.storedResumeID
		resumeID, fileName = "", ""
	}

	var warning string
	if d.pending != nil {
		info, err := resumes.Upload(ctx, d.pending.FileName, d.pending.Data)
		if err != nil {
			// Non-fatal: save the record without any resume reference change.
			log.Warn("resume upload failed", zap.String("file", d.pending.FileName), zap.Error(err))
			warning = "Resume upload failed — the application was saved without the new file"
		} else {
			if d.storedResumeID != "" && !d.removeStored {
				retire = d.storedResumeID
			}
			resumeID, fileName = info.FileID, info.FileName
		}
	}

	// --- 2) Retire the replaced/detached stored resume (best effort) ------

	if retire != "" {
		if err := resumes.Delete(ctx, retire); err != nil {
			log.Warn("old resume delete failed", zap.String("fileId", retire), zap.Error(err))
		}
	}

	// --- 3) Build and send the create/update request ----------------------

	req, err := d.buildRequest(resumeID, fileName)
	if err != nil {
		return Result{}, err
	}

	var rec domain.ApplicationRecord
	if d.ID == "" {
		rec, err = apps.Create(ctx, req)
	} else {
		rec, err = apps.Update(ctx, d.ID, req)
	}
	if err != nil {
		return Result{}, fmt.Errorf("save application: %w", err)
	}
	return Result{Record: rec, Warning: warning}, nil
}

// buildRequest maps the draft into the store payload, normalizing the UI
// timestamps to the wire form.
func (d *Draft) buildRequest(resumeID, fileName string) (client.ApplicationRequest, error) {
	applyWire, err := domain.ToWireTime(d.ApplyDate)
	if err != nil {
		return client.ApplicationRequest{}, fmt.Errorf("normalize apply date: %w", err)
	}
	req := client.ApplicationRequest{
		CompanyName: d.Company,
		CompanyLink: d.CompanyURL,
		Position:    d.Position,
		Location:    d.Location,
		Status:      string(d.Status),
		ApplyDate:   applyWire,
		Notes:       d.Notes,
		ResumeID:    resumeID,
		CVFileName:  fileName,
	}
	if domain.IsInterviewStage(d.Status) && d.InterviewTime != "" {
		wire, err := domain.ToWireTime(d.InterviewTime)
		if err != nil {
			return client.ApplicationRequest{}, fmt.Errorf("normalize interview time: %w", err)
		}
		req.InterviewTime = wire
		req.EmailNotificationsEnabled = d.EmailNotifications
	}
	return req, nil
}

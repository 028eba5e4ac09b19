package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

// Applications talks to the application CRUD endpoints.
type Applications struct {
	c *Client
}

// ApplicationRequest is the create/update payload. Timestamps must already
// be in the wire form (domain.WireTimeLayout); the form state machine
// normalizes them before building the request.
type ApplicationRequest struct {
	CompanyName               string `json:"companyName"`
	CompanyLink               string `json:"companyLink,omitempty"`
	Position                  string `json:"position"`
	Location                  string `json:"location,omitempty"`
	Status                    string `json:"status"`
	ApplyDate                 string `json:"applyDate"`
	InterviewTime             string `json:"interviewTime,omitempty"`
	EmailNotificationsEnabled bool   `json:"emailNotificationsEnabled"`
	CVFileName                string `json:"cvFileName,omitempty"`
	ResumeID                  string `json:"resumeId,omitempty"`
	Notes                     string `json:"notes,omitempty"`
}

type applicationDTO struct {
	ID                        string `json:"id"`
	CompanyName               string `json:"companyName"`
	CompanyLink               string `json:"companyLink,omitempty"`
	Position                  string `json:"position"`
	Location                  string `json:"location,omitempty"`
	Status                    string `json:"status"`
	ApplyDate                 string `json:"applyDate"`
	InterviewTime             string `json:"interviewTime,omitempty"`
	EmailNotificationsEnabled bool   `json:"emailNotificationsEnabled"`
	CVFileName                string `json:"cvFileName,omitempty"`
	ResumeID                  string `json:"resumeId,omitempty"`
	Notes                     string `json:"notes,omitempty"`
}

// List fetches every application tracked by the given user.
func (a *Applications) List(ctx context.Context, userID string) ([]domain.ApplicationRecord, error) {
	var dtos []applicationDTO
	path := fmt.Sprintf("/users/%s/applications", url.PathEscape(userID))
	if err := a.c.doJSON(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	records := make([]domain.ApplicationRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, a.fromDTO(dto))
	}
	return records, nil
}

// Create posts a new application; the backend assigns the identifier.
func (a *Applications) Create(ctx context.Context, req ApplicationRequest) (domain.ApplicationRecord, error) {
	var dto applicationDTO
	if err := a.c.doJSON(ctx, http.MethodPost, "/applications", req, &dto); err != nil {
		return domain.ApplicationRecord{}, err
	}
	return a.fromDTO(dto), nil
}

// Update patches an existing application by id.
func (a *Applications) Update(ctx context.Context, id string, req ApplicationRequest) (domain.ApplicationRecord, error) {
	var dto applicationDTO
	path := "/applications/" + url.PathEscape(id)
	if err := a.c.doJSON(ctx, http.MethodPatch, path, req, &dto); err != nil {
		return domain.ApplicationRecord{}, err
	}
	return a.fromDTO(dto), nil
}

func (a *Applications) Delete(ctx context.Context, id string) error {
	return a.c.doJSON(ctx, http.MethodDelete, "/applications/"+url.PathEscape(id), nil, nil)
}

// fromDTO maps a wire record into the domain shape. An unknown status code
// is kept as APPLIED rather than dropping the record, matching what the web
// client did with versioning drift in the enum.
func (a *Applications) fromDTO(dto applicationDTO) domain.ApplicationRecord {
	status, err := domain.ParseStatus(dto.Status)
	if err != nil {
		a.c.log.Warn("unknown status from backend, keeping APPLIED",
			zap.String("id", dto.ID), zap.String("status", dto.Status))
		status = domain.StatusApplied
	}
	rec := domain.ApplicationRecord{
		ID:                 dto.ID,
		Company:            dto.CompanyName,
		Position:           dto.Position,
		Location:           dto.Location,
		Status:             status,
		CompanyURL:         dto.CompanyLink,
		Notes:              dto.Notes,
		CVFileName:         dto.CVFileName,
		ResumeID:           dto.ResumeID,
		EmailNotifications: dto.EmailNotificationsEnabled,
	}
	if t, err := time.Parse(domain.WireTimeLayout, dto.ApplyDate); err == nil {
		rec.DateApplied = t
	}
	if dto.InterviewTime != "" {
		if t, err := time.Parse(domain.WireTimeLayout, dto.InterviewTime); err == nil {
			rec.InterviewTime = &t
		}
	}
	// Invariant from the form rules, enforced again at the boundary.
	if rec.InterviewTime == nil {
		rec.EmailNotifications = false
	}
	return rec
}

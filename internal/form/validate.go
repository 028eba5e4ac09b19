package form

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

// FieldErrors maps field name → user-visible message.
type FieldErrors map[string]string

// ValidationError carries per-field errors out of Submit.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

// Validate checks the draft against the submission rules. It runs on every
// field change for live feedback and again authoritatively inside Submit.
func (d *Draft) Validate(now time.Time) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(d.Company) == "" {
		errs["company"] = "Company is required"
	}
	if strings.TrimSpace(d.Position) == "" {
		errs["position"] = "Position is required"
	}
	if _, err := domain.ParseStatus(string(d.Status)); err != nil {
		errs["status"] = "Status is invalid"
	}
	if d.CompanyURL != "" {
		u, err := url.Parse(d.CompanyURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs["companyUrl"] = "Company URL must be an absolute URL"
		}
	}
	switch applied, err := domain.ParseLocalTime(d.ApplyDate); {
	case d.ApplyDate == "":
		errs["applyDate"] = "Application date is required"
	case err != nil:
		errs["applyDate"] = "Application date is invalid"
	case applied.After(now):
		errs["applyDate"] = "Application date cannot be in the future"
	}
	if d.InterviewTime != "" {
		if _, err := domain.ParseLocalTime(d.InterviewTime); err != nil {
			errs["interviewTime"] = "Interview time is invalid"
		}
	}
	return errs
}

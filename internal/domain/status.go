// Package domain holds the application-tracking data model shared by the
// dashboard view-model, the form state machine, and the store clients.
//
// Status pipeline (loose — any status may be set to any other directly,
// this is a tracking tool, not a workflow engine):
//
//	APPLIED ──► HR_SCREEN ──► TECHNICAL_INTERVIEW ──► FINAL_INTERVIEW ──► OFFERED ──► ACCEPTED
//	                                                                  └─► REJECTED / WITHDRAWN
package domain

import "fmt"

// Status values mirror the application_status codes used by the backend API.
type Status string

const (
	StatusApplied            Status = "APPLIED"
	StatusHRScreen           Status = "HR_SCREEN"
	StatusTechnicalInterview Status = "TECHNICAL_INTERVIEW"
	StatusFinalInterview     Status = "FINAL_INTERVIEW"
	StatusOffered            Status = "OFFERED"
	StatusAccepted           Status = "ACCEPTED"
	StatusRejected           Status = "REJECTED"
	StatusWithdrawn          Status = "WITHDRAWN"
)

// Statuses lists every status in pipeline order, for selectors and sorting.
var Statuses = []Status{
	StatusApplied,
	StatusHRScreen,
	StatusTechnicalInterview,
	StatusFinalInterview,
	StatusOffered,
	StatusAccepted,
	StatusRejected,
	StatusWithdrawn,
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusApplied, StatusHRScreen, StatusTechnicalInterview, StatusFinalInterview,
		StatusOffered, StatusAccepted, StatusRejected, StatusWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsInterviewStage reports whether interview scheduling fields are meaningful
// for the given status.
func IsInterviewStage(s Status) bool {
	switch s {
	case StatusHRScreen, StatusTechnicalInterview, StatusFinalInterview:
		return true
	}
	return false
}

// Label returns the human-readable form shown in the UI.
func (s Status) Label() string {
	switch s {
	case StatusApplied:
		return "Applied"
	case StatusHRScreen:
		return "HR Screening"
	case StatusTechnicalInterview:
		return "Technical Interview"
	case StatusFinalInterview:
		return "Final Interview"
	case StatusOffered:
		return "Offer"
	case StatusAccepted:
		return "Accepted"
	case StatusRejected:
		return "Rejected"
	case StatusWithdrawn:
		return "Withdrawn"
	}
	return string(s)
}

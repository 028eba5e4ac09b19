package dashboard

import (
	"sort"
	"strings"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

// SortKey selects which field orders the projection.
type SortKey string

const (
	SortByDateApplied SortKey = "dateApplied"
	SortByCompany     SortKey = "company"
	SortByPosition    SortKey = "position"
	SortByStatus      SortKey = "status"
)

type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// StatusFilterAll is the sentinel status filter that matches every record.
const StatusFilterAll = "all"

// Query is one projection request over the record set.
type Query struct {
	Search    string
	Status    string // a status code, or StatusFilterAll / "" for everything
	SortKey   SortKey
	Direction SortDirection
}

// Project derives the filtered, sorted view of records. It is a pure
// function: identical inputs give identical output and records is never
// mutated. Filtering runs before sorting; ties keep their relative order.
func Project(records []domain.ApplicationRecord, q Query) []domain.ApplicationRecord {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]domain.ApplicationRecord, 0, len(records))
	for _, rec := range records {
		if !matchesSearch(rec, term) {
			continue
		}
		if !matchesStatus(rec, q.Status) {
			continue
		}
		out = append(out, rec)
	}

	less := lessFunc(q.SortKey)
	sort.SliceStable(out, func(i, j int) bool {
		if q.Direction == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// matchesSearch is a case-insensitive substring match against position,
// company, and location; any of the three matching is enough.
func matchesSearch(rec domain.ApplicationRecord, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Position), term) ||
		strings.Contains(strings.ToLower(rec.Company), term) ||
		strings.Contains(strings.ToLower(rec.Location), term)
}

func matchesStatus(rec domain.ApplicationRecord, filter string) bool {
	if filter == "" || filter == StatusFilterAll {
		return true
	}
	return string(rec.Status) == filter
}

func lessFunc(key SortKey) func(a, b domain.ApplicationRecord) bool {
	switch key {
	case SortByCompany:
		return func(a, b domain.ApplicationRecord) bool {
			return strings.ToLower(a.Company) < strings.ToLower(b.Company)
		}
	case SortByPosition:
		return func(a, b domain.ApplicationRecord) bool {
			return strings.ToLower(a.Position) < strings.ToLower(b.Position)
		}
	case SortByStatus:
		return func(a, b domain.ApplicationRecord) bool {
			return a.Status < b.Status
		}
	default: // SortByDateApplied
		return func(a, b domain.ApplicationRecord) bool {
			return a.DateApplied.Before(b.DateApplied)
		}
	}
}

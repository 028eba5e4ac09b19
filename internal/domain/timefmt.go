package domain

import (
	"fmt"
	"time"
)

// Two textual timestamp forms cross this codebase:
//   - LocalTimeLayout is what datetime inputs collect ("2006-01-02T15:04").
//   - WireTimeLayout is what the backend API expects and returns
//     ("2006-01-02 15:04:05" — space-separated, seconds padded).
const (
	LocalTimeLayout = "2006-01-02T15:04"
	WireTimeLayout  = "2006-01-02 15:04:05"
)

// ToWireTime normalizes a UI-collected timestamp to the API form: seconds
// appended, the "T" replaced with a space. Rejects anything that does not
// parse as a real instant.
func ToWireTime(local string) (string, error) {
	t, err := time.Parse(LocalTimeLayout, local)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", local, err)
	}
	return t.Format(WireTimeLayout), nil
}

// FromWireTime converts an API timestamp back to the datetime-input form,
// dropping seconds.
func FromWireTime(wire string) (string, error) {
	t, err := time.Parse(WireTimeLayout, wire)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", wire, err)
	}
	return t.Format(LocalTimeLayout), nil
}

// ParseLocalTime parses a UI-collected timestamp in the local time zone, so
// "must not be in the future" checks compare against the user's clock.
func ParseLocalTime(local string) (time.Time, error) {
	return time.ParseInLocation(LocalTimeLayout, local, time.Local)
}

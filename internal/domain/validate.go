package domain

import (
	"regexp"
	"strings"
	"time"
)

var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError rejects malformed input before any backend call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// NormalizeParticipant lower-cases and trims a participant identifier.
// Participants are compared by exact string equality after normalization.
func NormalizeParticipant(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// ValidateDate checks the YYYY-MM-DD form. That form sorts lexically
// identical to chronological order, which the history timeline relies on.
func ValidateDate(date string) error {
	if !dateFormat.MatchString(date) {
		return &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return &ValidationError{Field: "date", Reason: "not a calendar day"}
	}
	return nil
}

// ValidateSubmission checks a score submission's arguments.
func ValidateSubmission(date, participant string, score int) error {
	if err := ValidateDate(date); err != nil {
		return err
	}
	if participant == "" {
		return &ValidationError{Field: "participant", Reason: "must not be empty"}
	}
	if score < 0 {
		return &ValidationError{Field: "score", Reason: "must not be negative"}
	}
	return nil
}

// Today returns the current day in YYYY-MM-DD form (UTC).
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

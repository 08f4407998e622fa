package model

import (
	"fmt"
	"time"
)

// Entry represents one extracted death record
type Entry struct {
	Name  string     `json:"name"`            // Full name of the deceased
	Age   *int       `json:"age,omitempty"`   // Age at death, nil when the source omitted it
	Date  *time.Time `json:"date,omitempty"`  // Calendar date of death, nil when no heading preceded the item
	Cause string     `json:"cause,omitempty"` // Cause of death, empty when unknown or redundant
	Info  string     `json:"info"`            // Occupation / background
}

// Key returns the deduplication key for the entry.
// Two mentions of the same person on the same date collapse to one record.
func (e Entry) Key() string {
	return e.DateString() + "|" + e.Name
}

// DateString renders the entry date as YYYY-MM-DD, or "unknown" when absent.
func (e Entry) DateString() string {
	if e.Date == nil {
		return "unknown"
	}
	return e.Date.Format("2006-01-02")
}

// String renders the entry as a single line:
//
//	<date>: <name> (<age>[,<cause>]): <info>
//
// The age is rendered as empty text when absent; the cause segment is
// omitted entirely when empty.
func (e Entry) String() string {
	age := ""
	if e.Age != nil {
		age = fmt.Sprintf("%d", *e.Age)
	}
	if e.Cause != "" {
		return fmt.Sprintf("%s: %s (%s,%s): %s", e.DateString(), e.Name, age, e.Cause, e.Info)
	}
	return fmt.Sprintf("%s: %s (%s): %s", e.DateString(), e.Name, age, e.Info)
}

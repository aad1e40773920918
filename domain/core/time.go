package core

import (
	"time"
)

// Timestamp represents a point in time with timezone awareness
type Timestamp time.Time

// Now returns the current timestamp
func Now() Timestamp {
	return Timestamp(time.Now())
}

// ISO formats the timestamp the way API envelopes carry it.
func (t Timestamp) ISO() string {
	return time.Time(t).Format(time.RFC3339)
}

// LongDate renders dates like "October 19, 2026" for page footers.
func (t Timestamp) LongDate() string {
	return time.Time(t).Format("January 02, 2006")
}

package models

import (
	"fmt"
	"time"
)

// TimestampLayout is the persisted check-in time format, second precision.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp marshals as "YYYY-MM-DD HH:MM:SS" so the stored document
// round-trips byte for byte.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates to second precision so a saved and reloaded
// value compares equal to the in-memory one.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{t.Truncate(time.Second)}
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", ts.Format(TimestampLayout))), nil
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid timestamp %s", s)
	}
	t, err := time.ParseInLocation(TimestampLayout, s[1:len(s)-1], time.Local)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}

func (ts Timestamp) String() string {
	return ts.Format(TimestampLayout)
}

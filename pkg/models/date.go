package models

import (
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date as TMDB reports it ("2024-05-17"). The API sends
// an empty string for unknown dates; that normalizes to the zero value
// rather than a decode failure.
type Date struct {
	time.Time
}

// UnmarshalJSON accepts "YYYY-MM-DD", "" and null. Empty and null both
// leave the date absent.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON emits null for an absent date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(dateLayout))
}

package client

import (
	"fmt"
	"time"
)

// DateFormat is the only date representation TMDB payloads use: a calendar
// date with no time component and no timezone.
const DateFormat = "2006-01-02"

// Date is a JSON value type for TMDB date fields. It marshals to and from
// the strict YYYY-MM-DD format; any other representation fails decoding.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null or empty string
// yields the zero Date; TMDB uses both for unknown release dates.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(`"`+DateFormat+`"`, s)
	if err != nil {
		return fmt.Errorf("parse date %s: %w", s, err)
	}

	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(d.Format(`"` + DateFormat + `"`)), nil
}

// String returns the date in YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(DateFormat)
}

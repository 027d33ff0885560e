package expense

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	ISOLayout     = "2006-01-02"
	DisplayLayout = "02/01/2006"

	InvalidDateText = "Data inválida"
)

// Date is a calendar date. The time part is always midnight UTC.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part of t, keeping the calendar date in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts "2006-01-02" and RFC 3339 timestamps.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(ISOLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999999999", s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, errors.Errorf("invalid date %q", s)
}

// ParseDisplayDate parses the dd/mm/yyyy form users type.
func ParseDisplayDate(s string) (Date, error) {
	t, err := time.Parse(DisplayLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, errors.Wrapf(err, "invalid date %q", s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.Format(ISOLayout)
}

// Display renders the date the pt-BR way, 01/03/2024. A zero date is one the
// backend sent in a form we could not read.
func (d Date) Display() string {
	if d.IsZero() {
		return InvalidDateText
	}
	return d.Format(DisplayLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON leaves d zero when the value is not a date it understands, so
// one odd record does not fail the decode of a whole list.
func (d *Date) UnmarshalJSON(data []byte) error {
	*d = Date{}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	if parsed, err := ParseDate(raw); err == nil {
		*d = parsed
	}
	return nil
}

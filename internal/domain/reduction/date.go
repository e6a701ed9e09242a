package reduction

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errs.New("date must be formatted as YYYY-MM-DD")

// Date is a calendar day without time of day, serialized as YYYY-MM-DD.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t: t}, nil
	}
	// Full timestamps are accepted and reduced to their calendar day.
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, errs.Mark(errs.Wrapf(err, "parse date %q", s), ErrInvalidDate)
	}
	return NewDate(t.Date()), nil
}

// Time is midnight UTC of the day.
func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errs.Mark(errs.Wrap(err, "decode date"), ErrInvalidDate)
	}
	return d.UnmarshalText([]byte(s))
}

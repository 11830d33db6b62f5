package asset

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-module/carbon/v2"
)

// DateLayout is the layout dates are exchanged in.
const DateLayout = "2006-01-02"

var errEmptyDate = errors.New("empty date")

// Date is a calendar date without time of day or zone semantics.
type Date struct {
	c carbon.Carbon
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, errEmptyDate
	}
	c := carbon.ParseByLayout(s, DateLayout)
	if c.Error != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	if c.IsZero() {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{c: c}, nil
}

// MustDate is ParseDate for literals known to be valid.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current local calendar date.
func Today() Date {
	return Date{c: carbon.Now().StartOfDay()}
}

// AddDays returns the date n calendar days later.
func (d Date) AddDays(n int) Date {
	return Date{c: d.c.AddDays(n)}
}

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool {
	return d.c.Gt(o.c)
}

// Equal reports whether both dates denote the same day.
func (d Date) Equal(o Date) bool {
	return d.String() == o.String()
}

func (d Date) IsZero() bool {
	return d.c.IsZero()
}

func (d Date) String() string {
	if d.c.IsZero() {
		return ""
	}
	return d.c.ToDateString()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

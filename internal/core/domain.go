package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Precision selects how much of a date survives truncation.
type Precision int

const (
	Year Precision = iota
	Month
	Day
)

type (
	// Date is a calendar date with no time-of-day component, always UTC.
	Date struct {
		time.Time
	}

	// Transaction is one ledger row. Num is the store's sequence key and
	// defines chronological order.
	Transaction struct {
		Num         int64
		Date        Date
		Description string
		Credit      float64
		Debit       float64
	}

	// Slot is a transaction date plus a synthetic hour used to spread
	// same-day transactions along a time axis.
	Slot struct {
		Date Date
		Hour int
	}

	// Row is a transaction joined with its derived running balance and slot.
	Row struct {
		Transaction
		Balance float64
		Slot    Slot
	}
)

var (
	ErrMalformedDate    = errors.New("malformed date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidPrecision = errors.New("invalid precision")
)

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate reads the date prefix of a stored date field. Both the compact
// YYYYMMDD form and the dashed YYYY-MM-DD form are accepted; anything after
// the prefix (such as an hour suffix) is ignored.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	var (
		t   time.Time
		err error
	)
	switch {
	case len(s) >= 10 && s[4] == '-' && s[7] == '-':
		t, err = time.Parse("2006-01-02", s[:10])
	case len(s) >= 8 && isDigits(s[:8]):
		t, err = time.Parse("20060102", s[:8])
	default:
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return Date{Time: t}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParsePrecision maps "y", "m", "d" (or the full words) to a Precision.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "year":
		return Year, nil
	case "m", "month", "":
		return Month, nil
	case "d", "day":
		return Day, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrecision, s)
	}
}

// Truncate drops every component finer than p.
func (d Date) Truncate(p Precision) Date {
	switch p {
	case Year:
		return NewDate(d.Year(), 1, 1)
	case Month:
		return NewDate(d.Year(), int(d.Month()), 1)
	default:
		return d
	}
}

// Key renders the date at precision p: "2006", "2006-01" or "2006-01-02".
func (d Date) Key(p Precision) string {
	switch p {
	case Year:
		return d.Format("2006")
	case Month:
		return d.Format("2006-01")
	default:
		return d.Format("2006-01-02")
	}
}

func (d Date) String() string {
	return d.Key(Day)
}

// SameDay reports whether both dates fall on the same calendar day.
func (d Date) SameDay(o Date) bool {
	return d.Key(Day) == o.Key(Day)
}

// Net is credit minus debit.
func (t Transaction) Net() float64 {
	return t.Credit - t.Debit
}

func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return fmt.Errorf("%w: zero date", ErrMalformedDate)
	}
	if t.Credit < 0 || t.Debit < 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// Label renders the slot as "YYYY-MM-DD H". A stored "20240101" date
// therefore labels as "2024-01-01 8": the hour matches the compact form
// "20240101 8", only the date rendering differs.
func (s Slot) Label() string {
	return fmt.Sprintf("%s %d", s.Date, s.Hour)
}

// Time places the slot on a continuous time axis.
func (s Slot) Time() time.Time {
	return s.Date.Add(time.Duration(s.Hour) * time.Hour)
}

package chrono

import (
	"fmt"
	"time"

	"github.com/mailru/chrono/pkg/calendar"
	"github.com/mailru/chrono/pkg/chrono/errs"
	"github.com/mailru/chrono/pkg/safemath"
)

// LocalDate is a calendar date without a time-of-day or an offset. Values
// are built through the factories below, which never produce an invalid
// (year, month, day) triple.
type LocalDate struct {
	year  int32
	month int8
	day   int8
}

var (
	// MinLocalDate is the earliest supported date, -999999-01-01.
	MinLocalDate = LocalDate{year: int32(calendar.MinYear), month: 1, day: 1}

	// MaxLocalDate is the latest supported date, +999999-12-31.
	MaxLocalDate = LocalDate{year: int32(calendar.MaxYear), month: 12, day: 31}
)

// LocalDateOf validates each field against the calendar rules and returns
// the date. The day bound depends on both year and month.
func LocalDateOf(year, month, day int64) (LocalDate, error) {
	if err := calendar.CheckYear(year); err != nil {
		return LocalDate{}, err
	}

	if err := calendar.CheckMonth(month); err != nil {
		return LocalDate{}, err
	}

	if err := calendar.CheckDay(year, month, day); err != nil {
		return LocalDate{}, err
	}

	return LocalDate{year: int32(year), month: int8(month), day: int8(day)}, nil
}

// LocalDateOfEpochDay converts a day count from 1970-01-01 back to a date.
func LocalDateOfEpochDay(epochDay int64) (LocalDate, error) {
	if err := calendar.CheckEpochDay(epochDay); err != nil {
		return LocalDate{}, err
	}

	y, m, d := calendar.DateOfEpochDay(epochDay)

	return LocalDate{year: int32(y), month: int8(m), day: int8(d)}, nil
}

// LocalDateFromTime reads the local-time year, month and day of t.
func LocalDateFromTime(t time.Time) (LocalDate, error) {
	y, m, d := t.Date()

	return LocalDateOf(int64(y), int64(m), int64(d))
}

// ParseLocalDate accepts the strict YYYY-MM-DD form, sign-prefixed for years
// outside four digits. Date-times, ordinal dates and any other separator are
// rejected.
func ParseLocalDate(s string) (LocalDate, error) {
	year, i, ok := parseYear(s, 0)
	if !ok {
		return LocalDate{}, fmt.Errorf("%w: %q", errs.ErrParseDate, s)
	}

	if i+6 != len(s) || s[i] != '-' || s[i+3] != '-' {
		return LocalDate{}, fmt.Errorf("%w: %q", errs.ErrParseDate, s)
	}

	month, ok := digit2(s, i+1)
	if !ok {
		return LocalDate{}, fmt.Errorf("%w: %q", errs.ErrParseDate, s)
	}

	day, ok := digit2(s, i+4)
	if !ok {
		return LocalDate{}, fmt.Errorf("%w: %q", errs.ErrParseDate, s)
	}

	return LocalDateOf(year, month, day)
}

func (d LocalDate) Year() int64  { return int64(d.year) }
func (d LocalDate) Month() int64 { return int64(d.month) }
func (d LocalDate) Day() int64   { return int64(d.day) }

// EpochDay returns the signed day count from 1970-01-01 (day 0).
func (d LocalDate) EpochDay() int64 {
	return calendar.ToEpochDay(int64(d.year), int64(d.month), int64(d.day))
}

// PlusYears moves the year field, clamping the day to the length of the
// resulting month: Feb 29 becomes Feb 28 when the target year is not a leap
// year.
func (d LocalDate) PlusYears(years int64) (LocalDate, error) {
	if years == 0 {
		return d, nil
	}

	year, err := safemath.AddExact(int64(d.year), years)
	if err != nil {
		return LocalDate{}, err
	}

	if err := calendar.CheckYear(year); err != nil {
		return LocalDate{}, err
	}

	return LocalDate{year: int32(year), month: d.month, day: clampDay(year, int64(d.month), int64(d.day))}, nil
}

// MinusYears is PlusYears with the amount negated.
func (d LocalDate) MinusYears(years int64) (LocalDate, error) {
	return d.PlusYears(-years)
}

// PlusMonths works on the total month count from the epoch, splitting it
// back into year and month with floor semantics and clamping the day.
func (d LocalDate) PlusMonths(months int64) (LocalDate, error) {
	if months == 0 {
		return d, nil
	}

	total, err := safemath.AddExact(int64(d.year)*12+int64(d.month)-1, months)
	if err != nil {
		return LocalDate{}, err
	}

	year := safemath.FloorDiv(total, 12)
	if err := calendar.CheckYear(year); err != nil {
		return LocalDate{}, err
	}

	month := safemath.FloorMod(total, 12) + 1

	return LocalDate{year: int32(year), month: int8(month), day: clampDay(year, month, int64(d.day))}, nil
}

// MinusMonths is PlusMonths with the amount negated.
func (d LocalDate) MinusMonths(months int64) (LocalDate, error) {
	return d.PlusMonths(-months)
}

// PlusWeeks delegates to day arithmetic.
func (d LocalDate) PlusWeeks(weeks int64) (LocalDate, error) {
	days, err := safemath.MulExact(weeks, 7)
	if err != nil {
		return LocalDate{}, err
	}

	return d.PlusDays(days)
}

// MinusWeeks is PlusWeeks with the amount negated.
func (d LocalDate) MinusWeeks(weeks int64) (LocalDate, error) {
	return d.PlusWeeks(-weeks)
}

// PlusDays adds through the epoch-day form. A sum leaving the safe-integer
// range fails with the overflow error; a safe sum outside the supported
// epoch-day range fails naming the computed value and the bound.
func (d LocalDate) PlusDays(days int64) (LocalDate, error) {
	if days == 0 {
		return d, nil
	}

	epochDay, err := safemath.AddExact(d.EpochDay(), days)
	if err != nil {
		return LocalDate{}, err
	}

	return LocalDateOfEpochDay(epochDay)
}

// MinusDays is PlusDays with the amount negated.
func (d LocalDate) MinusDays(days int64) (LocalDate, error) {
	return d.PlusDays(-days)
}

// Compare orders by epoch day, returning -1, 0 or 1.
func (d LocalDate) Compare(o LocalDate) int {
	a, b := d.EpochDay(), o.EpochDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func (d LocalDate) Before(o LocalDate) bool        { return d.Compare(o) < 0 }
func (d LocalDate) After(o LocalDate) bool         { return d.Compare(o) > 0 }
func (d LocalDate) BeforeOrEqual(o LocalDate) bool { return d.Compare(o) <= 0 }
func (d LocalDate) AfterOrEqual(o LocalDate) bool  { return d.Compare(o) >= 0 }
func (d LocalDate) Equal(o LocalDate) bool         { return d == o }

// String formats the date as YYYY-MM-DD, zero-padded, sign-prefixed outside
// four-digit years so the output round-trips through ParseLocalDate.
func (d LocalDate) String() string {
	b := make([]byte, 0, 13)
	b = appendYear(b, int64(d.year))
	b = append(b, '-')
	b = appendPad2(b, int64(d.month))
	b = append(b, '-')
	b = appendPad2(b, int64(d.day))

	return string(b)
}

func clampDay(year, month, day int64) int8 {
	if max := calendar.DaysInMonth(year, month); day > max {
		return int8(max)
	}

	return int8(day)
}

// Package calendar contains proleptic-Gregorian calendar algorithms: leap
// years, month lengths and closed-form conversion between (year, month, day)
// triples and epoch days counted from 1970-01-01.
package calendar

import (
	"fmt"

	"github.com/mailru/chrono/pkg/chrono/errs"
)

const (
	MinYear int64 = -999999
	MaxYear int64 = 999999

	// Epoch-day bounds of MinYear-01-01 and MaxYear-12-31.
	MinEpochDay int64 = -365961662
	MaxEpochDay int64 = 364522971

	// Days in a full 400-year Gregorian cycle.
	daysPer400Years = 146097

	// Epoch days between 0000-03-01 and 1970-01-01.
	epochShift = 719468
)

var monthDays = [13]int64{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year. Month must be in [1, 12].
func DaysInMonth(year, month int64) int64 {
	if month == 2 && IsLeapYear(year) {
		return 29
	}

	return monthDays[month]
}

// CheckYear validates year against [MinYear, MaxYear].
func CheckYear(year int64) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: year %d must be in [%d - %d]", errs.ErrField, year, MinYear, MaxYear)
	}

	return nil
}

// CheckMonth validates month against [1, 12].
func CheckMonth(month int64) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d must be in [1 - 12]", errs.ErrField, month)
	}

	return nil
}

// CheckDay validates day against the length of the given month, which for
// February depends on whether year is a leap year.
func CheckDay(year, month, day int64) error {
	if max := DaysInMonth(year, month); day < 1 || day > max {
		return fmt.Errorf("%w: day %d must be in [1 - %d] for month %d of year %d", errs.ErrField, day, max, month, year)
	}

	return nil
}

// CheckEpochDay validates epochDay against [MinEpochDay, MaxEpochDay].
func CheckEpochDay(epochDay int64) error {
	if epochDay < MinEpochDay || epochDay > MaxEpochDay {
		return fmt.Errorf("%w: epoch day %d must be in [%d - %d]", errs.ErrRange, epochDay, MinEpochDay, MaxEpochDay)
	}

	return nil
}

// ToEpochDay converts a validated (year, month, day) triple to its epoch day.
// The conversion runs the 400-year-cycle closed form over a March-based year,
// so no iteration is needed anywhere in the supported range.
func ToEpochDay(year, month, day int64) int64 {
	y := year
	if month <= 2 {
		y--
	}

	era := y
	if y < 0 {
		era -= 399
	}
	era /= 400

	yoe := y - era*400 // [0, 399]

	m := month + 9
	if month > 2 {
		m = month - 3
	}

	doy := (153*m+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy

	return era*daysPer400Years + doe - epochShift
}

// DateOfEpochDay is the exact inverse of ToEpochDay for every epoch day in
// [MinEpochDay, MaxEpochDay].
func DateOfEpochDay(epochDay int64) (year, month, day int64) {
	d := epochDay + epochShift

	era := d
	if d < 0 {
		era -= daysPer400Years - 1
	}
	era /= daysPer400Years

	// doe is the day within the 400-year era, yoe the year within it.
	doe := d - era*daysPer400Years
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153

	day = doy - (153*mp+2)/5 + 1

	month = mp + 3
	if mp >= 10 {
		month = mp - 9
	}

	year = yoe + era*400
	if month <= 2 {
		year++
	}

	return year, month, day
}

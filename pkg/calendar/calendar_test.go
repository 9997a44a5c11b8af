package calendar

import (
	"errors"
	"strings"
	"testing"

	"github.com/mailru/chrono/pkg/chrono/errs"
)

func TestIsLeapYear(t *testing.T) {
	for i, test := range []struct {
		Year int64
		Leap bool
	}{
		{2016, true},
		{2017, false},
		{2000, true},
		{1900, false},
		{0, true},
		{-4, true},
		{-100, false},
		{-400, true},
	} {
		if got := IsLeapYear(test.Year); got != test.Leap {
			t.Errorf("[%d] IsLeapYear(%d) = %v; want %v", i, test.Year, got, test.Leap)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	for i, test := range []struct {
		Year, Month, Want int64
	}{
		{2015, 1, 31},
		{2015, 2, 28},
		{2016, 2, 29},
		{2015, 4, 30},
		{2015, 12, 31},
		{1900, 2, 28},
		{2000, 2, 29},
	} {
		if got := DaysInMonth(test.Year, test.Month); got != test.Want {
			t.Errorf("[%d] DaysInMonth(%d, %d) = %d; want %d", i, test.Year, test.Month, got, test.Want)
		}
	}
}

func TestToEpochDay(t *testing.T) {
	for i, test := range []struct {
		Year, Month, Day, Want int64
	}{
		{1970, 1, 1, 0},
		{1969, 12, 31, -1},
		{2015, 8, 30, 16677},
		{2000, 3, 1, 11017},
		{-44, 3, 15, -735525},
		{MinYear, 1, 1, MinEpochDay},
		{MaxYear, 12, 31, MaxEpochDay},
	} {
		if got := ToEpochDay(test.Year, test.Month, test.Day); got != test.Want {
			t.Errorf("[%d] ToEpochDay(%d, %d, %d) = %d; want %d", i, test.Year, test.Month, test.Day, got, test.Want)
		}
	}
}

func TestEpochDayRoundTrip(t *testing.T) {
	// Every day close to the bounds and the epoch, plus a coarse sweep of
	// the rest of the range.
	probe := make([]int64, 0, 8192)
	for d := MinEpochDay; d < MinEpochDay+1000; d++ {
		probe = append(probe, d)
	}
	for d := MaxEpochDay - 1000; d <= MaxEpochDay; d++ {
		probe = append(probe, d)
	}
	for d := int64(-1000); d <= 1000; d++ {
		probe = append(probe, d)
	}
	for d := MinEpochDay; d <= MaxEpochDay; d += 524287 {
		probe = append(probe, d)
	}

	for _, d := range probe {
		y, m, dd := DateOfEpochDay(d)

		if err := CheckYear(y); err != nil {
			t.Fatalf("DateOfEpochDay(%d) year %d out of range", d, y)
		}
		if m < 1 || m > 12 || dd < 1 || dd > DaysInMonth(y, m) {
			t.Fatalf("DateOfEpochDay(%d) = (%d, %d, %d): invalid date", d, y, m, dd)
		}
		if got := ToEpochDay(y, m, dd); got != d {
			t.Fatalf("ToEpochDay(DateOfEpochDay(%d)) = %d", d, got)
		}
	}
}

func TestChecks(t *testing.T) {
	for i, test := range []struct {
		Err  error
		Want error
	}{
		{CheckYear(0), nil},
		{CheckYear(MinYear), nil},
		{CheckYear(MaxYear + 1), errs.ErrField},
		{CheckYear(MinYear - 1), errs.ErrField},
		{CheckMonth(12), nil},
		{CheckMonth(0), errs.ErrField},
		{CheckMonth(13), errs.ErrField},
		{CheckDay(2016, 2, 29), nil},
		{CheckDay(2015, 2, 29), errs.ErrField},
		{CheckDay(2015, 4, 31), errs.ErrField},
		{CheckDay(2015, 4, 0), errs.ErrField},
		{CheckEpochDay(0), nil},
		{CheckEpochDay(MaxEpochDay + 1), errs.ErrRange},
		{CheckEpochDay(MinEpochDay - 1), errs.ErrRange},
	} {
		if (test.Want == nil) != (test.Err == nil) || (test.Want != nil && !errors.Is(test.Err, test.Want)) {
			t.Errorf("[%d] err = %v; want %v", i, test.Err, test.Want)
		}
	}
}

func TestCheckDayMessageNamesLeapBound(t *testing.T) {
	err := CheckDay(2015, 2, 29)
	if err == nil {
		t.Fatal("CheckDay(2015, 2, 29) = nil; want error")
	}
	if want := "day 29 must be in [1 - 28]"; !strings.Contains(err.Error(), want) {
		t.Errorf("CheckDay message %q does not name the bound %q", err.Error(), want)
	}
}

package chrono

import (
	"fmt"
	"time"

	"github.com/mailru/chrono/pkg/calendar"
	"github.com/mailru/chrono/pkg/chrono/errs"
	"github.com/mailru/chrono/pkg/safemath"
)

const (
	// MinInstantSecond and MaxInstantSecond bound the supported timeline in
	// epoch seconds. They are fixed contract constants matching the same
	// ±999999 year range as LocalDate.
	MinInstantSecond int64 = -31619087596800
	MaxInstantSecond int64 = 31494784780799
)

// Instant is a point on the UTC timeline: an epoch second plus a nanosecond
// offset within that second. nsec is normalized into [0, 1e9) even for
// negative seconds, so ordering by (sec, nsec) is chronological order. The
// zero value is the epoch.
type Instant struct {
	sec  int64
	nsec int32
}

// InstantOfEpochMilli decomposes a millisecond offset from the epoch with
// floor semantics, so negative timestamps keep a non-negative nanosecond.
func InstantOfEpochMilli(msec int64) (Instant, error) {
	if msec < safemath.MinSafeInteger || msec > safemath.MaxSafeInteger {
		return Instant{}, errs.ErrUnsafeInteger
	}

	return makeInstant(safemath.FloorDiv(msec, msecPerSec), safemath.FloorMod(msec, msecPerSec)*nsecPerMilli)
}

// InstantOfEpochSecond normalizes an epoch second plus a nanosecond
// adjustment, which may be negative or exceed one second, into the canonical
// (second, nanosecond) pair.
func InstantOfEpochSecond(seconds, nsecAdjustment int64) (Instant, error) {
	if err := safemath.CheckSafe(nsecAdjustment); err != nil {
		return Instant{}, err
	}

	sec, err := safemath.AddExact(seconds, safemath.FloorDiv(nsecAdjustment, nsecPerSec))
	if err != nil {
		return Instant{}, err
	}

	return makeInstant(sec, safemath.FloorMod(nsecAdjustment, nsecPerSec))
}

// Now reads the platform wall clock at millisecond precision.
func Now() (Instant, error) {
	return InstantOfEpochMilli(time.Now().UnixMilli())
}

// InstantFromTime converts a native timestamp through its millisecond view.
func InstantFromTime(t time.Time) (Instant, error) {
	return InstantOfEpochMilli(t.UnixMilli())
}

// ParseInstant accepts the strict UTC ISO-8601 form
// [±]YYYY-MM-DDTHH[:MM[:SS[.fraction]]]Z. The T separator and the trailing Z
// are mandatory, the time portion needs at least the hour, and any offset
// other than Z is rejected. Negative and extended years carry an explicit
// sign.
func ParseInstant(s string) (Instant, error) {
	year, i, ok := parseYear(s, 0)
	if !ok {
		return Instant{}, fmt.Errorf("%w: %q", errs.ErrParseInstant, s)
	}

	if i+7 > len(s) || s[i] != '-' || s[i+3] != '-' || s[i+6] != 'T' {
		return Instant{}, fmt.Errorf("%w: %q", errs.ErrParseInstant, s)
	}

	month, ok := digit2(s, i+1)
	if !ok {
		return Instant{}, fmt.Errorf("%w: %q", errs.ErrParseInstant, s)
	}

	day, ok := digit2(s, i+4)
	if !ok {
		return Instant{}, fmt.Errorf("%w: %q", errs.ErrParseInstant, s)
	}

	hour, minute, second, nsec, i, ok := parseClock(s, i+7, false)
	if !ok || i+1 != len(s) || s[i] != 'Z' {
		return Instant{}, fmt.Errorf("%w: %q", errs.ErrParseInstant, s)
	}

	if err := calendar.CheckYear(year); err != nil {
		return Instant{}, err
	}

	if err := calendar.CheckMonth(month); err != nil {
		return Instant{}, err
	}

	if err := calendar.CheckDay(year, month, day); err != nil {
		return Instant{}, err
	}

	if _, err := LocalTimeOf(hour, minute, second, nsec); err != nil {
		return Instant{}, err
	}

	sod := hour*secPerHour + minute*secPerMin + second

	return makeInstant(calendar.ToEpochDay(year, month, day)*secPerDay+sod, nsec)
}

func (i Instant) EpochSecond() int64 { return i.sec }
func (i Instant) Nano() int64        { return int64(i.nsec) }

// EpochMilli recombines seconds and nanoseconds rounded down to the
// millisecond. The result must itself be a safe integer.
func (i Instant) EpochMilli() (int64, error) {
	msec, err := safemath.MulExact(i.sec, msecPerSec)
	if err != nil {
		return 0, err
	}

	return safemath.AddExact(msec, int64(i.nsec)/nsecPerMilli)
}

// Time surfaces the millisecond view as a native UTC timestamp.
func (i Instant) Time() (time.Time, error) {
	msec, err := i.EpochMilli()
	if err != nil {
		return time.Time{}, err
	}

	return time.UnixMilli(msec).UTC(), nil
}

// PlusSeconds adds whole seconds. An amount that breaks safe-integer
// addition fails as overflow; a safe sum outside the timeline bound fails
// naming the computed value.
func (i Instant) PlusSeconds(seconds int64) (Instant, error) {
	return i.plus(seconds, 0)
}

// MinusSeconds is PlusSeconds with the amount negated.
func (i Instant) MinusSeconds(seconds int64) (Instant, error) {
	return i.plus(-seconds, 0)
}

func (i Instant) PlusHours(hours int64) (Instant, error) {
	seconds, err := safemath.MulExact(hours, secPerHour)
	if err != nil {
		return Instant{}, err
	}

	return i.plus(seconds, 0)
}

func (i Instant) MinusHours(hours int64) (Instant, error) {
	seconds, err := safemath.MulExact(hours, -secPerHour)
	if err != nil {
		return Instant{}, err
	}

	return i.plus(seconds, 0)
}

func (i Instant) PlusMinutes(minutes int64) (Instant, error) {
	seconds, err := safemath.MulExact(minutes, secPerMin)
	if err != nil {
		return Instant{}, err
	}

	return i.plus(seconds, 0)
}

func (i Instant) MinusMinutes(minutes int64) (Instant, error) {
	seconds, err := safemath.MulExact(minutes, -secPerMin)
	if err != nil {
		return Instant{}, err
	}

	return i.plus(seconds, 0)
}

func (i Instant) PlusMillis(millis int64) (Instant, error) {
	if err := safemath.CheckSafe(millis); err != nil {
		return Instant{}, err
	}

	return i.plus(safemath.FloorDiv(millis, msecPerSec), safemath.FloorMod(millis, msecPerSec)*nsecPerMilli)
}

func (i Instant) MinusMillis(millis int64) (Instant, error) {
	if err := safemath.CheckSafe(millis); err != nil {
		return Instant{}, err
	}

	return i.plus(safemath.FloorDiv(-millis, msecPerSec), safemath.FloorMod(-millis, msecPerSec)*nsecPerMilli)
}

func (i Instant) PlusMicros(micros int64) (Instant, error) {
	if err := safemath.CheckSafe(micros); err != nil {
		return Instant{}, err
	}

	return i.plus(safemath.FloorDiv(micros, usecPerSec), safemath.FloorMod(micros, usecPerSec)*nsecPerMicro)
}

func (i Instant) MinusMicros(micros int64) (Instant, error) {
	if err := safemath.CheckSafe(micros); err != nil {
		return Instant{}, err
	}

	return i.plus(safemath.FloorDiv(-micros, usecPerSec), safemath.FloorMod(-micros, usecPerSec)*nsecPerMicro)
}

func (i Instant) PlusNanos(nanos int64) (Instant, error) {
	if err := safemath.CheckSafe(nanos); err != nil {
		return Instant{}, err
	}

	return i.plus(safemath.FloorDiv(nanos, nsecPerSec), safemath.FloorMod(nanos, nsecPerSec))
}

func (i Instant) MinusNanos(nanos int64) (Instant, error) {
	if err := safemath.CheckSafe(nanos); err != nil {
		return Instant{}, err
	}

	return i.plus(safemath.FloorDiv(-nanos, nsecPerSec), safemath.FloorMod(-nanos, nsecPerSec))
}

// plus adds a split (seconds, nanoseconds) delta with nanos in [0, 1e9).
func (i Instant) plus(seconds, nanos int64) (Instant, error) {
	if seconds == 0 && nanos == 0 {
		return i, nil
	}

	sec, err := safemath.AddExact(i.sec, seconds)
	if err != nil {
		return Instant{}, err
	}

	nsec := int64(i.nsec) + nanos
	if nsec >= nsecPerSec {
		nsec -= nsecPerSec

		sec, err = safemath.AddExact(sec, 1)
		if err != nil {
			return Instant{}, err
		}
	}

	return makeInstant(sec, nsec)
}

// CompareAscending orders two instants chronologically by their
// (epoch second, nanosecond) pair, returning -1, 0 or 1.
func CompareAscending(a, b Instant) int {
	switch {
	case a.sec < b.sec:
		return -1
	case a.sec > b.sec:
		return 1
	case a.nsec < b.nsec:
		return -1
	case a.nsec > b.nsec:
		return 1
	}

	return 0
}

// CompareDescending is the reverse of CompareAscending.
func CompareDescending(a, b Instant) int {
	return CompareAscending(b, a)
}

func (i Instant) Compare(o Instant) int        { return CompareAscending(i, o) }
func (i Instant) Before(o Instant) bool        { return CompareAscending(i, o) < 0 }
func (i Instant) After(o Instant) bool         { return CompareAscending(i, o) > 0 }
func (i Instant) BeforeOrEqual(o Instant) bool { return CompareAscending(i, o) <= 0 }
func (i Instant) AfterOrEqual(o Instant) bool  { return CompareAscending(i, o) >= 0 }
func (i Instant) Equal(o Instant) bool         { return i == o }

// String formats the instant as a Z-suffixed UTC ISO-8601 date-time with the
// same fraction trim rule as LocalTime.
func (i Instant) String() string {
	epochDay := safemath.FloorDiv(i.sec, secPerDay)
	sod := safemath.FloorMod(i.sec, secPerDay)

	year, month, day := calendar.DateOfEpochDay(epochDay)

	b := make([]byte, 0, 33)
	b = appendYear(b, year)
	b = append(b, '-')
	b = appendPad2(b, month)
	b = append(b, '-')
	b = appendPad2(b, day)
	b = append(b, 'T')
	b = appendClock(b, sod/secPerHour, sod/secPerMin%60, sod%60, int64(i.nsec))
	b = append(b, 'Z')

	return string(b)
}

// makeInstant range-checks the normalized epoch second. nsec must already be
// in [0, 1e9).
func makeInstant(sec, nsec int64) (Instant, error) {
	if sec < MinInstantSecond || sec > MaxInstantSecond {
		return Instant{}, fmt.Errorf("%w: epoch second %d must be in [%d - %d]", errs.ErrRange, sec, MinInstantSecond, MaxInstantSecond)
	}

	return Instant{sec: sec, nsec: int32(nsec)}, nil
}

package chrono

import (
	"fmt"

	"github.com/mailru/chrono/pkg/chrono/errs"
	"github.com/mailru/chrono/pkg/safemath"
)

// LocalTime is a time-of-day with nanosecond resolution and no date or
// offset attached. The zero value is midnight.
type LocalTime struct {
	// nod is the nanosecond of day, always in [0, 86400e9).
	nod int64
}

var (
	// StartOfDay is 00:00:00.000000000.
	StartOfDay = LocalTime{}

	// EndOfDay is 23:59:59.999999999.
	EndOfDay = LocalTime{nod: nsecPerDay - 1}
)

// LocalTimeOf validates hour, minute, second and nanosecond independently,
// each against its own bound.
func LocalTimeOf(hour, minute, second, nsec int64) (LocalTime, error) {
	if hour < 0 || hour > 23 {
		return LocalTime{}, fmt.Errorf("%w: hour %d must be in [0 - 23]", errs.ErrField, hour)
	}

	if minute < 0 || minute > 59 {
		return LocalTime{}, fmt.Errorf("%w: minute %d must be in [0 - 59]", errs.ErrField, minute)
	}

	if second < 0 || second > 59 {
		return LocalTime{}, fmt.Errorf("%w: second %d must be in [0 - 59]", errs.ErrField, second)
	}

	if nsec < 0 || nsec >= nsecPerSec {
		return LocalTime{}, fmt.Errorf("%w: nanosecond %d must be in [0 - %d]", errs.ErrField, nsec, nsecPerSec-1)
	}

	return LocalTime{nod: (hour*secPerHour+minute*secPerMin+second)*nsecPerSec + nsec}, nil
}

// LocalTimeOfSecondOfDay builds a time from a second-of-day count plus a
// nanosecond offset within that second.
func LocalTimeOfSecondOfDay(secondOfDay, nsec int64) (LocalTime, error) {
	if secondOfDay < 0 || secondOfDay >= secPerDay {
		return LocalTime{}, fmt.Errorf("%w: second of day %d must be in [0 - %d]", errs.ErrRange, secondOfDay, secPerDay-1)
	}

	if nsec < 0 || nsec >= nsecPerSec {
		return LocalTime{}, fmt.Errorf("%w: nanosecond %d must be in [0 - %d]", errs.ErrRange, nsec, nsecPerSec-1)
	}

	return LocalTime{nod: secondOfDay*nsecPerSec + nsec}, nil
}

// ParseLocalTime accepts HH:MM, HH:MM:SS and HH:MM:SS.fraction with one to
// nine fraction digits; shorter fractions are right-padded to nanoseconds.
func ParseLocalTime(s string) (LocalTime, error) {
	hour, minute, second, nsec, rest, ok := parseClock(s, 0, true)
	if !ok || rest != len(s) {
		return LocalTime{}, fmt.Errorf("%w: %q", errs.ErrParseTime, s)
	}

	return LocalTimeOf(hour, minute, second, nsec)
}

// parseClock reads HH[:MM[:SS[.fraction]]] at offset i. When minuteRequired
// is set the minute group must be present.
func parseClock(s string, i int, minuteRequired bool) (hour, minute, second, nsec int64, rest int, ok bool) {
	hour, ok = digit2(s, i)
	if !ok {
		return 0, 0, 0, 0, 0, false
	}

	i += 2
	if i >= len(s) || s[i] != ':' {
		if minuteRequired {
			return 0, 0, 0, 0, 0, false
		}

		return hour, 0, 0, 0, i, true
	}

	minute, ok = digit2(s, i+1)
	if !ok {
		return 0, 0, 0, 0, 0, false
	}

	i += 3
	if i >= len(s) || s[i] != ':' {
		return hour, minute, 0, 0, i, true
	}

	second, ok = digit2(s, i+1)
	if !ok {
		return 0, 0, 0, 0, 0, false
	}

	i += 3
	if i < len(s) && s[i] == '.' {
		nsec, i, ok = parseFraction(s, i)
		if !ok {
			return 0, 0, 0, 0, 0, false
		}
	}

	return hour, minute, second, nsec, i, true
}

func (t LocalTime) Hour() int64   { return t.nod / nsecPerHour }
func (t LocalTime) Minute() int64 { return t.nod / nsecPerMin % 60 }
func (t LocalTime) Second() int64 { return t.nod / nsecPerSec % 60 }
func (t LocalTime) Nano() int64   { return t.nod % nsecPerSec }

// Projections onto coarser units truncate the finer-grained remainder
// rather than rounding.
func (t LocalTime) MinuteOfDay() int64 { return t.nod / nsecPerMin }
func (t LocalTime) SecondOfDay() int64 { return t.nod / nsecPerSec }
func (t LocalTime) MilliOfDay() int64  { return t.nod / nsecPerMilli }
func (t LocalTime) MicroOfDay() int64  { return t.nod / nsecPerMicro }
func (t LocalTime) NanoOfDay() int64   { return t.nod }

// PlusHours wraps around midnight; day rollover is dropped.
func (t LocalTime) PlusHours(hours int64) (LocalTime, error) {
	return t.plusUnit(hours, nsecPerHour)
}

// MinusHours is PlusHours with the amount negated.
func (t LocalTime) MinusHours(hours int64) (LocalTime, error) {
	return t.plusUnit(-hours, nsecPerHour)
}

func (t LocalTime) PlusMinutes(minutes int64) (LocalTime, error) {
	return t.plusUnit(minutes, nsecPerMin)
}

func (t LocalTime) MinusMinutes(minutes int64) (LocalTime, error) {
	return t.plusUnit(-minutes, nsecPerMin)
}

func (t LocalTime) PlusSeconds(seconds int64) (LocalTime, error) {
	return t.plusUnit(seconds, nsecPerSec)
}

func (t LocalTime) MinusSeconds(seconds int64) (LocalTime, error) {
	return t.plusUnit(-seconds, nsecPerSec)
}

func (t LocalTime) PlusMillis(millis int64) (LocalTime, error) {
	return t.plusUnit(millis, nsecPerMilli)
}

func (t LocalTime) MinusMillis(millis int64) (LocalTime, error) {
	return t.plusUnit(-millis, nsecPerMilli)
}

func (t LocalTime) PlusMicros(micros int64) (LocalTime, error) {
	return t.plusUnit(micros, nsecPerMicro)
}

func (t LocalTime) MinusMicros(micros int64) (LocalTime, error) {
	return t.plusUnit(-micros, nsecPerMicro)
}

func (t LocalTime) PlusNanos(nanos int64) (LocalTime, error) {
	return t.plusUnit(nanos, 1)
}

func (t LocalTime) MinusNanos(nanos int64) (LocalTime, error) {
	return t.plusUnit(-nanos, 1)
}

// plusUnit converts the delta to nanoseconds with a checked multiply, folds
// it into [0, 86400e9) and adds modulo one day. The only failure is the
// delta conversion itself overflowing.
func (t LocalTime) plusUnit(amount, unit int64) (LocalTime, error) {
	if amount == 0 {
		return t, nil
	}

	nanos, err := safemath.MulExact(amount, unit)
	if err != nil {
		return LocalTime{}, err
	}

	wrapped := safemath.FloorMod(nanos, nsecPerDay)

	return LocalTime{nod: safemath.FloorMod(t.nod+wrapped, nsecPerDay)}, nil
}

// Compare orders by nanosecond of day, returning -1, 0 or 1.
func (t LocalTime) Compare(o LocalTime) int {
	switch {
	case t.nod < o.nod:
		return -1
	case t.nod > o.nod:
		return 1
	}

	return 0
}

func (t LocalTime) Before(o LocalTime) bool        { return t.nod < o.nod }
func (t LocalTime) After(o LocalTime) bool         { return t.nod > o.nod }
func (t LocalTime) BeforeOrEqual(o LocalTime) bool { return t.nod <= o.nod }
func (t LocalTime) AfterOrEqual(o LocalTime) bool  { return t.nod >= o.nod }
func (t LocalTime) Equal(o LocalTime) bool         { return t == o }

// String formats the time as HH:MM[:SS[.fraction]] with the fraction trimmed
// to the shortest of the 3, 6 or 9 digit groups that keeps the precision.
func (t LocalTime) String() string {
	return string(appendClock(make([]byte, 0, 18), t.Hour(), t.Minute(), t.Second(), t.Nano()))
}

package chrono

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mailru/chrono/pkg/chrono/errs"
	"github.com/mailru/chrono/pkg/safemath"
)

func mustTime(t *testing.T, hour, minute, second, nsec int64) LocalTime {
	t.Helper()

	lt, err := LocalTimeOf(hour, minute, second, nsec)
	require.NoError(t, err)

	return lt
}

func TestLocalTimeOf(t *testing.T) {
	tests := []struct {
		name       string
		h, m, s, n int64
		wantErr    string
	}{
		{name: "midnight"},
		{name: "last nanosecond", h: 23, m: 59, s: 59, n: 999999999},
		{name: "hour too big", h: 24, wantErr: "hour 24 must be in [0 - 23]"},
		{name: "hour negative", h: -1, wantErr: "hour -1 must be in [0 - 23]"},
		{name: "minute too big", m: 60, wantErr: "minute 60 must be in [0 - 59]"},
		{name: "second too big", s: 60, wantErr: "second 60 must be in [0 - 59]"},
		{name: "nano too big", n: 1000000000, wantErr: "nanosecond 1000000000 must be in [0 - 999999999]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocalTimeOf(tt.h, tt.m, tt.s, tt.n)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, errs.ErrField)
				require.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.h, got.Hour())
			require.Equal(t, tt.m, got.Minute())
			require.Equal(t, tt.s, got.Second())
			require.Equal(t, tt.n, got.Nano())
		})
	}
}

func TestLocalTimeOfSecondOfDay(t *testing.T) {
	got, err := LocalTimeOfSecondOfDay(45296, 155000000)
	require.NoError(t, err)
	require.Equal(t, "12:34:56.155", got.String())

	_, err = LocalTimeOfSecondOfDay(86400, 0)
	require.ErrorIs(t, err, errs.ErrRange)
	require.Contains(t, err.Error(), "second of day 86400 must be in [0 - 86399]")

	_, err = LocalTimeOfSecondOfDay(0, -1)
	require.ErrorIs(t, err, errs.ErrRange)
}

func TestLocalTimeBounds(t *testing.T) {
	require.Equal(t, "00:00", StartOfDay.String())
	require.Equal(t, "23:59:59.999999999", EndOfDay.String())
	require.Equal(t, int64(86399), EndOfDay.SecondOfDay())
	require.Equal(t, int64(999999999), EndOfDay.Nano())
}

func TestParseLocalTime(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		nano    int64
		wantErr error
	}{
		{name: "hour minute", in: "12:34", want: "12:34"},
		{name: "full seconds", in: "12:34:56", want: "12:34:56"},
		{name: "millis", in: "12:34:56.155", want: "12:34:56.155", nano: 155000000},
		{name: "short fraction pads right", in: "12:34:56.5", want: "12:34:56.500", nano: 500000000},
		{name: "micros", in: "12:34:56.123456", want: "12:34:56.123456", nano: 123456000},
		{name: "nanos", in: "12:34:56.123456789", want: "12:34:56.123456789", nano: 123456789},
		{name: "lone hour", in: "12", wantErr: errs.ErrParseTime},
		{name: "colon fraction", in: "12:34:56:78.99", wantErr: errs.ErrParseTime},
		{name: "fraction too long", in: "12:34:56.1234567891", wantErr: errs.ErrParseTime},
		{name: "empty fraction", in: "12:34:56.", wantErr: errs.ErrParseTime},
		{name: "single digit minute", in: "12:3", wantErr: errs.ErrParseTime},
		{name: "trailing junk", in: "12:34Z", wantErr: errs.ErrParseTime},
		{name: "hour out of range", in: "24:00", wantErr: errs.ErrField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocalTime(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantErr == errs.ErrParseTime {
					require.Contains(t, err.Error(), tt.in)
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
			require.Equal(t, tt.nano, got.Nano())
		})
	}
}

func TestLocalTimeArithmeticWraps(t *testing.T) {
	tests := []struct {
		name string
		exec func(LocalTime) (LocalTime, error)
		want string
	}{
		{name: "plus hours wraps", exec: func(lt LocalTime) (LocalTime, error) { return lt.PlusHours(2) }, want: "01:30"},
		{name: "plus many hours", exec: func(lt LocalTime) (LocalTime, error) { return lt.PlusHours(49) }, want: "00:30"},
		{name: "minus hours wraps", exec: func(lt LocalTime) (LocalTime, error) { return lt.MinusHours(24) }, want: "23:30"},
		{name: "plus minutes", exec: func(lt LocalTime) (LocalTime, error) { return lt.PlusMinutes(45) }, want: "00:15"},
		{name: "minus seconds wraps", exec: func(lt LocalTime) (LocalTime, error) { return lt.MinusSeconds(1801) }, want: "22:59:59"},
		{name: "plus millis", exec: func(lt LocalTime) (LocalTime, error) { return lt.PlusMillis(1500) }, want: "23:30:01.500"},
		{name: "plus micros", exec: func(lt LocalTime) (LocalTime, error) { return lt.PlusMicros(250) }, want: "23:30:00.000250"},
		{name: "plus nanos", exec: func(lt LocalTime) (LocalTime, error) { return lt.PlusNanos(1) }, want: "23:30:00.000000001"},
		{name: "minus nanos wraps", exec: func(lt LocalTime) (LocalTime, error) { return lt.MinusNanos(1) }, want: "23:29:59.999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.exec(mustTime(t, 23, 30, 0, 0))
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}

func TestLocalTimeArithmeticOverflow(t *testing.T) {
	// The only failure mode is the delta conversion itself.
	_, err := StartOfDay.PlusHours(safemath.MaxSafeInteger)
	require.ErrorIs(t, err, errs.ErrOverflow)

	_, err = StartOfDay.MinusMinutes(safemath.MaxSafeInteger)
	require.ErrorIs(t, err, errs.ErrOverflow)

	got, err := StartOfDay.PlusNanos(safemath.MaxSafeInteger)
	require.NoError(t, err)
	require.Equal(t, safemath.FloorMod(safemath.MaxSafeInteger, 86400000000000), got.NanoOfDay())
}

func TestLocalTimeArithmeticIdentity(t *testing.T) {
	lt := mustTime(t, 12, 34, 56, 155000000)

	for name, exec := range map[string]func() (LocalTime, error){
		"PlusHours":   func() (LocalTime, error) { return lt.PlusHours(0) },
		"PlusMinutes": func() (LocalTime, error) { return lt.PlusMinutes(0) },
		"PlusSeconds": func() (LocalTime, error) { return lt.PlusSeconds(0) },
		"PlusMillis":  func() (LocalTime, error) { return lt.PlusMillis(0) },
		"PlusMicros":  func() (LocalTime, error) { return lt.PlusMicros(0) },
		"PlusNanos":   func() (LocalTime, error) { return lt.PlusNanos(0) },
	} {
		got, err := exec()
		require.NoError(t, err, name)
		require.Equal(t, lt, got, name)
	}
}

func TestLocalTimeAdditiveInverse(t *testing.T) {
	lt := mustTime(t, 12, 34, 56, 155000000)

	for _, n := range []int64{1, 3600, 86400, 86401, -7200} {
		plus, err := lt.PlusSeconds(n)
		require.NoError(t, err)

		back, err := plus.MinusSeconds(n)
		require.NoError(t, err)
		require.True(t, back.Equal(lt), "n=%d", n)
	}
}

func TestLocalTimeProjectionsTruncate(t *testing.T) {
	lt := mustTime(t, 12, 34, 56, 987654321)

	require.Equal(t, int64(12*60+34), lt.MinuteOfDay())
	require.Equal(t, int64(45296), lt.SecondOfDay())
	require.Equal(t, int64(45296987), lt.MilliOfDay())
	require.Equal(t, int64(45296987654), lt.MicroOfDay())
	require.Equal(t, int64(45296987654321), lt.NanoOfDay())
}

func TestLocalTimeCompare(t *testing.T) {
	a := mustTime(t, 12, 0, 0, 0)
	b := mustTime(t, 12, 0, 0, 1)

	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
	require.True(t, a.Before(b))
	require.True(t, b.After(a))
	require.True(t, a.BeforeOrEqual(b))
	require.False(t, a.AfterOrEqual(b))
}

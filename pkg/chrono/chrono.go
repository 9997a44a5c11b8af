// Package chrono contains immutable date-time value objects over the
// proleptic Gregorian calendar: an Instant on the UTC timeline, a LocalDate,
// a LocalTime and an InstantRange. All arithmetic is overflow-checked within
// the safe-integer range and every factory validates before constructing, so
// an existing value always denotes a real calendar date or timeline point.
package chrono

const (
	nsecPerSec   int64 = 1000000000
	nsecPerMilli int64 = 1000000
	nsecPerMicro int64 = 1000
	nsecPerMin   int64 = 60 * nsecPerSec
	nsecPerHour  int64 = 3600 * nsecPerSec
	nsecPerDay   int64 = 86400 * nsecPerSec

	secPerMin  int64 = 60
	secPerHour int64 = 3600
	secPerDay  int64 = 86400

	msecPerSec int64 = 1000
	usecPerSec int64 = 1000000
)

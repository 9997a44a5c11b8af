package chrono

// Fixed-width digit scanning and emission for the ISO-8601 grammars. The
// parsers work on raw bytes with no allocations, looking only for the exact
// separators and digit-group lengths each grammar allows.

// digit2 reads exactly two ASCII digits at offset i.
func digit2(s string, i int) (int64, bool) {
	if i+2 > len(s) {
		return 0, false
	}

	hi, lo := s[i], s[i+1]
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}

	return int64(hi-'0')*10 + int64(lo-'0'), true
}

// digits reads ASCII digits from offset i up to limit digits, returning the
// value and the number of digits consumed.
func digits(s string, i, limit int) (int64, int) {
	var v int64

	n := 0
	for i+n < len(s) && n < limit {
		c := s[i+n]
		if c < '0' || c > '9' {
			break
		}

		v = v*10 + int64(c-'0')
		n++
	}

	return v, n
}

// parseYear reads a year group at offset i: an optional sign followed by
// digit characters. Unsigned years are exactly four digits; signed years may
// carry four to six. Returns the year value and the offset past the group.
func parseYear(s string, i int) (int64, int, bool) {
	neg := false
	signed := false

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		signed = true
		neg = s[i] == '-'
		i++
	}

	limit := 4
	if signed {
		limit = 6
	}

	v, n := digits(s, i, limit)
	if n < 4 {
		return 0, 0, false
	}

	if neg {
		v = -v
	}

	return v, i + n, true
}

// parseFraction reads a '.' followed by one to nine digits at offset i and
// returns the value scaled to nanoseconds.
func parseFraction(s string, i int) (int64, int, bool) {
	if i >= len(s) || s[i] != '.' {
		return 0, 0, false
	}

	v, n := digits(s, i+1, 9)
	if n == 0 {
		return 0, 0, false
	}

	for k := n; k < 9; k++ {
		v *= 10
	}

	return v, i + 1 + n, true
}

func appendPad2(b []byte, v int64) []byte {
	return append(b, byte('0'+v/10), byte('0'+v%10))
}

func appendPadded(b []byte, v int64, width int) []byte {
	var tmp [19]byte

	n := 0
	if v == 0 {
		tmp[n] = '0'
		n++
	}

	for v > 0 {
		tmp[n] = byte('0' + v%10)
		v /= 10
		n++
	}

	for ; n < width; n++ {
		tmp[n] = '0'
	}

	for n--; n >= 0; n-- {
		b = append(b, tmp[n])
	}

	return b
}

// appendYear emits a year zero-padded to at least four digits, with a '-'
// prefix for negative years and a '+' prefix beyond 9999 so that the output
// parses back under the same grammar.
func appendYear(b []byte, year int64) []byte {
	switch {
	case year < 0:
		b = append(b, '-')
		year = -year
	case year > 9999:
		b = append(b, '+')
	}

	return appendPadded(b, year, 4)
}

// appendClock emits HH:MM and then the shortest suffix that preserves the
// actual precision: seconds only when the second or fraction is non-zero and
// a 3, 6 or 9 digit fraction group when nanoseconds are present.
func appendClock(b []byte, hour, minute, second, nsec int64) []byte {
	b = appendPad2(b, hour)
	b = append(b, ':')
	b = appendPad2(b, minute)

	if second == 0 && nsec == 0 {
		return b
	}

	b = append(b, ':')
	b = appendPad2(b, second)

	switch {
	case nsec == 0:
	case nsec%nsecPerMilli == 0:
		b = append(b, '.')
		b = appendPadded(b, nsec/nsecPerMilli, 3)
	case nsec%nsecPerMicro == 0:
		b = append(b, '.')
		b = appendPadded(b, nsec/nsecPerMicro, 6)
	default:
		b = append(b, '.')
		b = appendPadded(b, nsec, 9)
	}

	return b
}

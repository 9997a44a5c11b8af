package chrono

import (
	"fmt"

	"github.com/mailru/chrono/pkg/chrono/errs"
)

// InstantRange is a half-open interval on the UTC timeline. The start is
// always strictly before the end; equal bounds are rejected.
type InstantRange struct {
	start Instant
	end   Instant
}

// NewInstantRange validates the ordering invariant and returns the range.
func NewInstantRange(start, end Instant) (InstantRange, error) {
	if !start.Before(end) {
		return InstantRange{}, fmt.Errorf("%w: %s >= %s", errs.ErrRangeOrder, start, end)
	}

	return InstantRange{start: start, end: end}, nil
}

// ParseInstantRange revives a range from its <start>/<end> interval form.
func ParseInstantRange(s string) (InstantRange, error) {
	sep := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			sep = i
			break
		}
	}

	if sep < 0 {
		return InstantRange{}, fmt.Errorf("%w: %q", errs.ErrParseRange, s)
	}

	start, err := ParseInstant(s[:sep])
	if err != nil {
		return InstantRange{}, fmt.Errorf("%w: %q: %v", errs.ErrParseRange, s, err)
	}

	end, err := ParseInstant(s[sep+1:])
	if err != nil {
		return InstantRange{}, fmt.Errorf("%w: %q: %v", errs.ErrParseRange, s, err)
	}

	return NewInstantRange(start, end)
}

// IsInstantRange reports whether v is a genuine InstantRange value.
func IsInstantRange(v interface{}) bool {
	switch x := v.(type) {
	case InstantRange:
		return true
	case *InstantRange:
		return x != nil
	}

	return false
}

func (r InstantRange) Start() Instant { return r.start }
func (r InstantRange) End() Instant   { return r.end }

// Contains reports whether i falls within [start, end).
func (r InstantRange) Contains(i Instant) bool {
	return r.start.BeforeOrEqual(i) && r.end.After(i)
}

// String serializes the range as <start>/<end> using the canonical instant
// form of each bound.
func (r InstantRange) String() string {
	return r.start.String() + "/" + r.end.String()
}

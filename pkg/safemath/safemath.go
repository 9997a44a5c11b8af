// Package safemath contains integer arithmetic restricted to the range of
// safe integers, i.e. integers exactly representable in an IEEE-754 double.
package safemath

import (
	"math"

	"github.com/mailru/chrono/pkg/chrono/errs"
)

const (
	// MaxSafeInteger is the largest safe integer, 2^53-1.
	MaxSafeInteger int64 = 1<<53 - 1

	// MinSafeInteger is the smallest safe integer, -(2^53-1).
	MinSafeInteger int64 = -MaxSafeInteger
)

// CheckSafe reports whether v lies within [MinSafeInteger, MaxSafeInteger].
func CheckSafe(v int64) error {
	if v < MinSafeInteger || v > MaxSafeInteger {
		return errs.ErrOverflow
	}

	return nil
}

// FromFloat converts f to a safe integer. Fractional, NaN and infinite
// values are rejected the same way as out-of-range ones.
func FromFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errs.ErrUnsafeInteger
	}

	if f < float64(MinSafeInteger) || f > float64(MaxSafeInteger) {
		return 0, errs.ErrUnsafeInteger
	}

	return int64(f), nil
}

// AddExact returns a+b, failing when an operand or the exact sum leaves the
// safe range.
func AddExact(a, b int64) (int64, error) {
	if err := CheckSafe(a); err != nil {
		return 0, err
	}

	if err := CheckSafe(b); err != nil {
		return 0, err
	}

	// Operands fit in 53 bits, so the int64 sum itself cannot wrap.
	v := a + b
	if err := CheckSafe(v); err != nil {
		return 0, err
	}

	return v, nil
}

// SubExact returns a-b with the same checks as AddExact.
func SubExact(a, b int64) (int64, error) {
	return AddExact(a, -b)
}

// MulExact returns a*b, failing when the exact product leaves the safe range.
func MulExact(a, b int64) (int64, error) {
	if err := CheckSafe(a); err != nil {
		return 0, err
	}

	if err := CheckSafe(b); err != nil {
		return 0, err
	}

	if a == 0 || b == 0 {
		return 0, nil
	}

	// Guard before multiplying: the full product may not fit in int64 at all.
	if abs(a) > MaxSafeInteger/abs(b) {
		return 0, errs.ErrOverflow
	}

	return a * b, nil
}

// IntDiv returns a/b truncated toward zero. Division by zero has no safe
// integer result and fails the same way as overflow.
func IntDiv(a, b int64) (int64, error) {
	if err := CheckSafe(a); err != nil {
		return 0, err
	}

	if err := CheckSafe(b); err != nil {
		return 0, err
	}

	if b == 0 {
		return 0, errs.ErrOverflow
	}

	return a / b, nil
}

// FloorDiv returns the largest integer not greater than the true quotient
// a/b, rounding toward negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// FloorMod returns a - FloorDiv(a, b)*b, which lies in [0, b) for positive b.
func FloorMod(a, b int64) int64 {
	return a - FloorDiv(a, b)*b
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

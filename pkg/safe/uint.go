// Package safe provides helpers for safe numeric conversions and arithmetic with overflow checks.
package safe

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOverflow is returned when a sum exceeds the uint64 range.
	ErrOverflow = errors.New("uint64 overflow")
	// ErrUnderflow is returned when a difference would be negative.
	ErrUnderflow = errors.New("uint64 underflow")
)

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint64, error) {
	switch value := any(v).(type) {
	case int:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(value), nil
	case int32:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(value), nil
	case int64:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(value), nil
	case uint:
		return uint64(value), nil
	case uint32:
		return uint64(value), nil
	case uint64:
		return value, nil
	default:
		if v < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(v), nil
	}
}

// Add returns a+b or ErrOverflow.
func Add[T ~uint64](a, b T) (T, error) {
	if uint64(a) > math.MaxUint64-uint64(b) {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}
	return a + b, nil
}

// Sub returns a-b or ErrUnderflow.
func Sub[T ~uint64](a, b T) (T, error) {
	if b > a {
		return 0, fmt.Errorf("%d - %d: %w", a, b, ErrUnderflow)
	}
	return a - b, nil
}

// Sum adds all values, failing on overflow.
func Sum[T ~uint64](values ...T) (T, error) {
	var total T
	for _, v := range values {
		var err error
		if total, err = Add(total, v); err != nil {
			return 0, err
		}
	}
	return total, nil
}

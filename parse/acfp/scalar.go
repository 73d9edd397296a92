package acfp

import (
	"errors"
	"fmt"
	"strconv"
)

// Scalar is the closed set of types a field can be coerced to.
type Scalar interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string
}

// ParseBool interprets text by its first character only, case-insensitively:
// '0', 'f', 'n' mean false; '1', 't', 'y' mean true. The tail is ignored, so
// "yes", "y" and "true" are all equally true.
func ParseBool(text string) (bool, error) {
	if len(text) > 0 {
		switch text[0] {
		case '0', 'f', 'n', 'F', 'N':
			return false, nil
		case '1', 't', 'y', 'T', 'Y':
			return true, nil
		}
	}
	return false, fmt.Errorf("%w: cannot parse %q as bool", ErrValueSyntax, text)
}

// ParseScalar converts text to the requested type. Numeric conversions must
// consume the entire input; trailing characters after a valid number are
// rejected, not truncated. Failures wrap exactly one of ErrValueSyntax,
// ErrValueRange, or ErrConversion, so callers can triage with errors.Is.
func ParseScalar[T Scalar](text string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = text
	case *bool:
		*p, err = ParseBool(text)
	case *int:
		err = parseInt(text, strconv.IntSize, func(n int64) { *p = int(n) })
	case *int8:
		err = parseInt(text, 8, func(n int64) { *p = int8(n) })
	case *int16:
		err = parseInt(text, 16, func(n int64) { *p = int16(n) })
	case *int32:
		err = parseInt(text, 32, func(n int64) { *p = int32(n) })
	case *int64:
		err = parseInt(text, 64, func(n int64) { *p = n })
	case *uint:
		err = parseUint(text, strconv.IntSize, func(n uint64) { *p = uint(n) })
	case *uint8:
		err = parseUint(text, 8, func(n uint64) { *p = uint8(n) })
	case *uint16:
		err = parseUint(text, 16, func(n uint64) { *p = uint16(n) })
	case *uint32:
		err = parseUint(text, 32, func(n uint64) { *p = uint32(n) })
	case *uint64:
		err = parseUint(text, 64, func(n uint64) { *p = n })
	case *float32:
		err = parseFloat(text, 32, func(f float64) { *p = float32(f) })
	case *float64:
		err = parseFloat(text, 64, func(f float64) { *p = f })
	}
	return v, err
}

func parseInt(text string, bits int, assign func(int64)) error {
	n, err := strconv.ParseInt(text, 10, bits)
	if err != nil {
		return numError(text, bits, err)
	}
	assign(n)
	return nil
}

func parseUint(text string, bits int, assign func(uint64)) error {
	n, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return numError(text, bits, err)
	}
	assign(n)
	return nil
}

func parseFloat(text string, bits int, assign func(float64)) error {
	f, err := strconv.ParseFloat(text, bits)
	if err != nil {
		return numError(text, bits, err)
	}
	assign(f)
	return nil
}

// numError splits strconv failures into the three reportable kinds.
func numError(text string, bits int, err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		switch {
		case errors.Is(ne.Err, strconv.ErrRange):
			return fmt.Errorf("%w: %q does not fit in %d bits", ErrValueRange, text, bits)
		case errors.Is(ne.Err, strconv.ErrSyntax):
			return fmt.Errorf("%w: cannot parse %q as a number", ErrValueSyntax, text)
		}
	}
	return fmt.Errorf("%w: parsing %q: %v", ErrConversion, text, err)
}

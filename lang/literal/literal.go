// Package literal parses the textual form of floating point values, as
// accepted by the ordfloat command. The syntax is described in grammar.ebnf:
// it is Go's float literal syntax (without '_' separators) extended with
// signed infinities and NaNs, and with raw IEEE-754 bit patterns written as
// "bits:<hex>".
package literal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

const bitsPrefix = "bits:"

var (
	// ErrSyntax indicates that a literal is not well-formed.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange indicates that a literal does not fit the target width.
	ErrRange = errors.New("value out of range")
)

// An Error describes a literal that could not be parsed.
type Error struct {
	Lit string // the input
	Err error  // ErrSyntax or ErrRange
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid literal %q: %s", e.Lit, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Parse parses s as a floating point literal of the width of T. A "nan"
// without a sign results in the canonical quiet NaN, "-nan" in the same NaN
// with the sign bit set. Any other NaN must be written as a bit pattern.
func Parse[T constraints.Float](s string) (T, error) {
	var zero T
	bitSize := int(unsafe.Sizeof(zero)) * 8

	if hex, ok := strings.CutPrefix(s, bitsPrefix); ok {
		u, err := strconv.ParseUint(hex, 16, bitSize)
		if err != nil {
			return zero, numError(s, err)
		}
		return fromBits[T](u), nil
	}

	body, neg := s, false
	if body != "" && (body[0] == '+' || body[0] == '-') {
		body, neg = body[1:], body[0] == '-'
	}
	switch strings.ToLower(body) {
	case "inf", "infinity":
		sign := 1
		if neg {
			sign = -1
		}
		return T(math.Inf(sign)), nil

	case "nan":
		var u uint64 = 0x7ff8000000000000
		if bitSize == 32 {
			u = 0x7fc00000
		}
		if neg {
			u |= 1 << (bitSize - 1)
		}
		return fromBits[T](u), nil
	}

	if strings.IndexByte(s, '_') >= 0 {
		return zero, &Error{Lit: s, Err: ErrSyntax}
	}
	v, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return zero, numError(s, err)
	}
	return T(v), nil
}

func numError(lit string, err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
		return &Error{Lit: lit, Err: ErrRange}
	}
	return &Error{Lit: lit, Err: ErrSyntax}
}

func fromBits[T constraints.Float](u uint64) T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.Float32frombits(uint32(u)))
	}
	return T(math.Float64frombits(u))
}

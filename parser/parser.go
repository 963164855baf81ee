// Package parser reads and writes the colon-delimited clock notation
// shared by Time and TimePeriod: "h:m:s" with an optional ".f" suffix.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	tperr "github.com/tpkit/timeperiod/errors"
)

// Numeral defines how colon fields are read
type Numeral int

// Numeral kinds
const (
	// Unsigned fields reject a minus sign with ErrUnsignedOverflow
	Unsigned Numeral = iota
	// Signed fields accept a sign, range checks are up to the caller
	Signed
)

// Reading holds the fields of a parsed clock string
type Reading struct {
	Hours   int64
	Minutes int64
	Seconds int64
	// Fraction keeps the raw text after the dot
	Fraction    string
	HasFraction bool
}

// Parse splits s on ':' into hours, minutes and seconds.
// With fraction set, the seconds field may carry a ".f" suffix.
// Fields are checked left to right and the first failure is returned,
// the field count is checked after that.
func Parse(s string, numeral Numeral, fraction bool) (Reading, error) {
	fields := strings.Split(s, ":")
	last := len(fields) - 1

	var r Reading
	if fraction {
		if parts := strings.Split(fields[last], "."); len(parts) > 1 {
			if len(parts) > 2 {
				return Reading{}, tperr.Formatf("%q has more than one fraction", s)
			}
			fields[last] = parts[0]
			r.Fraction, r.HasFraction = strings.TrimSpace(parts[1]), true
		}
	}

	values := make([]int64, len(fields))
	for i, field := range fields {
		n, err := Number(field, numeral)
		if err != nil {
			return Reading{}, err
		}
		values[i] = n
	}
	if len(values) != 3 {
		return Reading{}, tperr.Formatf("%q has %d fields, want 3", s, len(values))
	}
	if r.HasFraction && r.Fraction == "" {
		return Reading{}, tperr.Formatf("%q has an empty fraction", s)
	}

	r.Hours, r.Minutes, r.Seconds = values[0], values[1], values[2]
	return r, nil
}

// Number reads a single decimal field
func Number(field string, numeral Numeral) (int64, error) {
	field = strings.TrimSpace(field)
	digits, negative := field, false
	if field != "" {
		switch field[0] {
		case '+':
			digits = field[1:]
		case '-':
			digits, negative = field[1:], true
		}
	}
	if !isDigits(digits) {
		return 0, tperr.Formatf("%q is not a number", field)
	}
	if negative && numeral == Unsigned {
		return 0, fmt.Errorf("%w: %q", tperr.ErrUnsignedOverflow, field)
	}
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		// only too many digits can get here
		return 0, tperr.Rangef("%q", field)
	}
	return n, nil
}

// Millis reads a fraction as an integer count of milliseconds,
// "5" is 5 ms. Range checks are up to the caller.
func Millis(fraction string) (int64, error) {
	return Number(fraction, Signed)
}

// Decimal reads a fraction as decimal digits of a second and returns
// milliseconds, ".45" is 450 ms. Digits past milliseconds are out of range.
func Decimal(fraction string) (int64, error) {
	if !isDigits(fraction) {
		if _, err := Number(fraction, Signed); err == nil {
			return 0, tperr.Rangef("signed fraction %q", fraction)
		}
		return 0, tperr.Formatf("%q is not a fraction", fraction)
	}
	if len(fraction) > 3 {
		return 0, tperr.Rangef("fraction %q is finer than milliseconds", fraction)
	}
	n, _ := strconv.ParseInt(fraction, 10, 64)
	for i := len(fraction); i < 3; i++ {
		n *= 10
	}
	return n, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

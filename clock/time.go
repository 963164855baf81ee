package clock

import (
	"cmp"
	"fmt"
	"time"

	tperr "github.com/tpkit/timeperiod/errors"
	"github.com/tpkit/timeperiod/parser"
)

const (
	hoursPerDay      = 24
	minutesPerHour   = 60
	secondsPerMinute = 60
	secondsPerHour   = secondsPerMinute * minutesPerHour
)

// Time is a point within a 24-hour day
type Time struct {
	hours   uint8
	minutes uint8
	seconds uint8
}

// NewTime returns Time for hours, minutes and seconds given from the left,
// omitted fields are 0: NewTime(12) is 12:00:00.
func NewTime(fields ...int) (Time, error) {
	if len(fields) > 3 {
		return Time{}, tperr.Formatf("%d time fields, want at most 3", len(fields))
	}
	var f [3]int
	copy(f[:], fields)
	if f[0] < 0 || f[0] >= hoursPerDay ||
		f[1] < 0 || f[1] >= minutesPerHour ||
		f[2] < 0 || f[2] >= secondsPerMinute {
		return Time{}, fmt.Errorf("%w: %d:%d:%d", tperr.ErrInvalidFields, f[0], f[1], f[2])
	}
	return Time{hours: uint8(f[0]), minutes: uint8(f[1]), seconds: uint8(f[2])}, nil
}

// ParseTime parses "hh:mm:ss", leading zeros are optional.
// A field with a minus sign fails with ErrUnsignedOverflow.
func ParseTime(s string) (Time, error) {
	r, err := parser.Parse(s, parser.Unsigned, false)
	if err != nil {
		return Time{}, err
	}
	if r.Hours >= hoursPerDay || r.Minutes >= minutesPerHour || r.Seconds >= secondsPerMinute {
		return Time{}, tperr.Rangef("time %q", s)
	}
	return Time{hours: uint8(r.Hours), minutes: uint8(r.Minutes), seconds: uint8(r.Seconds)}, nil
}

// MustParseTime is like ParseTime but panics on error
func MustParseTime(s string) Time {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FromStdTime returns the wall-clock reading of t in its own location
func FromStdTime(t time.Time) Time {
	return Time{hours: uint8(t.Hour()), minutes: uint8(t.Minute()), seconds: uint8(t.Second())}
}

// Hours returns the hour, 0..23
func (t Time) Hours() uint8 { return t.hours }

// Minutes returns the minute, 0..59
func (t Time) Minutes() uint8 { return t.minutes }

// Seconds returns the second, 0..59
func (t Time) Seconds() uint8 { return t.seconds }

// String implements Stringer interface
func (t Time) String() string {
	return string(t.appendText(make([]byte, 0, 8)))
}

func (t Time) appendText(dst []byte) []byte {
	return parser.AppendClock(dst, int64(t.hours), int(t.minutes), int(t.seconds))
}

func (t Time) secondOfDay() int64 {
	return int64(t.hours)*secondsPerHour + int64(t.minutes)*secondsPerMinute + int64(t.seconds)
}

// Compare returns -1, 0 or +1 ordering by hours, then minutes, then seconds
func (t Time) Compare(u Time) int {
	return cmp.Or(
		cmp.Compare(t.hours, u.hours),
		cmp.Compare(t.minutes, u.minutes),
		cmp.Compare(t.seconds, u.seconds),
	)
}

// Equal reports whether t and u are the same time of day
func (t Time) Equal(u Time) bool { return t == u }

// Before reports whether t is earlier in the day than u
func (t Time) Before(u Time) bool { return t.Compare(u) < 0 }

// After reports whether t is later in the day than u
func (t Time) After(u Time) bool { return t.Compare(u) > 0 }

// Plus returns t moved forward by p, wrapping past midnight
func (t Time) Plus(p TimePeriod) Time {
	hours := int64(t.hours) + p.Hours()%hoursPerDay
	minutes := int(t.minutes) + p.Minutes()
	seconds := int(t.seconds) + p.Seconds()

	if seconds >= secondsPerMinute {
		seconds -= secondsPerMinute
		minutes++
	}
	if minutes >= minutesPerHour {
		minutes -= minutesPerHour
		hours++
	}
	return Time{hours: uint8(hours % hoursPerDay), minutes: uint8(minutes), seconds: uint8(seconds)}
}

// Minus returns t moved back by p, wrapping before midnight
func (t Time) Minus(p TimePeriod) Time {
	hours := int64(t.hours) - p.Hours()%hoursPerDay
	minutes := int(t.minutes) - p.Minutes()
	seconds := int(t.seconds) - p.Seconds()

	for seconds < 0 {
		seconds += secondsPerMinute
		minutes--
	}
	for minutes < 0 {
		minutes += minutesPerHour
		hours--
	}
	for hours < 0 {
		hours += hoursPerDay
	}
	return Time{hours: uint8(hours), minutes: uint8(minutes), seconds: uint8(seconds)}
}

// Plus returns t moved forward by p
func Plus(t Time, p TimePeriod) Time { return t.Plus(p) }

// Minus returns t moved back by p
func Minus(t Time, p TimePeriod) Time { return t.Minus(p) }

// Compare orders a and b, suitable for slices.SortFunc
func Compare(a, b Time) int { return a.Compare(b) }

// Equal reports whether a and b are the same time of day
func Equal(a, b Time) bool { return a == b }

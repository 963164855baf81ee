// Package subseconds mirrors package clock with millisecond resolution.
//
// Time carries a millisecond field and is written "HH:MM:SS.mmm" where the
// fraction is an integer count of milliseconds ("12:00:00.5" is 5 ms).
// TimePeriod keeps its magnitude in whole milliseconds and is written
// "HHH:MM:SS.fff" where the fraction is decimal (".45" is 450 ms).
// In both notations the fraction may be omitted.
package subseconds

import (
	"cmp"
	"fmt"
	"time"

	tperr "github.com/tpkit/timeperiod/errors"
	"github.com/tpkit/timeperiod/parser"
)

const (
	hoursPerDay        = 24
	minutesPerHour     = 60
	secondsPerMinute   = 60
	millisPerSecond    = 1000
	millisPerMinute    = millisPerSecond * secondsPerMinute
	millisPerHour      = millisPerMinute * minutesPerHour
	maxTimeTextLength  = len("00:00:00.000")
	maxFieldsTimeValue = 4
)

// Time is a point within a 24-hour day with millisecond resolution
type Time struct {
	hours        uint8
	minutes      uint8
	seconds      uint8
	milliseconds uint16
}

// NewTime returns Time for hours, minutes, seconds and milliseconds given
// from the left, omitted fields are 0.
func NewTime(fields ...int) (Time, error) {
	if len(fields) > maxFieldsTimeValue {
		return Time{}, tperr.Formatf("%d time fields, want at most %d", len(fields), maxFieldsTimeValue)
	}
	var f [maxFieldsTimeValue]int
	copy(f[:], fields)
	if f[0] < 0 || f[0] >= hoursPerDay ||
		f[1] < 0 || f[1] >= minutesPerHour ||
		f[2] < 0 || f[2] >= secondsPerMinute ||
		f[3] < 0 || f[3] >= millisPerSecond {
		return Time{}, fmt.Errorf("%w: %d:%d:%d.%d", tperr.ErrInvalidFields, f[0], f[1], f[2], f[3])
	}
	return Time{
		hours:        uint8(f[0]),
		minutes:      uint8(f[1]),
		seconds:      uint8(f[2]),
		milliseconds: uint16(f[3]),
	}, nil
}

// ParseTime parses "hh:mm:ss" or "hh:mm:ss.mmm".
// Colon fields with a minus sign fail with ErrUnsignedOverflow,
// a negative millisecond count fails with ErrRange.
func ParseTime(s string) (Time, error) {
	r, err := parser.Parse(s, parser.Unsigned, true)
	if err != nil {
		return Time{}, err
	}
	var ms int64
	if r.HasFraction {
		if ms, err = parser.Millis(r.Fraction); err != nil {
			return Time{}, err
		}
	}
	if r.Hours >= hoursPerDay || r.Minutes >= minutesPerHour || r.Seconds >= secondsPerMinute ||
		ms < 0 || ms >= millisPerSecond {
		return Time{}, tperr.Rangef("time %q", s)
	}
	return Time{
		hours:        uint8(r.Hours),
		minutes:      uint8(r.Minutes),
		seconds:      uint8(r.Seconds),
		milliseconds: uint16(ms),
	}, nil
}

// MustParseTime is like ParseTime but panics on error
func MustParseTime(s string) Time {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FromStdTime returns the wall-clock reading of t truncated to milliseconds
func FromStdTime(t time.Time) Time {
	return Time{
		hours:        uint8(t.Hour()),
		minutes:      uint8(t.Minute()),
		seconds:      uint8(t.Second()),
		milliseconds: uint16(t.Nanosecond() / int(time.Millisecond)),
	}
}

func (t Time) Hours() uint8         { return t.hours }
func (t Time) Minutes() uint8       { return t.minutes }
func (t Time) Seconds() uint8       { return t.seconds }
func (t Time) Milliseconds() uint16 { return t.milliseconds }

// String implements Stringer interface
func (t Time) String() string {
	return string(t.appendText(make([]byte, 0, maxTimeTextLength)))
}

func (t Time) appendText(dst []byte) []byte {
	dst = parser.AppendClock(dst, int64(t.hours), int(t.minutes), int(t.seconds))
	return parser.AppendMillis(dst, int(t.milliseconds))
}

func (t Time) milliOfDay() int64 {
	return int64(t.hours)*millisPerHour + int64(t.minutes)*millisPerMinute +
		int64(t.seconds)*millisPerSecond + int64(t.milliseconds)
}

// Compare returns -1, 0 or +1 ordering by hours, minutes, seconds, then milliseconds
func (t Time) Compare(u Time) int {
	return cmp.Or(
		cmp.Compare(t.hours, u.hours),
		cmp.Compare(t.minutes, u.minutes),
		cmp.Compare(t.seconds, u.seconds),
		cmp.Compare(t.milliseconds, u.milliseconds),
	)
}

func (t Time) Equal(u Time) bool  { return t == u }
func (t Time) Before(u Time) bool { return t.Compare(u) < 0 }
func (t Time) After(u Time) bool  { return t.Compare(u) > 0 }

// Plus returns t moved forward by p, wrapping past midnight
func (t Time) Plus(p TimePeriod) Time {
	hours := int64(t.hours) + p.Hours()%hoursPerDay
	minutes := int(t.minutes) + p.Minutes()
	seconds := int(t.seconds) + p.Seconds()
	ms := int(t.milliseconds) + p.Milliseconds()

	if ms >= millisPerSecond {
		ms -= millisPerSecond
		seconds++
	}
	if seconds >= secondsPerMinute {
		seconds -= secondsPerMinute
		minutes++
	}
	if minutes >= minutesPerHour {
		minutes -= minutesPerHour
		hours++
	}
	return Time{
		hours:        uint8(hours % hoursPerDay),
		minutes:      uint8(minutes),
		seconds:      uint8(seconds),
		milliseconds: uint16(ms),
	}
}

// Minus returns t moved back by p, wrapping before midnight
func (t Time) Minus(p TimePeriod) Time {
	hours := int64(t.hours) - p.Hours()%hoursPerDay
	minutes := int(t.minutes) - p.Minutes()
	seconds := int(t.seconds) - p.Seconds()
	ms := int(t.milliseconds) - p.Milliseconds()

	for ms < 0 {
		ms += millisPerSecond
		seconds--
	}
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
	return Time{
		hours:        uint8(hours),
		minutes:      uint8(minutes),
		seconds:      uint8(seconds),
		milliseconds: uint16(ms),
	}
}

// Plus returns t moved forward by p
func Plus(t Time, p TimePeriod) Time { return t.Plus(p) }

// Minus returns t moved back by p
func Minus(t Time, p TimePeriod) Time { return t.Minus(p) }

// Compare orders a and b, suitable for slices.SortFunc
func Compare(a, b Time) int { return a.Compare(b) }

// Equal reports whether a and b are the same time of day
func Equal(a, b Time) bool { return a == b }

package clock

import (
	"cmp"
	"math"
	"time"

	tperr "github.com/tpkit/timeperiod/errors"
	"github.com/tpkit/timeperiod/parser"
)

// TimePeriod is a non-negative duration in whole seconds.
// Hours are not limited to a day.
type TimePeriod struct {
	seconds int64
}

// NewTimePeriod returns TimePeriod of the given total seconds
func NewTimePeriod(seconds int64) (TimePeriod, error) {
	if seconds < 0 {
		return TimePeriod{}, tperr.Rangef("negative period %d", seconds)
	}
	return TimePeriod{seconds: seconds}, nil
}

// NewTimePeriodHMS returns TimePeriod of hours, minutes and optional seconds.
// Minutes and seconds must be below 60, hours are unbounded.
func NewTimePeriodHMS(hours, minutes int, seconds ...int) (TimePeriod, error) {
	if len(seconds) > 1 {
		return TimePeriod{}, tperr.Formatf("%d seconds arguments, want at most 1", len(seconds))
	}
	var s int
	if len(seconds) == 1 {
		s = seconds[0]
	}
	return fromHMS(int64(hours), int64(minutes), int64(s))
}

func fromHMS(hours, minutes, seconds int64) (TimePeriod, error) {
	if hours < 0 || minutes < 0 || seconds < 0 ||
		minutes >= minutesPerHour || seconds >= secondsPerMinute {
		return TimePeriod{}, tperr.Rangef("period %d:%d:%d", hours, minutes, seconds)
	}
	if hours > math.MaxInt64/secondsPerHour-1 {
		return TimePeriod{}, tperr.Rangef("period of %d hours", hours)
	}
	return TimePeriod{seconds: hours*secondsPerHour + minutes*secondsPerMinute + seconds}, nil
}

// Between returns the absolute difference of two times of day
func Between(t1, t2 Time) TimePeriod {
	d := t1.secondOfDay() - t2.secondOfDay()
	if d < 0 {
		d = -d
	}
	return TimePeriod{seconds: d}
}

// ParseTimePeriod parses "hh:mm:ss" where hours may have any number of digits
func ParseTimePeriod(s string) (TimePeriod, error) {
	r, err := parser.Parse(s, parser.Signed, false)
	if err != nil {
		return TimePeriod{}, err
	}
	return fromHMS(r.Hours, r.Minutes, r.Seconds)
}

// MustParseTimePeriod is like ParseTimePeriod but panics on error
func MustParseTimePeriod(s string) TimePeriod {
	p, err := ParseTimePeriod(s)
	if err != nil {
		panic(err)
	}
	return p
}

// FromDuration returns TimePeriod of d truncated to seconds
func FromDuration(d time.Duration) (TimePeriod, error) {
	return NewTimePeriod(int64(d / time.Second))
}

// Hours returns the whole hours
func (p TimePeriod) Hours() int64 { return p.seconds / secondsPerHour }

// Minutes returns the minutes past the whole hours, 0..59
func (p TimePeriod) Minutes() int { return int(p.seconds % secondsPerHour / secondsPerMinute) }

// Seconds returns the seconds past the whole minutes, 0..59
func (p TimePeriod) Seconds() int { return int(p.seconds % secondsPerMinute) }

// TotalSeconds returns the magnitude
func (p TimePeriod) TotalSeconds() int64 { return p.seconds }

// Duration converts p to time.Duration
func (p TimePeriod) Duration() time.Duration { return time.Duration(p.seconds) * time.Second }

// IsZero reports whether p is zero-length
func (p TimePeriod) IsZero() bool { return p.seconds == 0 }

// String implements Stringer interface
func (p TimePeriod) String() string {
	return string(p.appendText(make([]byte, 0, 8)))
}

func (p TimePeriod) appendText(dst []byte) []byte {
	return parser.AppendClock(dst, p.Hours(), p.Minutes(), p.Seconds())
}

// Compare returns -1, 0 or +1 ordering by total seconds
func (p TimePeriod) Compare(q TimePeriod) int { return cmp.Compare(p.seconds, q.seconds) }

// Equal reports whether p and q have the same total seconds
func (p TimePeriod) Equal(q TimePeriod) bool { return p.seconds == q.seconds }

// Before reports whether p is shorter than q
func (p TimePeriod) Before(q TimePeriod) bool { return p.seconds < q.seconds }

// After reports whether p is longer than q
func (p TimePeriod) After(q TimePeriod) bool { return p.seconds > q.seconds }

// Plus returns the sum of p and q, fails with ErrRange on overflow
func (p TimePeriod) Plus(q TimePeriod) (TimePeriod, error) {
	if q.seconds > math.MaxInt64-p.seconds {
		return TimePeriod{}, tperr.Rangef("period %v plus %v", p, q)
	}
	return TimePeriod{seconds: p.seconds + q.seconds}, nil
}

// Minus returns p less q, fails with ErrRange if q is longer than p
func (p TimePeriod) Minus(q TimePeriod) (TimePeriod, error) {
	return NewTimePeriod(p.seconds - q.seconds)
}

// Multiply returns p scaled by n, n must not be negative
func (p TimePeriod) Multiply(n int) (TimePeriod, error) {
	if n < 0 {
		return TimePeriod{}, tperr.Rangef("multiplier %d", n)
	}
	if n != 0 && p.seconds > math.MaxInt64/int64(n) {
		return TimePeriod{}, tperr.Rangef("period %v multiplied by %d", p, n)
	}
	return TimePeriod{seconds: p.seconds * int64(n)}, nil
}

// Divide returns p divided by n, truncated to whole seconds
func (p TimePeriod) Divide(n int) (TimePeriod, error) {
	if n == 0 {
		return TimePeriod{}, tperr.ErrDivideByZero
	}
	if n < 0 {
		return TimePeriod{}, tperr.Rangef("divider %d", n)
	}
	return TimePeriod{seconds: p.seconds / int64(n)}, nil
}

// ComparePeriods orders a and b, suitable for slices.SortFunc
func ComparePeriods(a, b TimePeriod) int { return a.Compare(b) }

// Sum returns a plus b
func Sum(a, b TimePeriod) (TimePeriod, error) { return a.Plus(b) }

// Difference returns a minus b
func Difference(a, b TimePeriod) (TimePeriod, error) { return a.Minus(b) }

// Multiply returns p scaled by n
func Multiply(p TimePeriod, n int) (TimePeriod, error) { return p.Multiply(n) }

// Divide returns p divided by n
func Divide(p TimePeriod, n int) (TimePeriod, error) { return p.Divide(n) }

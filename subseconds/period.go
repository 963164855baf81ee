package subseconds

import (
	"cmp"
	"math"
	"time"

	tperr "github.com/tpkit/timeperiod/errors"
	"github.com/tpkit/timeperiod/parser"
)

// TimePeriod is a non-negative duration in whole milliseconds
type TimePeriod struct {
	ms int64
}

// NewTimePeriod returns TimePeriod of the given seconds,
// rounded to the nearest millisecond.
func NewTimePeriod(seconds float64) (TimePeriod, error) {
	ms, err := toMillis(seconds)
	if err != nil {
		return TimePeriod{}, err
	}
	return TimePeriod{ms: ms}, nil
}

func toMillis(seconds float64) (int64, error) {
	if seconds < 0 || math.IsNaN(seconds) {
		return 0, tperr.Rangef("period of %v seconds", seconds)
	}
	ms := math.Round(seconds * millisPerSecond)
	if ms >= math.MaxInt64 {
		return 0, tperr.Rangef("period of %v seconds", seconds)
	}
	return int64(ms), nil
}

// NewTimePeriodHMS returns TimePeriod of hours, minutes and optional seconds
// with a fraction, e.g. NewTimePeriodHMS(24, 24, 24.3) is 24:24:24.300.
func NewTimePeriodHMS(hours, minutes int, seconds ...float64) (TimePeriod, error) {
	if len(seconds) > 1 {
		return TimePeriod{}, tperr.Formatf("%d seconds arguments, want at most 1", len(seconds))
	}
	var ms int64
	if len(seconds) == 1 {
		var err error
		if ms, err = toMillis(seconds[0]); err != nil {
			return TimePeriod{}, err
		}
	}
	return fromFields(int64(hours), int64(minutes), 0, ms)
}

// fromFields sums the fields into milliseconds, ms may carry whole seconds
// as long as the seconds stay below a minute.
func fromFields(hours, minutes, seconds, ms int64) (TimePeriod, error) {
	if hours < 0 || minutes < 0 || seconds < 0 || ms < 0 ||
		minutes >= minutesPerHour || seconds >= secondsPerMinute ||
		seconds*millisPerSecond+ms >= millisPerMinute {
		return TimePeriod{}, tperr.Rangef("period %d:%d:%d.%03d", hours, minutes, seconds, ms)
	}
	if hours > math.MaxInt64/millisPerHour-1 {
		return TimePeriod{}, tperr.Rangef("period of %d hours", hours)
	}
	return TimePeriod{ms: hours*millisPerHour + minutes*millisPerMinute + seconds*millisPerSecond + ms}, nil
}

// Between returns the absolute difference of two times of day
func Between(t1, t2 Time) TimePeriod {
	d := t1.milliOfDay() - t2.milliOfDay()
	if d < 0 {
		d = -d
	}
	return TimePeriod{ms: d}
}

// ParseTimePeriod parses "hh:mm:ss" or "hh:mm:ss.f" with up to three
// fraction digits, hours may have any number of digits.
func ParseTimePeriod(s string) (TimePeriod, error) {
	r, err := parser.Parse(s, parser.Signed, true)
	if err != nil {
		return TimePeriod{}, err
	}
	var ms int64
	if r.HasFraction {
		if ms, err = parser.Decimal(r.Fraction); err != nil {
			return TimePeriod{}, err
		}
	}
	return fromFields(r.Hours, r.Minutes, r.Seconds, ms)
}

// MustParseTimePeriod is like ParseTimePeriod but panics on error
func MustParseTimePeriod(s string) TimePeriod {
	p, err := ParseTimePeriod(s)
	if err != nil {
		panic(err)
	}
	return p
}

// FromDuration returns TimePeriod of d truncated to milliseconds
func FromDuration(d time.Duration) (TimePeriod, error) {
	if d < 0 {
		return TimePeriod{}, tperr.Rangef("negative duration %v", d)
	}
	return TimePeriod{ms: d.Milliseconds()}, nil
}

// Hours returns the whole hours
func (p TimePeriod) Hours() int64 { return p.ms / millisPerHour }

// Minutes returns the minutes past the whole hours, 0..59
func (p TimePeriod) Minutes() int { return int(p.ms % millisPerHour / millisPerMinute) }

// Seconds returns the seconds past the whole minutes, 0..59
func (p TimePeriod) Seconds() int { return int(p.ms % millisPerMinute / millisPerSecond) }

// Milliseconds returns the fraction of a second in milliseconds, 0..999
func (p TimePeriod) Milliseconds() int { return int(p.ms % millisPerSecond) }

// TotalSeconds returns the magnitude in seconds
func (p TimePeriod) TotalSeconds() float64 { return float64(p.ms) / millisPerSecond }

// TotalMilliseconds returns the magnitude in milliseconds
func (p TimePeriod) TotalMilliseconds() int64 { return p.ms }

// Duration converts p to time.Duration
func (p TimePeriod) Duration() time.Duration { return time.Duration(p.ms) * time.Millisecond }

// IsZero reports whether p is zero-length
func (p TimePeriod) IsZero() bool { return p.ms == 0 }

// String implements Stringer interface
func (p TimePeriod) String() string {
	return string(p.appendText(make([]byte, 0, maxTimeTextLength)))
}

func (p TimePeriod) appendText(dst []byte) []byte {
	dst = parser.AppendClock(dst, p.Hours(), p.Minutes(), p.Seconds())
	return parser.AppendMillis(dst, p.Milliseconds())
}

// Compare returns -1, 0 or +1 ordering by magnitude
func (p TimePeriod) Compare(q TimePeriod) int { return cmp.Compare(p.ms, q.ms) }

func (p TimePeriod) Equal(q TimePeriod) bool  { return p.ms == q.ms }
func (p TimePeriod) Before(q TimePeriod) bool { return p.ms < q.ms }
func (p TimePeriod) After(q TimePeriod) bool  { return p.ms > q.ms }

// Plus returns the sum of p and q, fails with ErrRange on overflow
func (p TimePeriod) Plus(q TimePeriod) (TimePeriod, error) {
	if q.ms > math.MaxInt64-p.ms {
		return TimePeriod{}, tperr.Rangef("period %v plus %v", p, q)
	}
	return TimePeriod{ms: p.ms + q.ms}, nil
}

// Minus returns p less q, fails with ErrRange if q is longer than p
func (p TimePeriod) Minus(q TimePeriod) (TimePeriod, error) {
	if q.ms > p.ms {
		return TimePeriod{}, tperr.Rangef("period %v less %v", p, q)
	}
	return TimePeriod{ms: p.ms - q.ms}, nil
}

// Multiply returns p scaled by n, n must not be negative
func (p TimePeriod) Multiply(n int) (TimePeriod, error) {
	if n < 0 {
		return TimePeriod{}, tperr.Rangef("multiplier %d", n)
	}
	if n != 0 && p.ms > math.MaxInt64/int64(n) {
		return TimePeriod{}, tperr.Rangef("period %v multiplied by %d", p, n)
	}
	return TimePeriod{ms: p.ms * int64(n)}, nil
}

// Divide returns p divided by n, truncated to whole milliseconds
func (p TimePeriod) Divide(n int) (TimePeriod, error) {
	if n == 0 {
		return TimePeriod{}, tperr.ErrDivideByZero
	}
	if n < 0 {
		return TimePeriod{}, tperr.Rangef("divider %d", n)
	}
	return TimePeriod{ms: p.ms / int64(n)}, nil
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

// Package clock provides a wall-clock Time that wraps at 24 hours and a
// non-negative TimePeriod with seconds resolution.
//
// Both types are immutable values: every operation returns a new value,
// and both are comparable with ==. Time equality is field-wise, TimePeriod
// equality is equality of the total number of seconds.
//
//	t := clock.MustParseTime("23:59:59")
//	p, _ := clock.NewTimePeriodHMS(0, 0, 1)
//	fmt.Println(t.Plus(p)) // 00:00:00
//
// Construction failures are reported with the sentinel errors of
// github.com/tpkit/timeperiod/errors and never yield a partial value.
// See package subseconds for the millisecond resolution.
package clock

// Package demo prints sample operations of the clock and subseconds types.
package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tpkit/timeperiod/clock"
	"github.com/tpkit/timeperiod/subseconds"
)

// Resolutions of the demo sections
const (
	ResolutionSeconds      = "seconds"
	ResolutionMilliseconds = "milliseconds"
)

// Resolutions returns the known resolutions in the default order
func Resolutions() []string {
	return []string{ResolutionSeconds, ResolutionMilliseconds}
}

// Sample is an extra time and period pair printed after the sections.
// Both are given in millisecond notation, the fraction is optional:
//
//	samples:
//	  - time: "23:59:59.500"
//	    period: "00:00:01"
type Sample struct {
	Time   subseconds.Time       `env:"TIME" yaml:"time"`
	Period subseconds.TimePeriod `env:"PERIOD" yaml:"period"`
}

type ordered[T any] interface {
	fmt.Stringer
	Compare(T) int
}

// printer keeps the first error of writes and constructors
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

func (p *printer) header(title string) {
	p.printf("\n======== %s ========\n", title)
}

// val passes a constructor result to printf
func (p *printer) val(v any, err error) any {
	if p.err == nil && err != nil {
		p.err = err
	}
	return v
}

func compareLines[T ordered[T]](p *printer, a, b T) {
	c := a.Compare(b)
	p.printf("\n%v > %v : %t\n", a, b, c > 0)
	p.printf("%v >= %v : %t\n", a, b, c >= 0)
	p.printf("%v < %v : %t\n", a, b, c < 0)
	p.printf("%v <= %v : %t\n", a, b, c <= 0)
	p.printf("%v == %v : %t\n", a, b, c == 0)
	p.printf("%v != %v : %t\n", a, b, c != 0)
}

// Run writes the sections of the given resolutions in order,
// then the samples if any.
func Run(w io.Writer, resolutions []string, samples []Sample) error {
	ctx := context.Background()
	p := &printer{w: w}
	for _, r := range resolutions {
		slog.DebugContext(ctx, "running demo section", "resolution", r)
		switch r {
		case ResolutionSeconds:
			p.printf("\n\tTIME & TIMEPERIOD, SECONDS\n")
			seconds(p)
		case ResolutionMilliseconds:
			p.printf("\n\tTIME & TIMEPERIOD, MILLISECONDS\n")
			milliseconds(p)
		default:
			return fmt.Errorf("unknown resolution %q", r)
		}
		if p.err != nil {
			slog.ErrorContext(ctx, "demo section failed", "resolution", r, "error", p.err)
			return p.err
		}
	}

	if len(samples) > 0 {
		slog.DebugContext(ctx, "printing samples", "count", len(samples))
		p.header("Samples")
		for _, s := range samples {
			p.printf("%v + %v = %v\n", s.Time, s.Period, s.Time.Plus(s.Period))
			p.printf("%v - %v = %v\n", s.Time, s.Period, s.Time.Minus(s.Period))
		}
	}
	return p.err
}

func seconds(p *printer) {
	p.header("Time")
	p.printf("Constructor one argument (12): %v\n", p.val(clock.NewTime(12)))
	p.printf("Constructor two arguments (23, 59): %v\n", p.val(clock.NewTime(23, 59)))
	p.printf("Constructor three arguments (6, 12, 59): %v\n", p.val(clock.NewTime(6, 12, 59)))
	p.printf("Constructor string (15:05:29): %v\n", p.val(clock.ParseTime("15:05:29")))

	later := clock.MustParseTime("20:00:00")
	earlier := clock.MustParseTime("10:30:00")
	compareLines(p, later, earlier)

	fiveHours := clock.MustParseTimePeriod("05:00:00")
	p.printf("\n%v + %v = %v\n", later, fiveHours, later.Plus(fiveHours))
	p.printf("%v - %v = %v\n", later, fiveHours, later.Minus(fiveHours))

	p.header("TimePeriod")
	p.printf("Constructor one argument (600): %v\n", p.val(clock.NewTimePeriod(600)))
	p.printf("Constructor two arguments (24, 30): %v\n", p.val(clock.NewTimePeriodHMS(24, 30)))
	p.printf("Constructor three arguments (30, 20, 10): %v\n", p.val(clock.NewTimePeriodHMS(30, 20, 10)))
	p.printf("Constructor string (24:24:24): %v\n", p.val(clock.ParseTimePeriod("24:24:24")))
	p.printf("Constructor two times (%v) (%v): %v\n", earlier, later, clock.Between(earlier, later))

	longer := clock.MustParseTimePeriod("24:00:00")
	shorter := clock.MustParseTimePeriod("09:43:20")
	compareLines(p, longer, shorter)

	p.printf("\n%v + %v = %v\n", longer, shorter, p.val(longer.Plus(shorter)))
	p.printf("%v - %v = %v\n", longer, shorter, p.val(longer.Minus(shorter)))
	p.printf("%v * 2 = %v\n", longer, p.val(longer.Multiply(2)))
	p.printf("%v / 2 = %v\n", longer, p.val(longer.Divide(2)))
}

func milliseconds(p *printer) {
	p.header("Time")
	p.printf("Constructor one argument (12): %v\n", p.val(subseconds.NewTime(12)))
	p.printf("Constructor two arguments (23, 59): %v\n", p.val(subseconds.NewTime(23, 59)))
	p.printf("Constructor three arguments (6, 12, 59): %v\n", p.val(subseconds.NewTime(6, 12, 59)))
	p.printf("Constructor four arguments (20, 40, 30, 900): %v\n", p.val(subseconds.NewTime(20, 40, 30, 900)))
	p.printf("Constructor string (15:05:29.300): %v\n", p.val(subseconds.ParseTime("15:05:29.300")))

	later := subseconds.MustParseTime("20:00:00.900")
	earlier := subseconds.MustParseTime("10:30:00.500")
	compareLines(p, later, earlier)

	fiveHours := subseconds.MustParseTimePeriod("05:00:00")
	p.printf("\n%v + %v = %v\n", later, fiveHours, later.Plus(fiveHours))
	p.printf("%v - %v = %v\n", later, fiveHours, later.Minus(fiveHours))

	p.header("TimePeriod")
	p.printf("Constructor one argument (600.300): %v\n", p.val(subseconds.NewTimePeriod(600.300)))
	p.printf("Constructor two arguments (24, 30): %v\n", p.val(subseconds.NewTimePeriodHMS(24, 30)))
	p.printf("Constructor three arguments (30, 20, 10.999): %v\n", p.val(subseconds.NewTimePeriodHMS(30, 20, 10.999)))
	p.printf("Constructor string (24:24:24.024): %v\n", p.val(subseconds.ParseTimePeriod("24:24:24.024")))
	p.printf("Constructor two times (%v) (%v): %v\n", earlier, later, subseconds.Between(earlier, later))

	longer := subseconds.MustParseTimePeriod("24:00:00.200")
	shorter := subseconds.MustParseTimePeriod("09:43:20.999")
	compareLines(p, longer, shorter)

	p.printf("\n%v + %v = %v\n", longer, shorter, p.val(longer.Plus(shorter)))
	p.printf("%v - %v = %v\n", longer, shorter, p.val(longer.Minus(shorter)))
	p.printf("%v * 2 = %v\n", longer, p.val(longer.Multiply(2)))
	p.printf("%v / 2 = %v\n", longer, p.val(longer.Divide(2)))
}

package subseconds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tperr "github.com/tpkit/timeperiod/errors"
)

func TestNewTime(t *testing.T) {
	tests := []struct {
		fields []int
		want   string
	}{
		{[]int{23, 59, 59, 359}, "23:59:59.359"},
		{[]int{23, 0, 59, 1}, "23:00:59.001"},
		{[]int{0, 0, 59, 100}, "00:00:59.100"},
		{[]int{0, 0, 0, 300}, "00:00:00.300"},
		{[]int{0, 59, 0, 999}, "00:59:00.999"},
		{[]int{12, 23, 48, 258}, "12:23:48.258"},
		{[]int{18, 3, 2, 998}, "18:03:02.998"},
		{[]int{22, 21, 0, 0}, "22:21:00.000"},
		{[]int{6, 59, 53, 500}, "06:59:53.500"},
		{[]int{12, 5, 15}, "12:05:15.000"},
		{[]int{22, 59}, "22:59:00.000"},
		{[]int{6}, "06:00:00.000"},
		{nil, "00:00:00.000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := NewTime(tt.fields...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewTimeGetters(t *testing.T) {
	got, err := NewTime(12, 23, 48, 258)
	require.NoError(t, err)
	assert.Equal(t, uint8(12), got.Hours())
	assert.Equal(t, uint8(23), got.Minutes())
	assert.Equal(t, uint8(48), got.Seconds())
	assert.Equal(t, uint16(258), got.Milliseconds())
}

func TestNewTimeInvalid(t *testing.T) {
	tests := [][]int{
		{23, 0, 0, 1000},
		{-1, 23, 23, -1},
		{0, 60, 3, 0},
		{0, 59, 50, -100},
		{0, -1, 40, 0},
		{-2, -1, -10, 999},
		{2, 1, -10, 1},
	}
	for _, fields := range tests {
		got, err := NewTime(fields...)
		assert.ErrorIs(t, err, tperr.ErrFormat, "%v", fields)
		assert.ErrorIs(t, err, tperr.ErrRange, "%v", fields)
		assert.Equal(t, Time{}, got)
	}

	_, err := NewTime(1, 2, 3, 4, 5)
	assert.ErrorIs(t, err, tperr.ErrFormat)
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  [4]int
	}{
		{"00:00:00.000", [4]int{0, 0, 0, 0}},
		{"23:59:59.999", [4]int{23, 59, 59, 999}},
		{"23:59:00.500", [4]int{23, 59, 0, 500}},
		{"23:00:00.001", [4]int{23, 0, 0, 1}},
		{"12:00:00.348", [4]int{12, 0, 0, 348}},
		{"01:05:05.985", [4]int{1, 5, 5, 985}},
		{"12:1:23.999", [4]int{12, 1, 23, 999}},
		{"12:00:00.5", [4]int{12, 0, 0, 5}},
		{"12:00:00", [4]int{12, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			require.NoError(t, err)
			want, err := NewTime(tt.want[:]...)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseTimeInvalid(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{"0:0:0:0", tperr.ErrFormat},
		{"241.10", tperr.ErrFormat},
		{"1:10:12;00", tperr.ErrFormat},
		{"0:10;13", tperr.ErrFormat},
		{"1:59.90:200", tperr.ErrFormat},
		{"59:59:59:59", tperr.ErrFormat},
		{"12:00:00.", tperr.ErrFormat},
		{"12:00:00.1.2", tperr.ErrFormat},
		{"23:00:00.1000", tperr.ErrRange},
		{"24:1:10.1000", tperr.ErrRange},
		{"1:60:10.500", tperr.ErrRange},
		{"1:59:60.0", tperr.ErrRange},
		{"59:59:59.5900", tperr.ErrRange},
		{"59:59:59.-900", tperr.ErrRange},
		{"12:00:00.-1", tperr.ErrRange},
		{"-54:00:00:300", tperr.ErrUnsignedOverflow},
		{"-23:1:10:-300", tperr.ErrUnsignedOverflow},
		{"1:60:-10:-300", tperr.ErrUnsignedOverflow},
		{"-1:-59:-50:-1000", tperr.ErrUnsignedOverflow},
		{"9:-59:59:-1", tperr.ErrUnsignedOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Time{}, got)
		})
	}
	assert.Panics(t, func() { MustParseTime("24:00:00.000") })
}

func TestFromStdTime(t *testing.T) {
	std := time.Date(2020, time.December, 31, 21, 4, 5, 999_999_999, time.UTC)
	assert.Equal(t, "21:04:05.999", FromStdTime(std).String())
}

func TestTimeCompare(t *testing.T) {
	twelve := MustParseTime("12:00:00.000")
	tests := []struct {
		fields []int
		want   int
	}{
		{[]int{0, 0, 0, 0}, -1},
		{[]int{0, 0, 0, 999}, -1},
		{[]int{11, 59, 59, 999}, -1},
		{[]int{0, 0, 59, 302}, -1},
		{[]int{12, 0, 0, 0}, 0},
		{[]int{12}, 0},
		{[]int{12, 0, 0, 1}, 1},
		{[]int{12, 0, 1, 999}, 1},
		{[]int{12, 0, 19, 900}, 1},
		{[]int{22, 23, 0, 459}, 1},
		{[]int{23, 12, 12, 342}, 1},
	}
	for _, tt := range tests {
		tested, err := NewTime(tt.fields...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, tested.Compare(twelve), "%v", tested)
		assert.Equal(t, -tt.want, Compare(twelve, tested), "%v", tested)
		assert.Equal(t, tt.want == 0, tested.Equal(twelve), "%v", tested)
		assert.Equal(t, tt.want == 0, Equal(twelve, tested), "%v", tested)
		assert.Equal(t, tt.want < 0, tested.Before(twelve), "%v", tested)
		assert.Equal(t, tt.want > 0, tested.After(twelve), "%v", tested)
	}
}

func TestTimePlus(t *testing.T) {
	tests := []struct {
		time, period, want string
	}{
		{"12:00:00.000", "01:00:00.000", "13:00:00.000"},
		{"12:00:00.000", "12:00:00.000", "00:00:00.000"},
		{"12:00:00.500", "24:12:12.000", "12:12:12.500"},
		{"12:00:00.000", "72:00:00.000", "12:00:00.000"},
		{"12:00:00.000", "15:59:59.999", "03:59:59.999"},
		{"12:59:59.000", "00:00:2.500", "13:00:01.500"},
		{"15:30:00.251", "02:35:30.249", "18:05:30.500"},
		{"12:00:00.999", "00:00:00.001", "12:00:01.000"},
		{"23:59:59.999", "00:00:00.001", "00:00:00.000"},
	}
	for _, tt := range tests {
		t.Run(tt.time+"+"+tt.period, func(t *testing.T) {
			tm, p := MustParseTime(tt.time), MustParseTimePeriod(tt.period)
			assert.Equal(t, tt.want, tm.Plus(p).String())
			assert.Equal(t, tt.want, Plus(tm, p).String())
		})
	}
}

func TestTimeMinus(t *testing.T) {
	tests := []struct {
		time, period, want string
	}{
		{"12:00:00.500", "01:00:00.500", "11:00:00.000"},
		{"12:00:00.370", "12:00:00.000", "00:00:00.370"},
		{"12:00:00.000", "24:12:12.500", "11:47:47.500"},
		{"12:00:00.000", "72:00:00.000", "12:00:00.000"},
		{"12:00:01.000", "15:59:59.001", "20:00:01.999"},
		{"00:00:01.100", "00:00:02.100", "23:59:59.000"},
		{"15:30:00.999", "02:35:30.500", "12:54:30.499"},
		{"00:00:00.000", "00:00:00.001", "23:59:59.999"},
	}
	for _, tt := range tests {
		t.Run(tt.time+"-"+tt.period, func(t *testing.T) {
			tm, p := MustParseTime(tt.time), MustParseTimePeriod(tt.period)
			assert.Equal(t, tt.want, tm.Minus(p).String())
			assert.Equal(t, tt.want, Minus(tm, p).String())
		})
	}
}

func TestTimePlusMinusInverse(t *testing.T) {
	periods := []TimePeriod{{0}, {1}, {999}, {59_999}, {3_599_999}, {86_400_000}, {90_061_001}}
	for h := 0; h < hoursPerDay; h += 7 {
		for m := 0; m < minutesPerHour; m += 29 {
			for ms := 0; ms < millisPerSecond; ms += 333 {
				tm, err := NewTime(h, m, 59, ms)
				require.NoError(t, err)
				for _, p := range periods {
					assert.Equal(t, tm, tm.Plus(p).Minus(p), "%v +- %v", tm, p)
				}
				parsed, err := ParseTime(tm.String())
				require.NoError(t, err)
				assert.Equal(t, tm, parsed)
			}
		}
	}
}

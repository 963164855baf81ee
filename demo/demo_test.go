package demo

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpkit/timeperiod/logzer"
	"github.com/tpkit/timeperiod/subseconds"
)

func TestRunSeconds(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(&out, []string{ResolutionSeconds}, nil))

	for _, line := range []string{
		"TIME & TIMEPERIOD, SECONDS",
		"Constructor one argument (12): 12:00:00",
		"Constructor two arguments (23, 59): 23:59:00",
		"Constructor three arguments (6, 12, 59): 06:12:59",
		"Constructor string (15:05:29): 15:05:29",
		"20:00:00 > 10:30:00 : true",
		"20:00:00 == 10:30:00 : false",
		"20:00:00 + 05:00:00 = 01:00:00",
		"20:00:00 - 05:00:00 = 15:00:00",
		"Constructor one argument (600): 00:10:00",
		"Constructor two arguments (24, 30): 24:30:00",
		"Constructor three arguments (30, 20, 10): 30:20:10",
		"Constructor two times (10:30:00) (20:00:00): 09:30:00",
		"24:00:00 <= 09:43:20 : false",
		"24:00:00 + 09:43:20 = 33:43:20",
		"24:00:00 - 09:43:20 = 14:16:40",
		"24:00:00 * 2 = 48:00:00",
		"24:00:00 / 2 = 12:00:00",
	} {
		assert.Contains(t, out.String(), line)
	}
	assert.NotContains(t, out.String(), "MILLISECONDS")
}

func TestRunMilliseconds(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(&out, []string{ResolutionMilliseconds}, nil))

	for _, line := range []string{
		"TIME & TIMEPERIOD, MILLISECONDS",
		"Constructor one argument (12): 12:00:00.000",
		"Constructor four arguments (20, 40, 30, 900): 20:40:30.900",
		"Constructor string (15:05:29.300): 15:05:29.300",
		"20:00:00.900 >= 10:30:00.500 : true",
		"20:00:00.900 + 05:00:00.000 = 01:00:00.900",
		"20:00:00.900 - 05:00:00.000 = 15:00:00.900",
		"Constructor one argument (600.300): 00:10:00.300",
		"Constructor three arguments (30, 20, 10.999): 30:20:10.999",
		"Constructor string (24:24:24.024): 24:24:24.024",
		"Constructor two times (10:30:00.500) (20:00:00.900): 09:30:00.400",
		"24:00:00.200 + 09:43:20.999 = 33:43:21.199",
		"24:00:00.200 - 09:43:20.999 = 14:16:39.201",
		"24:00:00.200 * 2 = 48:00:00.400",
		"24:00:00.200 / 2 = 12:00:00.100",
	} {
		assert.Contains(t, out.String(), line)
	}
}

func TestRunOrderAndSamples(t *testing.T) {
	var out bytes.Buffer
	samples := []Sample{{
		Time:   subseconds.MustParseTime("23:59:59.500"),
		Period: subseconds.MustParseTimePeriod("00:00:01"),
	}}
	require.NoError(t, Run(&out, []string{ResolutionMilliseconds, ResolutionSeconds}, samples))

	s := out.String()
	assert.Less(t, strings.Index(s, ", MILLISECONDS"), strings.Index(s, ", SECONDS"))
	assert.Contains(t, s, "======== Samples ========")
	assert.Contains(t, s, "23:59:59.500 + 00:00:01.000 = 00:00:00.500")
	assert.Contains(t, s, "23:59:59.500 - 00:00:01.000 = 23:59:58.500")
}

func TestRunUnknownResolution(t *testing.T) {
	var out bytes.Buffer
	err := Run(&out, []string{"minutes"}, nil)
	assert.EqualError(t, err, `unknown resolution "minutes"`)
	assert.Empty(t, out.String())
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRunWriteError(t *testing.T) {
	err := Run(failWriter{}, []string{ResolutionSeconds}, nil)
	assert.ErrorIs(t, err, errWrite)
}

func TestRunLogging(t *testing.T) {
	var console bytes.Buffer
	logzer.SetLogger(logzer.WithOutput(&console), logzer.WithLevel(zerolog.DebugLevel))
	defer logzer.SetLogger(logzer.WithOutput(os.Stderr))

	require.NoError(t, Run(&bytes.Buffer{}, []string{ResolutionSeconds}, nil))
	assert.Contains(t, console.String(), "running demo section")
	assert.Contains(t, console.String(), "resolution=seconds")

	_ = Run(failWriter{}, []string{ResolutionSeconds}, nil)
	assert.Contains(t, console.String(), "demo section failed")
}

func TestResolutions(t *testing.T) {
	assert.Equal(t, []string{"seconds", "milliseconds"}, Resolutions())
	var out bytes.Buffer
	require.NoError(t, Run(&out, Resolutions(), nil))
	assert.Less(t, strings.Index(out.String(), ", SECONDS"), strings.Index(out.String(), ", MILLISECONDS"))
}

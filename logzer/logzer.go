// Package logzer configures the global zerolog logger used by the demo
// program: console formatting, optional rotated log file, condensing of
// repeated records and a ring of the last error records.
package logzer

import (
	"container/ring"
	"io"
	stdlog "log"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	mu        sync.Mutex
	logFile   io.WriteCloser
	sink      zerolog.LevelWriter = zerolog.MultiLevelWriter(io.Discard)
	errBuffer                     = &LogBuffer{Level: zerolog.ErrorLevel, Size: 10}
)

type settings struct {
	out        io.Writer
	logFile    io.WriteCloser
	level      zerolog.Level
	noColor    bool
	timeFormat string
	condense   time.Duration
	lastErrors int
}

// Option defines logger option type
type Option func(*settings)

// WithOutput sets the console output, stderr by default
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithLogFile duplicates the console output into w
func WithLogFile(w io.WriteCloser) Option {
	return func(s *settings) { s.logFile = w }
}

// WithLevel sets the global level
func WithLevel(lvl zerolog.Level) Option {
	return func(s *settings) { s.level = lvl }
}

// WithColors enables colored console output
func WithColors(b bool) Option {
	return func(s *settings) { s.noColor = !b }
}

// WithTimeFormat sets the console timestamp layout
func WithTimeFormat(layout string) Option {
	return func(s *settings) { s.timeFormat = layout }
}

// WithCondense enables condensing similar records for d, 0 turns it off
func WithCondense(d time.Duration) Option {
	return func(s *settings) { s.condense = d }
}

// WithLastErrors sets count of kept error records
func WithLastErrors(n int) Option {
	return func(s *settings) { s.lastErrors = n }
}

// NewLoggerWriter builds the writer chain for zerolog.New.
// The previous log file is closed if another one is set,
// kept error records survive the rebuild.
func NewLoggerWriter(opts ...Option) zerolog.LevelWriter {
	s := settings{
		out:        os.Stderr,
		level:      zerolog.InfoLevel,
		noColor:    true,
		timeFormat: time.RFC3339,
		lastErrors: 10,
	}
	for _, opt := range opts {
		opt(&s)
	}

	mu.Lock()
	defer mu.Unlock()

	if logFile != nil && logFile != s.logFile {
		_ = logFile.Close()
	}
	logFile = s.logFile
	out := s.out
	if logFile != nil {
		out = zerolog.MultiLevelWriter(s.out, logFile)
	}

	kept := errBuffer.Records()
	errBuffer = &LogBuffer{Level: zerolog.ErrorLevel, Size: s.lastErrors}
	for _, rec := range kept {
		_, _ = errBuffer.WriteLevel(rec.lvl, rec.buf)
	}

	zerolog.SetGlobalLevel(s.level)
	formatter := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    s.noColor,
		TimeFormat: s.timeFormat,
	}
	sink = zerolog.MultiLevelWriter(formatter, errBuffer)
	return &CondenseWriter{
		LevelWriter: sink,
		Condense:    s.condense,
	}
}

// SetLogger sets the global zerolog logger with options,
// the default slog and std loggers are routed into it.
func SetLogger(opts ...Option) {
	/* prevent writes while rebuilding */
	log.Logger = zerolog.Nop()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	w := NewLoggerWriter(opts...)
	log.Logger = zerolog.New(w).
		With().Timestamp().Caller().
		Logger()

	slog.SetDefault(slog.New(&SLogHandler{CallerSkipFrame: 3}))
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)
}

// LastErrors returns kept error records, oldest first
func LastErrors() []LogRecord {
	mu.Lock()
	defer mu.Unlock()
	return errBuffer.Records()
}

// WriteLogBuffer replays buffered records passing the global level
func WriteLogBuffer(lb *LogBuffer) {
	mu.Lock()
	w := sink
	mu.Unlock()

	lvl := zerolog.GlobalLevel()
	for _, rec := range lb.Records() {
		if rec.lvl >= lvl {
			_, _ = w.WriteLevel(rec.lvl, rec.buf)
		}
	}
}

// CondenseWriter drops repeated records of the same level and caller
// for the Condense period and reports the number of dropped ones when
// the period is over.
type CondenseWriter struct {
	zerolog.LevelWriter
	Condense time.Duration

	mu       sync.Mutex
	once     sync.Once
	cache    *cache.Cache
	callerRe *regexp.Regexp
}

// Write implements io.Writer interface
func (w *CondenseWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter interface
func (w *CondenseWriter) WriteLevel(lvl zerolog.Level, p []byte) (int, error) {
	if w.Condense <= 0 {
		return w.LevelWriter.WriteLevel(lvl, p)
	}
	w.once.Do(func() {
		w.cache = cache.New(w.Condense*2, w.Condense/4)
		w.cache.OnEvicted(w.report)
		w.callerRe = regexp.MustCompile(`"` + zerolog.CallerFieldName + `":"([^"]*)"`)
	})

	w.mu.Lock()
	defer w.mu.Unlock()

	key := lvl.String() + "|"
	if m := w.callerRe.FindSubmatch(p); m != nil {
		key += string(m[1])
	}
	/* expired items are kept until the janitor runs, see patrickmn/go-cache#48 */
	w.cache.DeleteExpired()
	if _, found := w.cache.Get(key); found {
		_ = w.cache.Increment(key, 1)
		return len(p), nil
	}
	_ = w.cache.Add(key, uint16(0), w.Condense)
	return w.LevelWriter.WriteLevel(lvl, p)
}

func (w *CondenseWriter) report(key string, v any) {
	n, _ := v.(uint16)
	if n == 0 {
		return
	}
	lvlText, caller, _ := strings.Cut(key, "|")
	lvl, err := zerolog.ParseLevel(lvlText)
	if err != nil {
		lvl = zerolog.NoLevel
	}
	logger := zerolog.New(w.LevelWriter)
	logger.WithLevel(lvl).
		Timestamp().
		Str(zerolog.CallerFieldName, caller).
		Msgf("[condensed %d more entries last %v]", n, w.Condense)
}

// LogBuffer keeps the last Size writes of Level and above
type LogBuffer struct {
	Level zerolog.Level
	Size  int

	mu   sync.Mutex
	once sync.Once
	ring *ring.Ring
}

func (lb *LogBuffer) init() {
	lb.once.Do(func() {
		if lb.Size > 0 {
			lb.ring = ring.New(lb.Size)
		}
	})
}

// Records returns kept writes, oldest first
func (lb *LogBuffer) Records() []LogRecord {
	lb.init()
	lb.mu.Lock()
	defer lb.mu.Unlock()

	records := []LogRecord{}
	lb.ring.Do(func(v any) {
		if rec, ok := v.(LogRecord); ok {
			records = append(records, rec)
		}
	})
	return records
}

// Write implements io.Writer interface
func (lb *LogBuffer) Write(p []byte) (int, error) {
	return lb.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter interface
func (lb *LogBuffer) WriteLevel(lvl zerolog.Level, p []byte) (int, error) {
	lb.init()
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if lb.ring != nil && lvl >= lb.Level && lvl != zerolog.NoLevel {
		/* zerolog reuses p */
		lb.ring.Value = LogRecord{buf: append([]byte(nil), p...), lvl: lvl}
		lb.ring = lb.ring.Next()
	}
	return len(p), nil
}

// LogRecord is a JSON record written by zerolog
type LogRecord struct {
	buf []byte
	lvl zerolog.Level
}

// Level returns the level of the record
func (r LogRecord) Level() zerolog.Level { return r.lvl }

// MarshalJSON implements json.Marshaler interface
func (r LogRecord) MarshalJSON() ([]byte, error) { return r.buf, nil }

package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/tpkit/timeperiod/demo"
	"github.com/tpkit/timeperiod/logzer"
)

var (
	once sync.Once
	cfg  *Config
)

// LogLevel orders the demo log levels from Error to Trace,
// the yaml and env values are the numbers 0..4
type LogLevel int

// Enum levels
const (
	Error LogLevel = iota
	Warn
	Info
	Debug
	Trace
)

func (l LogLevel) String() string {
	if l < Error || l > Trace {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return [...]string{"Error", "Warn", "Info", "Debug", "Trace"}[l]
}

// Demo defines the demo program configuration
// see defaults() for defaults
type Demo struct {
	// Resolutions accepts "seconds" and "milliseconds",
	// sections are printed in the given order
	Resolutions []string `env:"RESOLUTIONS" envSeparator:"," yaml:"resolutions"`
	// Samples are read from yaml or from indexed env vars, for example:
	//    TPD_DEMO_SAMPLES_0_TIME=12:00:00.5
	Samples []demo.Sample `envPrefix:"SAMPLES_" yaml:"samples,omitempty"`

	// LogCondense accepts time duration for condensing similar records
	// if 0 turn off condensing
	LogCondense time.Duration `env:"LOGCONDENSE" yaml:"logCondense"`
	// LogFile accepts file path to log in addition to stderr
	LogFile        string   `env:"LOGFILE" yaml:"logFile"`
	LogFileMaxSize int64    `env:"LOGFILEMAXSIZE" yaml:"logFileMaxSize"`
	LogFileRotate  int      `env:"LOGFILEROTATE" yaml:"logFileRotate"`
	LogLevel       LogLevel `env:"LOGLEVEL" yaml:"logLevel"`
	LogColors      bool     `env:"LOGCOLORS" yaml:"logColors"`
	LogTimeFormat  string   `env:"LOGTIMEFORMAT" yaml:"logTimeFormat"`
}

// Config defines the program configuration
type Config struct {
	Demo Demo `envPrefix:"DEMO_" yaml:"demo"`
}

func defaults() Config {
	return Config{
		Demo: Demo{
			Resolutions:    demo.Resolutions(),
			LogCondense:    0,
			LogFileMaxSize: 1024 * 1024 * 10, // 10MB
			LogFileRotate:  5,
			LogLevel:       Warn,
			LogColors:      false,
			LogTimeFormat:  time.RFC3339,
		},
	}
}

// GetConfig returns the configuration merged from defaults, config file,
// environment and flags, and sets the global logger.
// Problems are logged, the result is never nil.
func GetConfig() *Config {
	once.Do(func() {
		/* buffer the logging while configuring */
		logBuf := &logzer.LogBuffer{
			Level: zerolog.TraceLevel,
			Size:  16,
		}
		log.Logger = zerolog.New(logBuf).
			With().Timestamp().Caller().Logger()
		log.Info().Msgf("Build info: %v", GetBuildInfo())

		applyFlags()
		var err error
		if cfg, err = load(); err != nil {
			log.Err(err).Msg("could not load config")
		}

		/* init logger and flush buffer */
		cfg.initLogger()
		logzer.WriteLogBuffer(logBuf)
	})
	return cfg
}

// load merges defaults, file and env
func load() (*Config, error) {
	c := defaults()
	configPath := c.ConfigPath()

	var errs []error
	if data, err := os.ReadFile(configPath); err != nil {
		log.Warn().Err(err).
			Str("configPath", configPath).
			Msg("could not read config")
	} else {
		/* yaml replaces slices, the defaults keep only if omitted */
		if err := yaml.Unmarshal(data, &c); err != nil {
			errs = append(errs, fmt.Errorf("could not parse config %s: %w", configPath, err))
		}
	}
	if err := applyEnv(&c); err != nil {
		errs = append(errs, fmt.Errorf("could not apply env vars: %w", err))
	}
	if err := c.Validate(); err != nil {
		errs = append(errs, err)
	}
	return &c, errors.Join(errs...)
}

// Validate checks the values the decoders cannot
func (cfg Config) Validate() error {
	var errs []error
	if len(cfg.Demo.Resolutions) == 0 {
		errs = append(errs, errors.New("no resolutions"))
	}
	for _, r := range cfg.Demo.Resolutions {
		if !slices.Contains(demo.Resolutions(), r) {
			errs = append(errs, fmt.Errorf("unknown resolution %q", r))
		}
	}
	if cfg.Demo.LogLevel < Error {
		errs = append(errs, fmt.Errorf("invalid log level %d", cfg.Demo.LogLevel))
	}
	return errors.Join(errs...)
}

// ConfigPath returns the config file path
func (cfg Config) ConfigPath() string {
	configPath := os.Getenv(ConfigEnv)
	if configPath == "" {
		configPath = ConfigName
		if wd, err := os.Getwd(); err == nil {
			configPath = path.Join(wd, ConfigName)
		}
	}
	return configPath
}

func (cfg Config) initLogger() {
	if cfg.Demo.LogLevel > Trace {
		cfg.Demo.LogLevel = Trace
	}
	if cfg.Demo.LogLevel < Error {
		cfg.Demo.LogLevel = Error
	}
	lvl := [...]zerolog.Level{3, 2, 1, 0, -1}[cfg.Demo.LogLevel]
	if lvl <= zerolog.DebugLevel {
		cfg.Demo.LogCondense = 0
	}
	opts := []logzer.Option{
		logzer.WithColors(cfg.Demo.LogColors),
		logzer.WithCondense(cfg.Demo.LogCondense),
		logzer.WithLastErrors(10),
		logzer.WithLevel(lvl),
		logzer.WithTimeFormat(cfg.Demo.LogTimeFormat),
	}
	if cfg.Demo.LogFile != "" {
		opts = append(opts, logzer.WithLogFile(&logzer.LogFile{
			FilePath: cfg.Demo.LogFile,
			MaxSize:  cfg.Demo.LogFileMaxSize,
			Rotate:   cfg.Demo.LogFileRotate,
		}))
	}
	logzer.SetLogger(opts...)
}

package config

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

var (
	// AllowFlags defines processing the cli arguments
	// true by default
	AllowFlags = true
	// EnvPrefix defines name prefix for environment variables
	// with struct-path selector and value, for example:
	//    TPD_DEMO_RESOLUTIONS=milliseconds,seconds
	EnvPrefix = "TPD_"
	// ConfigEnv defines environment variable for config file path, overrides the ConfigName
	ConfigEnv = "TPD_CONFIG"
	// ConfigName defines default filename for look in work directory if ConfigEnv is empty
	ConfigName = "tpd_config.yaml"
)

func applyFlags() {
	if !AllowFlags {
		return
	}
	/* unknown flags are left to the caller, go test passes its own */
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	flags.ParseErrorsAllowlist.UnknownFlags = true
	flags.StringVar(&EnvPrefix, "env-prefix", "TPD_",
		`prefix for environment variables, "TPD_" by default`)
	flags.StringVar(&ConfigEnv, "config-env", "TPD_CONFIG",
		`environment variable for config file path, "TPD_CONFIG" by default`)
	_ = flags.Parse(os.Args[1:])

	ConfigEnv = EnvPrefix + strings.TrimPrefix(strings.TrimPrefix(ConfigEnv, "TPD_"), EnvPrefix)
}

func applyEnv(v ...any) error {
	for i := range v {
		if err := env.ParseWithOptions(v[i], env.Options{Prefix: EnvPrefix}); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/tpkit/timeperiod/config"
	"github.com/tpkit/timeperiod/demo"
)

func main() {
	cfg := config.GetConfig()
	log.Debug().
		Strs("resolutions", cfg.Demo.Resolutions).
		Int("samples", len(cfg.Demo.Samples)).
		Msg("starting demo")

	fmt.Printf("TIME & TIMEPERIOD demo, build %v\n", config.GetBuildInfo())
	if err := demo.Run(os.Stdout, cfg.Demo.Resolutions, cfg.Demo.Samples); err != nil {
		log.Err(err).Msg("demo failed")
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/terminal"
)

func main() {
	tuning := flag.String("config", "", "TOML file overriding the default tuning")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadFile(*tuning); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
			os.Exit(1)
		}
	}
	if *seed == 0 {
		*seed = config.Debug.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	host, err := terminal.NewHost(*seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer host.Close()

	host.Run()
}

package config

import (
	"flag"
	"os"

	"github.com/teenbridge/skillbridge/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory for persisted state
//	-m bool     seed demo data into an empty store
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config file selector.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DataDir, "d", config.DataDir, "data directory for persisted state")
	fs.BoolVar(&config.DemoData, "m", config.DemoData, "seed demo data into an empty store")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

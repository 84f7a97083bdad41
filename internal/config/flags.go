package config

import (
	"flag"
	"os"

	"github.com/uniaodigital/learnhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   data directory (default from Config)
//
// The admin secret deliberately has no flag: secrets on the command line
// leak through process listings, so it is configurable only via file or
// environment. The function filters os.Args to only include the flags it
// knows about, using flagx.FilterArgs, to avoid interference with the JSON
// config stage.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory for persisted documents")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

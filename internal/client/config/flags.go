package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/craftconnect/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend base URL
//	-s string   session store backend: sqlite, postgres, redis or memory
//	-d string   store DSN (SQLite path or PostgreSQL connection string)
//	-l string   log level: debug, info, warn or error
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	fs.StringVar(&cfg.StoreBackend, "s", cfg.StoreBackend, "session store backend (sqlite, postgres, redis, memory)")
	fs.StringVar(&cfg.StoreDSN, "d", cfg.StoreDSN, "session store DSN or SQLite file path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

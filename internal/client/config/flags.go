package config

import (
	"flag"
	"os"
	"time"

	"github.com/reeflog/reeflog/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags:
//
//	-a string   base URL of the backend server
//	-d string   path to the local database file
//	-t int      request timeout in seconds
//
// os.Args is filtered down to the flags handled here so other packages can
// parse their own flags without interference.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	timeoutSec := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*timeoutSec) * time.Second
}

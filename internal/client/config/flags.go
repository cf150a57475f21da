package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/bookarc/internal/flagx"
)

// parseFlags applies the command-line overrides.
//
//	-a string   backend API base URL
//	-r string   identity provider region
//	-id string  identity provider app client id
//	-db string  session database path
//	-l string   log level (debug, info, warn, error)
//
// args is filtered with flagx.FilterArgs first so flags owned by other
// components do not cause parse errors.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-r", "-id", "-db", "-l"})

	fs := flag.NewFlagSet("bookarc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend API base URL")
	fs.StringVar(&cfg.Region, "r", cfg.Region, "identity provider region")
	fs.StringVar(&cfg.IdentityClientID, "id", cfg.IdentityClientID, "identity provider app client id")
	fs.StringVar(&cfg.SessionDBPath, "db", cfg.SessionDBPath, "session database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}

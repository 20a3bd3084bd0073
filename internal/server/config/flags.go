package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/artmarket/internal/flagx"
)

// parseFlags overlays cfg with the flags it knows about; other arguments are
// ignored. Panics on malformed values.
//
//	-a string   HTTP bind address (e.g. ":8020")
//	-d string   PostgreSQL DSN, empty for the in-memory store
//	-o string   allowed CORS origin
//	-p string   password scheme
//	-s bool     seed sample users into an empty store
//	-l string   log level
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-o", "-p", "-s", "-l"})

	fs := flag.NewFlagSet("directory", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrHTTP, "a", cfg.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.CORSOrigin, "o", cfg.CORSOrigin, "allowed CORS origin")
	fs.StringVar(&cfg.PasswordScheme, "p", cfg.PasswordScheme, "password scheme: plain or bcrypt")
	fs.BoolVar(&cfg.SeedUsers, "s", cfg.SeedUsers, "seed sample users")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

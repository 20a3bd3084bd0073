package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/artmarket/internal/flagx"
)

// parseFlags overlays cfg with the flags it knows about; other arguments are
// ignored. Durations are given in whole seconds. Panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-r", "-t", "-i", "-p", "-l"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DirectoryURL, "a", cfg.DirectoryURL, "directory service base URL")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory for the local store")
	fs.BoolVar(&cfg.AllowRepurchase, "r", cfg.AllowRepurchase, "allow buying an already sold artwork")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout in seconds (0 = none)")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval in seconds")
	fs.StringVar(&cfg.PasswordScheme, "p", cfg.PasswordScheme, "password scheme: plain or bcrypt")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
}

package config

import (
	"time"

	"github.com/dmitrijs2005/artmarket/internal/credentials"
)

// Config holds runtime settings for the marketplace client.
type Config struct {
	DirectoryURL        string
	DataDir             string
	AllowRepurchase     bool
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	PasswordScheme      string
	LogLevel            string
}

// LoadDefaults populates c with defaults.
//
// RequestTimeout stays zero: remote calls are unbounded unless configured.
func (c *Config) LoadDefaults() {
	c.DirectoryURL = "http://localhost:8020"
	c.DataDir = "data"
	c.AllowRepurchase = true
	c.RequestTimeout = 0
	c.OnlineCheckInterval = 3 * time.Second
	c.PasswordScheme = credentials.SchemePlain
	c.LogLevel = "warn"
}

// LoadConfig applies defaults, then the JSON file named by -c/-config (if
// any), then command-line flags. args excludes the program name.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

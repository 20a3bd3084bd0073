// Package config handles configuration for the directory service,
// including defaults, JSON overlay, environment and command-line flags.
package config

// Config holds runtime settings for the directory service.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - CORSOrigin: browser origin allowed to call the API; empty allows any.
//   - PasswordScheme: "plain" or "bcrypt", see package credentials.
//   - SeedUsers: load the sample users into an empty store on start.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP string `env:"ENDPOINT_ADDR_HTTP"`
	DatabaseDSN      string `env:"DATABASE_DSN"`
	CORSOrigin       string `env:"CORS_ORIGIN"`
	PasswordScheme   string `env:"PASSWORD_SCHEME"`
	SeedUsers        bool   `env:"SEED_USERS"`
	LogLevel         string `env:"LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8020"
	c.DatabaseDSN = ""
	c.CORSOrigin = "http://localhost:5173"
	c.PasswordScheme = "plain"
	c.SeedUsers = true
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then the optional JSON
// file, then the environment (with an optional .env file) and finally the
// command-line flags in args.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

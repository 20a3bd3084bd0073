package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/artmarket/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Absent fields leave
// the current value alone.
type JsonConfig struct {
	EndpointAddrHTTP *string `json:"endpoint_addr_http"`
	DatabaseDSN      *string `json:"database_dsn"`
	CORSOrigin       *string `json:"cors_origin"`
	PasswordScheme   *string `json:"password_scheme"`
	SeedUsers        *bool   `json:"seed_users"`
	LogLevel         *string `json:"log_level"`
}

// parseJson overlays cfg with the file given by -c/-config. Panics when the
// file cannot be read or decoded.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointAddrHTTP != nil {
		cfg.EndpointAddrHTTP = *jc.EndpointAddrHTTP
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.CORSOrigin != nil {
		cfg.CORSOrigin = *jc.CORSOrigin
	}
	if jc.PasswordScheme != nil {
		cfg.PasswordScheme = *jc.PasswordScheme
	}
	if jc.SeedUsers != nil {
		cfg.SeedUsers = *jc.SeedUsers
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}

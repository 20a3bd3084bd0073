package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/artmarket/internal/flagx"
	"github.com/dmitrijs2005/artmarket/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent fields leave
// the current value alone.
type JsonConfig struct {
	DirectoryURL        *string         `json:"directory_url"`
	DataDir             *string         `json:"data_dir"`
	AllowRepurchase     *bool           `json:"allow_repurchase"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	PasswordScheme      *string         `json:"password_scheme"`
	LogLevel            *string         `json:"log_level"`
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

	if jc.DirectoryURL != nil {
		cfg.DirectoryURL = *jc.DirectoryURL
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.AllowRepurchase != nil {
		cfg.AllowRepurchase = *jc.AllowRepurchase
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.PasswordScheme != nil {
		cfg.PasswordScheme = *jc.PasswordScheme
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}

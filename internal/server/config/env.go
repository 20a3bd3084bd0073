package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/artmarket/internal/flagx"
)

const envPrefix = "DIRECTORY_"

// parseEnv overlays cfg with DIRECTORY_* environment variables. A .env file
// (or the one named by -e/-env) is loaded first without overriding variables
// that are already set. A missing default .env is not an error.
func parseEnv(cfg *Config, args []string) {
	path := flagx.EnvFilePath(args)
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		panic(err)
	}
}

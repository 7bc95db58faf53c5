package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/craftconnect/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv overlays Config with CRAFTCONNECT_* environment variables.
//
// A dotenv file is loaded first: the one named by -e/-env-file, else ./.env
// when it exists. Variables already set in the process win over the file.
// Unset variables leave fields untouched. Panics on a bad file or value.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFile(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}

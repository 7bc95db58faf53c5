package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/craftconnect/internal/flagx"
)

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from -c or -config; without it nothing is loaded.
// Keys missing from the file keep their current values. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		panic(err)
	}
}

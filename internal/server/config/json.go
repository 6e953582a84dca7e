package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/aivanovs/taskkeeper/internal/flagx"
)

// jsonConfig is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
// Zero-valued fields are treated as absent and leave the target untouched,
// so a partial file overrides only what it names.
type jsonConfig struct {
	EndpointAddr                 string `json:"endpoint_addr"`
	DatabaseDSN                  string `json:"database_dsn"`
	SecretKey                    string `json:"secret_key"`
	TokenValidityDurationMinutes int    `json:"token_validity_duration_minutes"`
}

// parseJSON loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. If neither flag is set, nothing
// is loaded. An unreadable or malformed file panics: a config file that was
// asked for but cannot be used is a startup error, not a condition to limp
// past.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	c := &jsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDurationMinutes > 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDurationMinutes) * time.Minute
	}
}

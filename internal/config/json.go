package config

import (
	"encoding/json"
	"os"

	"github.com/uniaodigital/learnhub/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config.
type JsonConfig struct {
	DataDir     string `json:"data_dir"`
	AdminSecret string `json:"admin_secret"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// is given via the -c or -config flags. If no path is given the function
// returns without touching cfg. Read or unmarshal errors panic; there is no
// sensible way to continue with a config file the operator named explicitly.
//
// Empty JSON fields are ignored so a file can override just one setting.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.AdminSecret != "" {
		cfg.AdminSecret = jc.AdminSecret
	}
}

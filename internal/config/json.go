package config

import (
	"encoding/json"
	"os"

	"github.com/teenbridge/skillbridge/internal/flagx"
)

// jsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Pointer fields distinguish "absent" from zero values, so a JSON file
// only overrides the settings it names.
type jsonConfig struct {
	DataDir  *string `json:"data_dir"`
	DemoData *bool   `json:"demo_data"`
}

// parseJSON loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags. If
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics: a config file that was asked
// for but cannot be used is a startup error, not something to fail soft on.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
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

	if c.DataDir != nil {
		config.DataDir = *c.DataDir
	}
	if c.DemoData != nil {
		config.DemoData = *c.DemoData
	}
}

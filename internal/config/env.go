package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config values from the environment. A .env file in the
// working directory is loaded first when present; variables already set in
// the real environment keep their values.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("SKILLBRIDGE_DATA_DIR"); ok && v != "" {
		config.DataDir = v
	}

	if v, ok := os.LookupEnv("SKILLBRIDGE_DEMO_DATA"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.DemoData = b
		}
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	t.Run("data dir from environment", func(t *testing.T) {
		t.Setenv("SKILLBRIDGE_DATA_DIR", "/env/dir")

		cfg := Config{}
		cfg.LoadDefaults()
		parseEnv(&cfg)

		assert.Equal(t, "/env/dir", cfg.DataDir)
	})

	t.Run("demo data from environment", func(t *testing.T) {
		t.Setenv("SKILLBRIDGE_DEMO_DATA", "false")

		cfg := Config{}
		cfg.LoadDefaults()
		parseEnv(&cfg)

		assert.False(t, cfg.DemoData)
	})

	t.Run("unparseable bool keeps default", func(t *testing.T) {
		t.Setenv("SKILLBRIDGE_DEMO_DATA", "maybe")

		cfg := Config{}
		cfg.LoadDefaults()
		parseEnv(&cfg)

		assert.True(t, cfg.DemoData)
	})

	t.Run("empty data dir keeps default", func(t *testing.T) {
		t.Setenv("SKILLBRIDGE_DATA_DIR", "")

		cfg := Config{}
		cfg.LoadDefaults()
		parseEnv(&cfg)

		assert.Equal(t, "bridge-data", cfg.DataDir)
	})
}

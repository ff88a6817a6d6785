// Package config loads runtime configuration for the Skill Bridge CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with optional .env file support (see parseEnv).
//  3. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory for persisted state
//	-m bool     seed demo data into an empty store (use -m=false to disable)
//
// Environment variables
//
//	SKILLBRIDGE_DATA_DIR    data directory
//	SKILLBRIDGE_DEMO_DATA   "true"/"false" demo data switch
//
// # JSON schema
//
//	{
//	  "data_dir": "bridge-data",
//	  "demo_data": true
//	}
package config

// Package config loads configuration structs from environment variables.
//
// Load parses `env` struct tags via caarlos0/env, loading a .env file first
// through godotenv when one exists. Each configuration type is parsed exactly
// once per process; later calls return the cached value, so independent
// components can load the same struct without re-reading the environment.
//
//	type StorageConfig struct {
//	    Driver  string `env:"STORAGE_DRIVER" envDefault:"memory"`
//	    FileDir string `env:"STORAGE_FILE_DIR" envDefault:"./data"`
//	}
//
//	var cfg StorageConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics on failure, for configuration the process cannot start
// without.
package config

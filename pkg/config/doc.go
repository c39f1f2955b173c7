// Package config loads typed configuration from the process environment.
//
// Optional .env files are read with github.com/joho/godotenv and structs are
// populated from `env` tags with github.com/caarlos0/env/v11. Every successfully
// parsed struct type is cached, so later calls to Load for the same type are
// served from memory.
//
//	type Settings struct {
//		DefaultTimezone string `env:"FORMATTER_DEFAULT_TIMEZONE" envDefault:"UTC"`
//		DefaultLocale   string `env:"FORMATTER_DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
//
// LoadEnv reads additional .env files; variables already present in the
// environment are never overridden. ResetCache and ForceReload exist for tests
// and for processes that mutate their environment at runtime.
package config

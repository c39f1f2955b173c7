package main

import (
	"github.com/djedproject/formatter"
	"github.com/djedproject/formatter/pkg/httpserver"
	"github.com/djedproject/formatter/pkg/ratelimiter"
)

// Config is the formatd process configuration.
type Config struct {
	AppEnv          string `env:"APP_ENV" envDefault:"development"`
	ServiceName     string `env:"SERVICE_NAME" envDefault:"formatd"`
	LogLevel        string `env:"LOG_LEVEL"`
	LogFormat       string `env:"LOG_FORMAT"`
	TranslationsDir string `env:"TRANSLATIONS_DIR"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
	Formatter formatter.Settings
}

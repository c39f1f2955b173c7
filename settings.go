package formatter

import (
	"github.com/djedproject/formatter/pkg/config"
)

// Default values applied by Settings.WithDefaults.
const (
	DefaultTimezone = "UTC"
	DefaultLocale   = "en"
)

// Settings holds application-wide formatter defaults.
type Settings struct {
	// DefaultTimezone is used by time formatters when a call names no zone.
	DefaultTimezone string `env:"FORMATTER_DEFAULT_TIMEZONE"`
	// DefaultLocale is used when a request carries no negotiated locale.
	DefaultLocale string `env:"FORMATTER_DEFAULT_LOCALE"`
}

// LoadSettings reads Settings from the environment (and an optional .env file)
// and fills unset fields with defaults.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return Settings{}, err
	}
	return s.WithDefaults(), nil
}

// SetDefaultTimezone sets DefaultTimezone unless it is already set.
func (s *Settings) SetDefaultTimezone(name string) {
	if s.DefaultTimezone == "" {
		s.DefaultTimezone = name
	}
}

// SetDefaultLocale sets DefaultLocale unless it is already set.
func (s *Settings) SetDefaultLocale(locale string) {
	if s.DefaultLocale == "" {
		s.DefaultLocale = locale
	}
}

// WithDefaults returns a copy with empty fields set to DefaultTimezone and
// DefaultLocale.
func (s Settings) WithDefaults() Settings {
	s.SetDefaultTimezone(DefaultTimezone)
	s.SetDefaultLocale(DefaultLocale)
	return s
}

package ratelimiter

// Config holds per-client limits. A zero RPS disables limiting.
type Config struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// Enabled reports whether c limits anything.
func (c Config) Enabled() bool {
	return c.RPS > 0 && c.Burst > 0
}

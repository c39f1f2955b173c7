package httpserver

import "time"

// Config holds listener settings loaded from the environment.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Options converts the non-zero fields of c into server options.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 5)
	if c.Addr != "" {
		opts = append(opts, WithAddr(c.Addr))
	}
	if c.ReadTimeout > 0 {
		opts = append(opts, WithReadTimeout(c.ReadTimeout))
	}
	if c.WriteTimeout > 0 {
		opts = append(opts, WithWriteTimeout(c.WriteTimeout))
	}
	if c.IdleTimeout > 0 {
		opts = append(opts, WithIdleTimeout(c.IdleTimeout))
	}
	if c.ShutdownTimeout > 0 {
		opts = append(opts, WithShutdownTimeout(c.ShutdownTimeout))
	}
	return opts
}

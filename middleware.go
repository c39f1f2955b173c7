package formatter

import (
	"log/slog"
	"net/http"

	"github.com/djedproject/formatter/pkg/i18n"
	"github.com/djedproject/formatter/pkg/logger"
)

// LocaleResolver returns the locale for r, or "" to use the default.
type LocaleResolver func(r *http.Request) string

type middlewareConfig struct {
	settings   Settings
	translator Translator
	logger     *slog.Logger
	resolver   LocaleResolver
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithMiddlewareSettings sets the default locale and timezone.
func WithMiddlewareSettings(s Settings) MiddlewareOption {
	return func(c *middlewareConfig) { c.settings = s }
}

// WithTranslator sets the translator handed to formatters.
func WithTranslator(t Translator) MiddlewareOption {
	return func(c *middlewareConfig) { c.translator = t }
}

// WithMiddlewareLogger sets the logger handed to formatters.
func WithMiddlewareLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLocaleResolver replaces the default resolver, which reads the locale
// stored by i18n.Middleware.
func WithLocaleResolver(fn LocaleResolver) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.resolver = fn
		}
	}
}

func i18nLocale(r *http.Request) string {
	locale, _ := i18n.LocaleFromContext(r.Context())
	return locale
}

// Middleware stores a new Facade over reg in every request context.
//
//	r := chi.NewRouter()
//	r.Use(i18n.Middleware(nil))
//	r.Use(formatter.Middleware(reg, formatter.WithTranslator(tr)))
//
//	// in a handler
//	s, err := formatter.FromContext(r.Context()).String("date", t)
func Middleware(reg *Registry, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		logger:   logger.Discard(),
		resolver: i18nLocale,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.settings = cfg.settings.WithDefaults()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := cfg.resolver(r)
			if locale == "" {
				locale = cfg.settings.DefaultLocale
			}

			req := NewRequest(r.Context(),
				WithRequestLocale(locale),
				WithRequestTimezone(cfg.settings.DefaultTimezone),
				WithRequestTranslator(cfg.translator),
				WithRequestLogger(cfg.logger),
			)
			facade := NewFacade(req, reg)
			ctx := WithContext(r.Context(), facade)
			req.ctx = ctx

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

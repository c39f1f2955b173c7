package i18n

import (
	"context"
	"log/slog"

	"github.com/djedproject/formatter/pkg/logger"
)

type localeContextKey struct{}

// SetLocale stores the locale in the context.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale stored in the context, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if locale, ok := LocaleFromContext(ctx); ok {
		return locale
	}
	return DefaultLanguage
}

// LocaleFromContext returns the locale stored in the context and whether one
// was set.
func LocaleFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	locale, ok := ctx.Value(localeContextKey{}).(string)
	return locale, ok && locale != ""
}

// LoggerExtractor returns a logger.ContextExtractor that adds the request
// locale to log records.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		locale, ok := LocaleFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.Locale(locale), true
	}
}

// Package logger builds *slog.Logger instances shared by the formatter
// packages and the formatd service.
//
// New takes functional options selecting the output format (text or JSON),
// the level, static attributes and ContextExtractor callbacks. Extractors run
// for every record through LogHandlerDecorator, which is how request-scoped
// values such as the negotiated locale end up in log lines.
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "formatd"),
//		logger.WithLevel(logger.ParseLevel("debug")),
//		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			lang, ok := i18n.LocaleFromContext(ctx)
//			return logger.Locale(lang), ok
//		}),
//	)
//
// Attribute helpers (Component, Formatter, Locale, Timezone, Error, ...) keep
// key names consistent. Helpers for optional values return an empty Attr, which
// slog drops, so callers need no nil checks:
//
//	log.Warn("unknown timezone", logger.Timezone(name), logger.Error(err))
//
// Library code never logs to stdout by default: OrDiscard substitutes a
// discarding logger when the caller passes nil.
package logger

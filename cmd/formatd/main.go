// Command formatd serves the built-in formatters over HTTP.
//
//	GET /formatters
//	GET /format/{name}?value=2011-02-06T10:35:45Z&format=full&locale=es&tz=Europe/Madrid
//	GET /healthz
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/djedproject/formatter"
	"github.com/djedproject/formatter/builtin"
	"github.com/djedproject/formatter/pkg/config"
	"github.com/djedproject/formatter/pkg/httpserver"
	"github.com/djedproject/formatter/pkg/i18n"
	"github.com/djedproject/formatter/pkg/locale"
	"github.com/djedproject/formatter/pkg/logger"
	"github.com/djedproject/formatter/pkg/ratelimiter"
	"github.com/djedproject/formatter/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("formatd failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	cfg.Formatter = cfg.Formatter.WithDefaults()

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	tr, err := newTranslator(ctx, cfg, log)
	if err != nil {
		return err
	}

	c := formatter.NewConfigurator(
		formatter.WithSettings(cfg.Formatter),
		formatter.WithLogger(log),
	)
	c.Include("builtin", builtin.Include)
	reg, err := c.Commit()
	if err != nil {
		return err
	}

	app := &app{
		registry:   reg,
		settings:   *c.Settings(),
		translator: tr,
		logger:     log,
	}
	if cfg.RateLimit.Enabled() {
		app.limiter = ratelimiter.NewStore(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go app.limiter.RunJanitor(ctx)
	}

	srv := httpserver.New(append(cfg.HTTP.Options(), httpserver.WithLogger(log))...)
	return srv.Run(ctx, app.routes())
}

// newLogger starts from the APP_ENV preset; LOG_LEVEL and LOG_FORMAT
// override it when set.
func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			i18n.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	switch f := logger.Format(cfg.LogFormat); f {
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...)
}

// newTranslator layers TRANSLATIONS_DIR, when set, over the bundled messages.
func newTranslator(ctx context.Context, cfg Config, log *slog.Logger) (*i18n.Translator, error) {
	adapter := i18n.MergeAdapter{builtin.TranslationsAdapter()}
	if cfg.TranslationsDir != "" {
		adapter = append(adapter, i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), cfg.TranslationsDir))
	}
	return i18n.NewTranslator(ctx, adapter,
		i18n.WithDefaultLanguage(locale.Default),
		i18n.WithPluralRule(locale.PluralCategory),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(cfg.AppEnv == logger.EnvDevelopment),
	)
}

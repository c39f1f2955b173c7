package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/djedproject/formatter"
	"github.com/djedproject/formatter/pkg/httpserver"
	"github.com/djedproject/formatter/pkg/i18n"
	"github.com/djedproject/formatter/pkg/locale"
	"github.com/djedproject/formatter/pkg/ratelimiter"
	"github.com/djedproject/formatter/pkg/requestid"
	"github.com/djedproject/formatter/pkg/response"
)

type app struct {
	registry   *formatter.Registry
	settings   formatter.Settings
	translator formatter.Translator
	logger     *slog.Logger
	limiter    *ratelimiter.Store
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	if a.limiter != nil {
		r.Use(ratelimiter.Middleware(a.limiter, ratelimiter.RemoteIP))
	}
	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(
		i18n.WithSupportedLanguages(locale.Supported()...),
	)))
	r.Use(formatter.Middleware(a.registry,
		formatter.WithMiddlewareSettings(a.settings),
		formatter.WithTranslator(a.translator),
		formatter.WithMiddlewareLogger(a.logger),
	))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		_ = response.Error(w, response.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		_ = response.Error(w, response.ErrMethodNotAllowed)
	})

	r.Get("/healthz", httpserver.HealthHandler(a.logger))
	r.Method(http.MethodGet, "/formatters", formatter.IntrospectHandler(a.registry))
	r.Get("/format/{name}", a.format)
	return r
}

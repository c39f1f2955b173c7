package formatter

import (
	"context"
	"log/slog"

	"github.com/djedproject/formatter/pkg/logger"
)

// Translator looks up translated messages. *i18n.Translator implements it.
type Translator interface {
	T(lang, key string, args ...string) string
	N(lang, key string, n int, args ...string) string
	Td(lang, key, defaultValue string, args ...string) string
}

// Request is the per-request state formatters receive.
type Request struct {
	// Locale is the negotiated locale, e.g. "en" or "es-MX".
	Locale string
	// Timezone is the default IANA zone for time formatters.
	Timezone string
	// Translator may be nil; formatters then use their own messages.
	Translator Translator
	Logger     *slog.Logger

	ctx context.Context
}

// RequestOption configures a Request.
type RequestOption func(*Request)

func WithRequestLocale(locale string) RequestOption {
	return func(r *Request) { r.Locale = locale }
}

func WithRequestTimezone(name string) RequestOption {
	return func(r *Request) { r.Timezone = name }
}

func WithRequestTranslator(t Translator) RequestOption {
	return func(r *Request) { r.Translator = t }
}

func WithRequestLogger(l *slog.Logger) RequestOption {
	return func(r *Request) { r.Logger = l }
}

// NewRequest returns a Request bound to ctx. Locale and Timezone default to
// DefaultLocale and DefaultTimezone.
func NewRequest(ctx context.Context, opts ...RequestOption) *Request {
	if ctx == nil {
		ctx = context.Background()
	}
	r := &Request{ctx: ctx}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.Locale == "" {
		r.Locale = DefaultLocale
	}
	if r.Timezone == "" {
		r.Timezone = DefaultTimezone
	}
	r.Logger = logger.OrDiscard(r.Logger)
	return r
}

// Context returns the context the request was created with.
func (r *Request) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// WithLocale returns a shallow copy using locale.
func (r *Request) WithLocale(locale string) *Request {
	cp := *r
	cp.Locale = locale
	return &cp
}

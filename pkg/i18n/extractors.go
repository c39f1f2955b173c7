package i18n

import (
	"net/http"
	"strings"
)

// ExtractorConfig holds the sources checked by DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	HeaderName     string
	SupportedLangs []string
}

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie holding the language preference.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter holding the language.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithHeaderName sets the non-standard header holding the language.
func WithHeaderName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.HeaderName = name
		}
	}
}

// WithSupportedLanguages restricts extracted languages to langs.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order, the "lang" cookie, the "lang" query
// parameter, the "Language" header and the Accept-Language header. When
// supported languages are configured, candidates outside that set are skipped
// and regional codes fall back to their base language.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
		HeaderName:     "Language",
	}
	for _, opt := range opts {
		opt(config)
	}

	supported := make([]string, len(config.SupportedLangs))
	for i, lang := range config.SupportedLangs {
		supported[i] = normalizeLang(lang)
	}

	validate := func(lang string) string {
		lang = normalizeLang(lang)
		if lang == "" || len(supported) == 0 {
			return lang
		}
		if contains(supported, lang) {
			return lang
		}
		if base, _, found := strings.Cut(lang, "-"); found && contains(supported, base) {
			return base
		}
		return ""
	}

	return func(r *http.Request) string {
		if cookie, err := r.Cookie(config.CookieName); err == nil {
			if lang := validate(cookie.Value); lang != "" {
				return lang
			}
		}

		if lang := validate(r.URL.Query().Get(config.QueryParamName)); lang != "" {
			return lang
		}

		if lang := validate(r.Header.Get(config.HeaderName)); lang != "" {
			return lang
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if len(supported) > 0 {
			return ParseAcceptLanguage(header, supported, "")
		}
		if tags := acceptedTags(header); len(tags) > 0 {
			return normalizeLang(tags[0].String())
		}
		return ""
	}
}

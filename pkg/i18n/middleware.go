package i18n

import (
	"net/http"
)

// LangExtractor returns the language requested by r, or "" when none is found.
type LangExtractor func(r *http.Request) string

// Middleware stores the request language in the context. A nil extractor
// means DefaultLangExtractor(). When the extractor finds nothing the
// DefaultLanguage is stored.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

// Package i18n provides the translation service consumed by formatters: message
// lookup with named placeholders, count-aware pluralisation and request locale
// propagation for net/http.
//
// Translations are nested maps keyed by language code. They can be loaded from
// an in-memory map, a single file, a directory or any fs.FS (typically an
// embed.FS) by choosing a TranslationAdapter. JSON and YAML files are supported
// out of the box.
//
// # Usage
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), translationsFS, "translations")
//
//	translator, err := i18n.NewTranslator(ctx, adapter,
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithPluralRule(locale.PluralCategory),
//	)
//	if err != nil {
//		return err
//	}
//
//	translator.T("en", "greeting", "name", "John")     // "Hello, John!"
//	translator.N("ru", "timedelta.full.hour", 3)       // "3 часа"
//
// # Language fallback
//
// Lookups walk a fallback chain: the requested language ("es-mx"), its base
// language ("es"), then the translator's default language. The first language
// holding the key wins.
//
// # Pluralisation
//
// N selects one of the plural forms stored under a key ("zero", "one", "two",
// "few", "many", "other"). The form is chosen by a PluralRule; the default rule
// only knows "one" and "other", WithPluralRule plugs in CLDR-accurate rules.
// An explicit "zero" form always wins for n == 0.
//
// # HTTP Middleware
//
// Middleware extracts the request language (cookie, query parameter, Language
// and Accept-Language headers by default) and stores it in the request context:
//
//	handler = i18n.Middleware(i18n.DefaultLangExtractor(
//		i18n.WithSupportedLanguages("en", "es"),
//	))(handler)
//
//	lang := i18n.GetLocale(r.Context())
package i18n

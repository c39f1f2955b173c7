// Package locale bridges locale names used by the rest of the module to CLDR
// locale data.
//
// Locale names arrive in many shapes: "en", "en-US", "en_us", "pt-BR" or an
// Accept-Language fragment. Resolve normalises them with golang.org/x/text/language
// and matches them against the set of locales for which CLDR data is compiled in
// (github.com/go-playground/locales). Unknown locales fall back to English.
//
// The package also exposes CLDR cardinal plural categories and a small timezone
// loader that accepts the "utc" alias used by configuration files.
//
// # Usage
//
//	tr, code := locale.Resolve("es_MX")
//	// code == "es"
//	fmt.Println(tr.FmtDateFull(time.Now()))
//
//	locale.PluralCategory("ru", 3) // "few"
//
//	loc, err := locale.LoadTimezone("US/Central")
//	if errors.Is(err, locale.ErrUnknownTimezone) {
//		// fallback
//	}
package locale

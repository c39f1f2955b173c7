package locale

import (
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/ru"
	"golang.org/x/text/language"
)

// Default is the locale used when a name cannot be matched.
const Default = "en"

type entry struct {
	code       string
	tag        language.Tag
	translator locales.Translator
}

// The first entry is the matcher's fallback.
var (
	entries = []entry{
		{code: "en", tag: language.English, translator: en.New()},
		{code: "es", tag: language.Spanish, translator: es.New()},
		{code: "fr", tag: language.French, translator: fr.New()},
		{code: "de", tag: language.German, translator: de.New()},
		{code: "ru", tag: language.Russian, translator: ru.New()},
	}
	matcher = newMatcher()
)

func newMatcher() language.Matcher {
	tags := make([]language.Tag, len(entries))
	for i, e := range entries {
		tags[i] = e.tag
	}
	return language.NewMatcher(tags)
}

// Supported returns the codes of locales with compiled-in CLDR data.
func Supported() []string {
	codes := make([]string, len(entries))
	for i, e := range entries {
		codes[i] = e.code
	}
	return codes
}

// Normalize converts a locale name into a BCP 47 tag string.
// Underscores are accepted as separators. Invalid names yield an empty string.
func Normalize(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "_", "-"))
	if name == "" {
		return ""
	}
	tag, err := language.Parse(name)
	if err != nil {
		return ""
	}
	return tag.String()
}

// Resolve returns the CLDR translator best matching name along with the
// supported locale code it resolved to. Empty, invalid or unsupported names
// resolve to Default.
func Resolve(name string) (locales.Translator, string) {
	e := lookup(name)
	return e.translator, e.code
}

// Code returns the supported locale code name resolves to.
func Code(name string) string {
	return lookup(name).code
}

func lookup(name string) entry {
	normalized := Normalize(name)
	if normalized == "" {
		return entries[0]
	}
	_, idx, conf := matcher.Match(language.Make(normalized))
	if conf == language.No || idx < 0 || idx >= len(entries) {
		return entries[0]
	}
	return entries[idx]
}

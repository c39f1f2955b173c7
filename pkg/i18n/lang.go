package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is detected.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// maxLangCodeLength is the longest language code accepted from a request.
const maxLangCodeLength = 35

// ParseAcceptLanguage returns the supported language best matching an
// Accept-Language header, or defaultLang when nothing matches. Exact tags win
// over base language matches regardless of their position in the header.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	supported := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		supported[i] = normalizeLang(lang)
	}

	tags := acceptedTags(header)

	for _, tag := range tags {
		if code := normalizeLang(tag.String()); contains(supported, code) {
			return code
		}
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		if code := base.String(); contains(supported, code) {
			return code
		}
	}
	return defaultLang
}

// acceptedTags parses an Accept-Language header into tags ordered by quality.
// Malformed headers yield the entries parsed before the error.
func acceptedTags(header string) []language.Tag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	return tags
}

// normalizeLang lowercases a language code and uses "-" as the separator.
func normalizeLang(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}
	return strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

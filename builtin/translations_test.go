package builtin_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djedproject/formatter/builtin"
	"github.com/djedproject/formatter/pkg/locale"
)

var pluralForms = map[string]bool{"zero": true, "one": true, "two": true, "few": true, "many": true, "other": true}

// messageKeys lists dotted keys of messages, treating maps of plural forms as
// a single message.
func messageKeys(prefix string, tree map[string]any, into map[string]bool) {
	for key, val := range tree {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		sub, ok := val.(map[string]any)
		if !ok || isPlural(sub) {
			into[path] = true
			continue
		}
		messageKeys(path, sub, into)
	}
}

func isPlural(m map[string]any) bool {
	for key := range m {
		if !pluralForms[key] {
			return false
		}
	}
	return len(m) > 0
}

func TestTranslationsCoverEveryLocale(t *testing.T) {
	t.Parallel()

	data, err := builtin.TranslationsAdapter().Load(context.Background())
	require.NoError(t, err)

	langs := make([]string, 0, len(data))
	for lang := range data {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	supported := locale.Supported()
	sort.Strings(supported)
	assert.Equal(t, supported, langs)

	want := map[string]bool{}
	messageKeys("", data["en"], want)
	require.NotEmpty(t, want)

	for _, lang := range langs {
		got := map[string]bool{}
		messageKeys("", data[lang], got)
		assert.Equal(t, want, got, "keys of %s", lang)
	}
}

func TestTranslations(t *testing.T) {
	t.Parallel()

	tr, err := builtin.Translations(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"de", "en", "es", "fr", "ru"}, tr.SupportedLanguages())
	assert.Equal(t, "2 недели", tr.N("ru", "timedelta.medium.week", 2))
	assert.Equal(t, "11 недель", tr.N("ru", "timedelta.medium.week", 11))
	assert.Equal(t, "in 3 days", tr.T("en", "timedelta.direction.future", "value", "3 days"))
}

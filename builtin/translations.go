package builtin

import (
	"context"
	"embed"
	"sync"

	"github.com/djedproject/formatter/pkg/i18n"
	"github.com/djedproject/formatter/pkg/locale"
)

//go:embed translations/*.yaml
var translationsFS embed.FS

// TranslationsAdapter returns an adapter over the bundled translations.
// Merge it with application translations to override individual messages:
//
//	adapter := i18n.MergeAdapter{builtin.TranslationsAdapter(), appAdapter}
func TranslationsAdapter() i18n.TranslationAdapter {
	return i18n.NewFSAdapter(i18n.NewYAMLParser(), translationsFS, "translations")
}

// Translations returns a translator over the bundled translations using CLDR
// plural rules.
func Translations(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	opts = append([]i18n.Option{
		i18n.WithDefaultLanguage(locale.Default),
		i18n.WithPluralRule(locale.PluralCategory),
	}, opts...)
	return i18n.NewTranslator(ctx, TranslationsAdapter(), opts...)
}

var bundled = sync.OnceValues(func() (*i18n.Translator, error) {
	return Translations(context.Background())
})

package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// PluralRule returns the plural category ("zero", "one", "two", "few", "many"
// or "other") of n in lang.
type PluralRule func(lang string, n int) string

// DefaultPluralRule distinguishes "one" from "other" only.
func DefaultPluralRule(_ string, n int) string {
	if n == 1 || n == -1 {
		return "one"
	}
	return "other"
}

// Translator looks up translations loaded by a TranslationAdapter.
// It is safe for concurrent use.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	adapter        TranslationAdapter
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	pluralRule     PluralRule
	logger         *slog.Logger
}

// NewTranslator loads translations from adapter and returns a ready translator.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		adapter:       adapter,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		pluralRule:    DefaultPluralRule,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches translations from the adapter again and swaps them in.
func (t *Translator) Reload(ctx context.Context) error {
	loaded, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	translations := make(map[string]map[string]any, len(loaded))
	for lang, messages := range loaded {
		code := normalizeLang(lang)
		if code == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslation)
		}
		if messages == nil {
			return fmt.Errorf("%w: nil translations for language %q", ErrInvalidTranslation, lang)
		}
		translations[code] = messages
	}
	if len(translations) == 0 {
		t.logger.WarnContext(ctx, "no translations provided")
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", "languages", t.SupportedLanguages())
	return nil
}

// DefaultLanguage returns the translator's default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the sorted language codes with translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether key exists for lang or any of its fallbacks.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, _, ok := t.find(lang, key)
	return ok
}

// HasLocalTranslation reports whether key exists for lang or its base
// language, ignoring the default language.
func (t *Translator) HasLocalTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, code := range localChain(lang) {
		if messages, ok := t.translations[code]; ok {
			if _, ok := lookup(messages, key); ok {
				return true
			}
		}
	}
	return false
}

// T translates key for lang, substituting "%{name}" placeholders from args
// given as name, value pairs.
//
//	// "welcome": "Hello, %{name}!"
//	t.T("en", "welcome", "name", "John") // "Hello, John!"
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if msg, ok := t.message(lang, key); ok {
		return substitute(msg, args)
	}
	t.logMissing(lang, key)
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td translates key for lang and renders defaultValue when it is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if msg, ok := t.message(lang, key); ok {
		return substitute(msg, args)
	}
	t.logMissing(lang, key)
	return substitute(defaultValue, args)
}

// N translates the plural form of key matching n. The "count" placeholder is
// filled with n unless args provide it.
//
//	// "items": {"one": "%{count} item", "other": "%{count} items"}
//	t.N("en", "items", 5) // "5 items"
func (t *Translator) N(lang, key string, n int, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !hasArg(args, "count") {
		args = append(args[:len(args):len(args)], "count", strconv.Itoa(n))
	}

	for _, chain := range t.chain(lang) {
		forms := make([]string, 0, 3)
		if n == 0 {
			forms = append(forms, "zero")
		}
		forms = append(forms, t.pluralRule(chain, n), "other")
		for _, form := range forms {
			if msg, ok := t.lookupString(chain, key+"."+form); ok {
				return substitute(msg, args)
			}
		}
		if msg, ok := t.lookupString(chain, key); ok {
			return substitute(msg, args)
		}
	}

	t.logMissing(lang, key)
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

func (t *Translator) message(lang, key string) (string, bool) {
	for _, chain := range t.chain(lang) {
		if msg, ok := t.lookupString(chain, key); ok {
			return msg, true
		}
	}
	return "", false
}

func (t *Translator) find(lang, key string) (string, any, bool) {
	for _, chain := range t.chain(lang) {
		if messages, ok := t.translations[chain]; ok {
			if val, ok := lookup(messages, key); ok {
				return chain, val, true
			}
		}
	}
	return "", nil, false
}

func (t *Translator) lookupString(lang, key string) (string, bool) {
	messages, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := lookup(messages, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// chain returns lang, its base language and the default language, deduplicated.
func (t *Translator) chain(lang string) []string {
	chain := localChain(lang)
	if !slices.Contains(chain, t.defaultLang) {
		chain = append(chain, t.defaultLang)
	}
	return chain
}

// localChain returns lang and its base language.
func localChain(lang string) []string {
	lang = normalizeLang(lang)
	if lang == "" {
		return nil
	}
	chain := []string{lang}
	if base, _, found := strings.Cut(lang, "-"); found && base != "" && base != lang {
		chain = append(chain, base)
	}
	return chain
}

func (t *Translator) logMissing(lang, key string) {
	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
}

// lookup walks a nested map using a dot separated key.
func lookup(m map[string]any, key string) (any, bool) {
	var current any = m
	for part := range strings.SplitSeq(key, ".") {
		switch node := current.(type) {
		case map[string]any:
			val, ok := node[part]
			if !ok {
				return nil, false
			}
			current = val
		case map[any]any:
			val, ok := node[part]
			if !ok {
				return nil, false
			}
			current = val
		default:
			return nil, false
		}
	}
	return current, true
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces "%{name}" placeholders with values from name, value
// pairs. Unknown placeholders are kept; a trailing unpaired arg is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func hasArg(args []string, name string) bool {
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == name {
			return true
		}
	}
	return false
}

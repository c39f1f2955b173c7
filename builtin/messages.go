package builtin

import (
	"github.com/djedproject/formatter"
	"github.com/djedproject/formatter/pkg/logger"
)

// messages looks up a key in the request translator first and in the bundled
// translations when the request translator lacks it.
type messages struct {
	req  *formatter.Request
	lang string
}

// localTranslator is implemented by translators that can tell a translation
// in the requested language apart from a default-language fallback.
type localTranslator interface {
	HasLocalTranslation(lang, key string) bool
}

func newMessages(req *formatter.Request, lang string) messages {
	return messages{req: req, lang: lang}
}

func (m messages) t(key string, args ...string) string {
	if tr := m.req.Translator; tr != nil && m.preferRequest(tr, key) {
		if s := tr.T(m.lang, key, args...); s != "" && s != key {
			return s
		}
	}
	tr, err := bundled()
	if err != nil {
		m.req.Logger.Error("bundled translations unavailable", logger.Error(err))
		return key
	}
	return tr.T(m.lang, key, args...)
}

func (m messages) n(key string, n int, args ...string) string {
	if tr := m.req.Translator; tr != nil && m.preferRequest(tr, key) {
		if s := tr.N(m.lang, key, n, args...); s != "" && s != key {
			return s
		}
	}
	tr, err := bundled()
	if err != nil {
		m.req.Logger.Error("bundled translations unavailable", logger.Error(err))
		return key
	}
	return tr.N(m.lang, key, n, args...)
}

// preferRequest reports whether tr should answer key. A default-language
// fallback in tr loses to a bundled translation in the requested language.
func (m messages) preferRequest(tr formatter.Translator, key string) bool {
	lt, ok := tr.(localTranslator)
	if !ok || lt.HasLocalTranslation(m.lang, key) {
		return true
	}
	b, err := bundled()
	if err != nil {
		return true
	}
	return !b.HasLocalTranslation(m.lang, key)
}

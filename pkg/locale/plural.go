package locale

import (
	"math"

	"github.com/go-playground/locales"
)

// Plural category names as used in translation keys.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// PluralCategory returns the CLDR cardinal plural category of n in lang.
// Its signature matches i18n.PluralRule.
func PluralCategory(lang string, n int) string {
	tr, _ := Resolve(lang)
	switch tr.CardinalPluralRule(math.Abs(float64(n)), 0) {
	case locales.PluralRuleZero:
		return PluralZero
	case locales.PluralRuleOne:
		return PluralOne
	case locales.PluralRuleTwo:
		return PluralTwo
	case locales.PluralRuleFew:
		return PluralFew
	case locales.PluralRuleMany:
		return PluralMany
	default:
		return PluralOther
	}
}

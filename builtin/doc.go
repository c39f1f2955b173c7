// Package builtin provides the standard formatters: date, time, datetime,
// timedelta and size.
//
// Calendar data (month and day names, date and time patterns, plural rules)
// comes from the CLDR tables of github.com/go-playground/locales for en, es,
// fr, de and ru; other locales fall back to English. Words that CLDR tables
// do not cover, such as duration units, are bundled YAML translations that a
// request translator may override.
//
// Every formatter returns values of types it does not handle unchanged.
package builtin

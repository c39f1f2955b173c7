package builtin

import (
	"context"
	"time"

	"github.com/go-playground/locales"

	"github.com/djedproject/formatter"
	"github.com/djedproject/formatter/pkg/locale"
	"github.com/djedproject/formatter/pkg/logger"
)

// Style names accepted by WithFormat.
const (
	StyleShort  = "short"
	StyleMedium = "medium"
	StyleLong   = "long"
	StyleFull   = "full"
)

func request(req *formatter.Request) *formatter.Request {
	if req == nil {
		return formatter.NewRequest(context.Background())
	}
	return req
}

func options(req *formatter.Request, defaultFormat string, opts []formatter.Option) formatter.Options {
	o := formatter.ApplyOptions(formatter.Options{Format: defaultFormat}, opts...)
	if o.Locale == "" {
		o.Locale = req.Locale
	}
	return o
}

// style maps unknown names to StyleMedium.
func style(name string) string {
	switch name {
	case StyleShort, StyleMedium, StyleLong, StyleFull:
		return name
	default:
		return StyleMedium
	}
}

func asTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	}
	return time.Time{}, false
}

// location resolves the zone named by the call, then the request's zone, then
// UTC. Unknown names are logged and skipped.
func location(req *formatter.Request, name string) *time.Location {
	for _, candidate := range []string{name, req.Timezone} {
		if candidate == "" {
			continue
		}
		loc, err := locale.LoadTimezone(candidate)
		if err == nil {
			return loc
		}
		req.Logger.WarnContext(req.Context(), "unknown timezone, falling back",
			logger.Timezone(candidate),
			logger.Error(err),
		)
	}
	return time.UTC
}

func formatDate(tr locales.Translator, t time.Time, s string) string {
	switch s {
	case StyleShort:
		return tr.FmtDateShort(t)
	case StyleLong:
		return tr.FmtDateLong(t)
	case StyleFull:
		return tr.FmtDateFull(t)
	default:
		return tr.FmtDateMedium(t)
	}
}

func formatTime(tr locales.Translator, t time.Time, s string) string {
	switch s {
	case StyleShort:
		return tr.FmtTimeShort(t)
	case StyleLong:
		return tr.FmtTimeLong(t)
	case StyleFull:
		return tr.FmtTimeFull(t)
	default:
		return tr.FmtTimeMedium(t)
	}
}

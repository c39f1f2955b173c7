package builtin

import (
	"github.com/djedproject/formatter"
	"github.com/djedproject/formatter/pkg/locale"
)

// DateTime renders date and time joined by the locale pattern stored under
// "datetime.pattern.<style>". Both parts use the resolved timezone.
//
//	DateTime(req, t, formatter.WithTimezone("US/Central"), formatter.WithFormat("full"))
//	// "Sunday, February 6, 2011 at 4:35:45 am Central Standard Time"
func DateTime(req *formatter.Request, value any, opts ...formatter.Option) any {
	t, ok := asTime(value)
	if !ok {
		return value
	}
	req = request(req)
	o := options(req, StyleMedium, opts)
	s := style(o.Format)

	tr, _ := locale.Resolve(o.Locale)
	t = t.In(location(req, o.Timezone))

	return newMessages(req, o.Locale).t("datetime.pattern."+s,
		"date", formatDate(tr, t, s),
		"time", formatTime(tr, t, s),
	)
}

package builtin

import (
	"github.com/djedproject/formatter"
	"github.com/djedproject/formatter/pkg/locale"
)

// Time renders the clock time of a time.Time in the request locale.
// The value is converted to the zone given by WithTimezone, else the request
// timezone, else UTC.
func Time(req *formatter.Request, value any, opts ...formatter.Option) any {
	t, ok := asTime(value)
	if !ok {
		return value
	}
	req = request(req)
	o := options(req, StyleMedium, opts)

	tr, _ := locale.Resolve(o.Locale)
	return formatTime(tr, t.In(location(req, o.Timezone)), style(o.Format))
}

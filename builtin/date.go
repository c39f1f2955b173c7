package builtin

import (
	"github.com/djedproject/formatter"
	"github.com/djedproject/formatter/pkg/locale"
)

// Date renders the calendar date of a time.Time in the request locale.
// WithFormat selects short, medium (default), long or full. The value's own
// location is kept.
//
//	Date(req, t, formatter.WithFormat("full")) // "Sunday, February 6, 2011"
func Date(req *formatter.Request, value any, opts ...formatter.Option) any {
	t, ok := asTime(value)
	if !ok {
		return value
	}
	req = request(req)
	o := options(req, StyleMedium, opts)

	tr, _ := locale.Resolve(o.Locale)
	return formatDate(tr, t, style(o.Format))
}

package formatter

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Component renders the HTML-escaped result of formatter name applied to
// value, using the facade from the render context.
//
//	<span>@formatter.Component("date", post.Created, formatter.WithFormat("long"))</span>
func Component(name string, value any, opts ...Option) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		f := FromContext(ctx)
		if f == nil {
			return ErrNoFacade
		}
		s, err := f.String(name, value, opts...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

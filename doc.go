// Package formatter provides named, locale-aware value formatters for
// net/http applications.
//
// Formatters are plain functions registered under a name during application
// setup. Each HTTP request gets a Facade that binds formatters to the request
// (its locale, default timezone and translator) the first time they are used.
//
// # Setup
//
// A Configurator collects declarations and resolves them in Commit, reporting
// every conflicting declaration at once:
//
//	c := formatter.NewConfigurator(formatter.WithSettings(settings))
//	c.Include("builtin", builtin.Include)
//	c.AddFormatter("money", moneyFormatter, formatter.WithDescription("Money amount"))
//	reg, err := c.Commit()
//	if err != nil {
//		return err
//	}
//
// Declarations made directly on the Configurator override declarations with
// the same name made from an included function. Registry.Register adds a
// formatter immediately and fails on duplicates.
//
// # Per request
//
// Middleware stores a Facade in every request context:
//
//	router.Use(formatter.Middleware(reg, formatter.WithTranslator(translator)))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		f := formatter.FromContext(r.Context())
//		date, err := f.Get("date")
//		if err != nil {
//			// *UnknownFormatterError
//		}
//		fmt.Fprint(w, date.String(post.Created, formatter.WithFormat("long")))
//	}
//
// Within one request, Get returns the same *Bound for a name on every call.
// Formatters return values of types they do not handle unchanged, so
// formatting never fails once the formatter is found.
//
// templ templates render formatted values with Component.
package formatter

package formatter

import "maps"

// Options carries per-call formatter parameters. Formatters read the fields
// they understand and ignore the rest.
type Options struct {
	// Format selects the style, e.g. "short", "medium", "long", "full".
	Format string
	// Locale overrides the request locale.
	Locale string
	// Timezone overrides the request timezone.
	Timezone string
	// Unit selects the size unit: "b", "k", "m" or "g".
	Unit string
	// Granularity is the smallest unit used by approximate durations.
	Granularity string
	// Threshold is the fraction of a unit at which approximate durations
	// switch to that unit.
	Threshold float64
	// AddDirection renders approximate durations as "in ..." or "... ago".
	AddDirection bool
	// Args holds formatter-specific parameters.
	Args map[string]any
}

// Option sets a field of Options.
type Option func(*Options)

func WithFormat(format string) Option {
	return func(o *Options) { o.Format = format }
}

func WithLocale(locale string) Option {
	return func(o *Options) { o.Locale = locale }
}

func WithTimezone(name string) Option {
	return func(o *Options) { o.Timezone = name }
}

func WithUnit(unit string) Option {
	return func(o *Options) { o.Unit = unit }
}

func WithGranularity(unit string) Option {
	return func(o *Options) { o.Granularity = unit }
}

func WithThreshold(threshold float64) Option {
	return func(o *Options) { o.Threshold = threshold }
}

// WithDirection toggles "in ..." / "... ago" wording.
func WithDirection(add bool) Option {
	return func(o *Options) { o.AddDirection = add }
}

// WithArg sets a formatter-specific parameter.
func WithArg(key string, value any) Option {
	return func(o *Options) {
		if o.Args == nil {
			o.Args = make(map[string]any)
		}
		o.Args[key] = value
	}
}

// ApplyOptions applies opts on top of defaults. Nil options are skipped and
// the defaults' Args map is never modified.
func ApplyOptions(defaults Options, opts ...Option) Options {
	o := defaults
	if o.Args != nil {
		o.Args = maps.Clone(o.Args)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

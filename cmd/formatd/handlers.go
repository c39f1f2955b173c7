package main

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/djedproject/formatter"
	"github.com/djedproject/formatter/pkg/logger"
	"github.com/djedproject/formatter/pkg/response"
)

// formatResult is the body of a successful GET /format/{name}.
type formatResult struct {
	Formatter string `json:"formatter"`
	Input     string `json:"input"`
	Kind      string `json:"kind"`
	Locale    string `json:"locale"`
	Result    string `json:"result"`
}

var errMissingValue = response.NewHTTPError(http.StatusBadRequest, "missing_value")

func (a *app) format(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	f := formatter.FromContext(r.Context())
	if f == nil {
		_ = response.Error(w, formatter.ErrNoFacade)
		return
	}

	bound, err := f.Get(name)
	if err != nil {
		if errors.Is(err, formatter.ErrUnknownFormatter) {
			err = response.ErrNotFound.Wrap(err)
		}
		_ = response.Error(w, err)
		return
	}

	q := r.URL.Query()
	raw := q.Get("value")
	if raw == "" {
		_ = response.Error(w, errMissingValue)
		return
	}

	value, kind := parseValue(raw)
	opts := queryOptions(q)
	locale := f.Request().Locale
	if l := q.Get("locale"); l != "" {
		locale = l
	}

	result := bound.String(value, opts...)
	a.logger.DebugContext(r.Context(), "formatted value",
		logger.Formatter(name),
		logger.Locale(locale),
		slog.String("kind", kind),
	)

	_ = response.JSON(w, formatResult{
		Formatter: name,
		Input:     raw,
		Kind:      kind,
		Locale:    locale,
		Result:    result,
	})
}

// parseValue reads raw as an RFC 3339 time, an integer, a float or a Go
// duration, in that order. Anything else is returned unchanged.
func parseValue(raw string) (any, string) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, "time"
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, "int"
	}
	if x, err := strconv.ParseFloat(raw, 64); err == nil {
		return x, "float"
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d, "duration"
	}
	return raw, "string"
}

func queryOptions(q url.Values) []formatter.Option {
	get := q.Get

	var opts []formatter.Option
	if v := get("format"); v != "" {
		opts = append(opts, formatter.WithFormat(v))
	}
	if v := get("locale"); v != "" {
		opts = append(opts, formatter.WithLocale(v))
	}
	if v := get("tz"); v != "" {
		opts = append(opts, formatter.WithTimezone(v))
	}
	if v := get("unit"); v != "" {
		opts = append(opts, formatter.WithUnit(v))
	}
	if v := get("granularity"); v != "" {
		opts = append(opts, formatter.WithGranularity(v))
	}
	if v, err := strconv.ParseFloat(get("threshold"), 64); err == nil {
		opts = append(opts, formatter.WithThreshold(v))
	}
	if v, err := strconv.ParseBool(get("direction")); err == nil {
		opts = append(opts, formatter.WithDirection(v))
	}
	return opts
}

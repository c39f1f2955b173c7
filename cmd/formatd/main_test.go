package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djedproject/formatter"
	"github.com/djedproject/formatter/builtin"
	"github.com/djedproject/formatter/pkg/logger"
	"github.com/djedproject/formatter/pkg/ratelimiter"
	"github.com/djedproject/formatter/pkg/requestid"
)

func newTestApp(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	return testApp(t, cfg).routes()
}

func testApp(t *testing.T, cfg Config) *app {
	t.Helper()

	tr, err := newTranslator(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)

	c := formatter.NewConfigurator()
	c.Include("builtin", builtin.Include)
	reg, err := c.Commit()
	require.NoError(t, err)

	return &app{
		registry:   reg,
		settings:   *c.Settings(),
		translator: tr,
		logger:     logger.Discard(),
	}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func get(t *testing.T, h http.Handler, target string, header ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestFormatEndpoint(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, Config{})

	tests := []struct {
		name   string
		target string
		header []string
		want   formatResult
	}{
		{
			name:   "date",
			target: "/format/date?value=2011-02-06T10:35:45Z&format=full",
			want:   formatResult{Formatter: "date", Input: "2011-02-06T10:35:45Z", Kind: "time", Locale: "en", Result: "Sunday, February 6, 2011"},
		},
		{
			name:   "date in accepted language",
			target: "/format/date?value=2011-02-06T10:35:45Z&format=full",
			header: []string{"Accept-Language", "es-ES,es;q=0.9"},
			want:   formatResult{Formatter: "date", Input: "2011-02-06T10:35:45Z", Kind: "time", Locale: "es", Result: "domingo, 6 de febrero de 2011"},
		},
		{
			name:   "locale parameter",
			target: "/format/timedelta?value=2h&format=medium&locale=es",
			want:   formatResult{Formatter: "timedelta", Input: "2h", Kind: "duration", Locale: "es", Result: "2 horas"},
		},
		{
			name:   "timedelta direction",
			target: "/format/timedelta?value=-3h&format=medium&direction=true",
			want:   formatResult{Formatter: "timedelta", Input: "-3h", Kind: "duration", Locale: "en", Result: "3 hours ago"},
		},
		{
			name:   "size",
			target: "/format/size?value=786432&unit=m",
			want:   formatResult{Formatter: "size", Input: "786432", Kind: "int", Locale: "en", Result: "0.75 MB"},
		},
		{
			name:   "zero size",
			target: "/format/size?value=0",
			want:   formatResult{Formatter: "size", Input: "0", Kind: "int", Locale: "en", Result: "0.00 KB"},
		},
		{
			name:   "float size",
			target: "/format/size?value=1536.0",
			want:   formatResult{Formatter: "size", Input: "1536.0", Kind: "float", Locale: "en", Result: "1.50 KB"},
		},
		{
			name:   "pass through",
			target: "/format/size?value=lots",
			want:   formatResult{Formatter: "size", Input: "lots", Kind: "string", Locale: "en", Result: "lots"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := get(t, h, tt.target, tt.header...)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got formatResult
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, rec.Header().Get(requestid.Header))
		})
	}
}

func TestFormatEndpointErrors(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, Config{})

	rec, env := get(t, h, "/format/nope?value=1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Code)
	assert.Contains(t, env.Error.Message, `"nope"`)

	rec, env = get(t, h, "/format/size")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "missing_value", env.Error.Code)

	rec, env = get(t, h, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
}

func TestFormattersEndpoint(t *testing.T) {
	t.Parallel()

	rec, env := get(t, newTestApp(t, Config{}), "/formatters")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(5), env.Meta["total"])

	var infos []formatter.EntryInfo
	require.NoError(t, json.Unmarshal(env.Data, &infos))
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	assert.Equal(t, []string{"date", "datetime", "size", "time", "timedelta"}, names)
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec, _ := get(t, newTestApp(t, Config{}), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTranslationsDirOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte(`en:
  timedelta:
    direction:
      past: "%{value} back"
`), 0o600))

	h := newTestApp(t, Config{TranslationsDir: dir})
	rec, env := get(t, h, "/format/timedelta?value=-3h&format=medium&direction=true")
	require.Equal(t, http.StatusOK, rec.Code)

	var got formatResult
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "3 hours back", got.Result)
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	a := testApp(t, Config{})
	a.limiter = ratelimiter.NewStore(0.001, 1)
	h := a.routes()

	rec, _ := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := get(t, h, "/healthz")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "too_many_requests", env.Error.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestParseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		want     any
		wantKind string
	}{
		{"2011-02-06T10:35:45Z", time.Date(2011, 2, 6, 10, 35, 45, 0, time.UTC), "time"},
		{"1h30m", 90 * time.Minute, "duration"},
		{"42", int64(42), "int"},
		{"0", int64(0), "int"},
		{"-7", int64(-7), "int"},
		{"4.5", 4.5, "float"},
		{"hello", "hello", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, kind := parseValue(tt.raw)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.want, got)
		})
	}
}

package builtin_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djedproject/formatter"
	"github.com/djedproject/formatter/builtin"
	"github.com/djedproject/formatter/pkg/i18n"
	"github.com/djedproject/formatter/pkg/locale"
)

const delta = 10*time.Hour + 5*time.Minute + 45*time.Second

func TestTimedeltaClockAndSeconds(t *testing.T) {
	t.Parallel()

	req := newRequest()

	tests := []struct {
		name  string
		value time.Duration
		opts  []formatter.Option
		want  string
	}{
		{"default", delta, nil, "10:05:45"},
		{"negative", -delta, nil, "-10:05:45"},
		{"hours are unbounded", 30 * time.Hour, nil, "30:00:00"},
		{"sub-second dropped", 1500 * time.Millisecond, nil, "0:00:01"},
		{"unknown format", delta, []formatter.Option{formatter.WithFormat("bogus")}, "10:05:45"},
		{"seconds", delta, []formatter.Option{formatter.WithFormat("seconds")}, "36345.0000"},
		{"fractional seconds", 1500 * time.Millisecond, []formatter.Option{formatter.WithFormat("seconds")}, "1.5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, builtin.Timedelta(req, tt.value, tt.opts...))
		})
	}
}

func TestTimedeltaFull(t *testing.T) {
	t.Parallel()

	full := formatter.WithFormat("full")

	tests := []struct {
		name   string
		locale string
		value  time.Duration
		want   string
	}{
		{"english", "en", delta, "10 hours 5 mins 45 secs"},
		{"singular", "en", time.Hour + time.Minute + time.Second, "1 hour 1 min 1 sec"},
		{"zero fields omitted", "en", 2 * time.Hour, "2 hours"},
		{"all zero", "en", 0, "0 secs"},
		{"negative", "en", -90 * time.Second, "-1 min 30 secs"},
		{"spanish", "es", delta, "10 horas 5 min 45 s"},
		{"french one", "fr", time.Hour, "1 heure"},
		{"russian few", "ru", 3*time.Hour + 5*time.Minute, "3 часа 5 мин"},
		{"russian many", "ru", 5 * time.Hour, "5 часов"},
		{"russian one", "ru", 21 * time.Hour, "21 час"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(formatter.WithRequestLocale(tt.locale))
			assert.Equal(t, tt.want, builtin.Timedelta(req, tt.value, full))
		})
	}
}

func TestTimedeltaApproximate(t *testing.T) {
	t.Parallel()

	day := 24 * time.Hour

	tests := []struct {
		name   string
		locale string
		value  time.Duration
		opts   []formatter.Option
		want   string
	}{
		{"medium", "en", delta, []formatter.Option{formatter.WithFormat("medium")}, "10 hours"},
		{"long is medium", "en", delta, []formatter.Option{formatter.WithFormat("long")}, "10 hours"},
		{"short", "en", delta, []formatter.Option{formatter.WithFormat("short")}, "10 hrs"},
		{"narrow", "en", delta, []formatter.Option{formatter.WithFormat("narrow")}, "10h"},
		{"days", "en", 3 * day, []formatter.Option{formatter.WithFormat("medium")}, "3 days"},
		{"threshold rounds up to a week", "en", 6 * day, []formatter.Option{formatter.WithFormat("medium")}, "1 week"},
		{"below threshold", "en", 50 * time.Second, []formatter.Option{formatter.WithFormat("medium")}, "50 seconds"},
		{"above threshold", "en", 55 * time.Second, []formatter.Option{formatter.WithFormat("medium")}, "1 minute"},
		{"custom threshold", "en", 55 * time.Second, []formatter.Option{formatter.WithFormat("medium"), formatter.WithThreshold(1)}, "55 seconds"},
		{"zero", "en", 0, []formatter.Option{formatter.WithFormat("medium")}, "0 seconds"},
		{"granularity", "en", 3 * time.Hour, []formatter.Option{formatter.WithFormat("medium"), formatter.WithGranularity("day")}, "1 day"},
		{"future", "en", delta, []formatter.Option{formatter.WithFormat("medium"), formatter.WithDirection(true)}, "in 10 hours"},
		{"past", "en", -delta, []formatter.Option{formatter.WithFormat("medium"), formatter.WithDirection(true)}, "10 hours ago"},
		{"past without direction", "en", -delta, []formatter.Option{formatter.WithFormat("medium")}, "10 hours"},
		{"sub-second past", "en", -500 * time.Millisecond, []formatter.Option{formatter.WithFormat("medium"), formatter.WithDirection(true)}, "1 second ago"},
		{"sub-second past without direction", "en", -500 * time.Millisecond, []formatter.Option{formatter.WithFormat("medium")}, "1 second"},
		{"sub-second future", "en", 500 * time.Millisecond, []formatter.Option{formatter.WithFormat("medium"), formatter.WithDirection(true)}, "in 0 seconds"},
		{"spanish", "es", 2 * time.Hour, []formatter.Option{formatter.WithFormat("medium")}, "2 horas"},
		{"spanish past", "es", -2 * time.Hour, []formatter.Option{formatter.WithFormat("medium"), formatter.WithDirection(true)}, "hace 2 horas"},
		{"german future", "de", day, []formatter.Option{formatter.WithFormat("medium"), formatter.WithDirection(true)}, "in 1 Tag"},
		{"russian many", "ru", 5 * day, []formatter.Option{formatter.WithFormat("medium")}, "5 дней"},
		{"russian few", "ru", 21 * day, []formatter.Option{formatter.WithFormat("medium")}, "3 недели"},
		{"regional locale", "es-MX", time.Hour, []formatter.Option{formatter.WithFormat("medium")}, "1 hora"},
		{"locale option", "en", time.Hour, []formatter.Option{formatter.WithFormat("medium"), formatter.WithLocale("fr")}, "1 heure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(formatter.WithRequestLocale(tt.locale))
			assert.Equal(t, tt.want, builtin.Timedelta(req, tt.value, tt.opts...))
		})
	}
}

func TestTimedeltaValues(t *testing.T) {
	t.Parallel()

	d := delta
	assert.Equal(t, "10:05:45", builtin.Timedelta(nil, &d))
	assert.Equal(t, "10:05:45", builtin.Timedelta(nil, "10:05:45"))
	assert.Equal(t, int64(36345), builtin.Timedelta(nil, int64(36345)))
}

func TestTimedeltaRequestTranslator(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"timedelta": map[string]any{"medium": map[string]any{"hour": map[string]any{
			"one":   "%{count} hour!",
			"other": "%{count} hours!",
		}}}},
	}}, i18n.WithPluralRule(locale.PluralCategory))
	require.NoError(t, err)

	req := newRequest(formatter.WithRequestTranslator(tr))
	medium := formatter.WithFormat("medium")

	assert.Equal(t, "10 hours!", builtin.Timedelta(req, delta, medium))
	assert.Equal(t, "5 minutes", builtin.Timedelta(req, 5*time.Minute, medium), "missing keys use bundled translations")

	de := newRequest(formatter.WithRequestTranslator(tr), formatter.WithRequestLocale("de"))
	assert.Equal(t, "10 Stunden", builtin.Timedelta(de, delta, medium), "bundled language beats request default")

	xx := newRequest(formatter.WithRequestTranslator(tr), formatter.WithRequestLocale("xx"))
	assert.Equal(t, "10 hours!", builtin.Timedelta(xx, delta, medium), "request default beats bundled default")
}

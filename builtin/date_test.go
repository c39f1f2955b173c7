package builtin_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/djedproject/formatter"
	"github.com/djedproject/formatter/builtin"
	"github.com/djedproject/formatter/pkg/logger"
)

var sample = time.Date(2011, 2, 6, 10, 35, 45, 80, time.UTC)

func newRequest(opts ...formatter.RequestOption) *formatter.Request {
	return formatter.NewRequest(context.Background(), opts...)
}

func TestDate(t *testing.T) {
	t.Parallel()

	req := newRequest()

	tests := []struct {
		name string
		opts []formatter.Option
		want string
	}{
		{"default is medium", nil, "Feb 6, 2011"},
		{"short", []formatter.Option{formatter.WithFormat("short")}, "2/6/11"},
		{"medium", []formatter.Option{formatter.WithFormat("medium")}, "Feb 6, 2011"},
		{"long", []formatter.Option{formatter.WithFormat("long")}, "February 6, 2011"},
		{"full", []formatter.Option{formatter.WithFormat("full")}, "Sunday, February 6, 2011"},
		{"unknown style", []formatter.Option{formatter.WithFormat("huge")}, "Feb 6, 2011"},
		{"spanish full", []formatter.Option{formatter.WithLocale("es"), formatter.WithFormat("full")}, "domingo, 6 de febrero de 2011"},
		{"spanish short", []formatter.Option{formatter.WithLocale("es_MX"), formatter.WithFormat("short")}, "6/2/11"},
		{"spanish medium", []formatter.Option{formatter.WithLocale("es"), formatter.WithFormat("medium")}, "6 feb. 2011"},
		{"unsupported locale", []formatter.Option{formatter.WithLocale("ja")}, "Feb 6, 2011"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, builtin.Date(req, sample, tt.opts...))
		})
	}

	assert.Equal(t, "en", req.Locale, "per-call locale must not change the request")
}

func TestDateValues(t *testing.T) {
	t.Parallel()

	req := newRequest(formatter.WithRequestLocale("es"))

	assert.Equal(t, "not a date", builtin.Date(req, "not a date"))
	assert.Equal(t, 42, builtin.Date(req, 42))

	var nilTime *time.Time
	assert.Equal(t, nilTime, builtin.Date(req, nilTime))

	ts := sample
	assert.Equal(t, "6 feb. 2011", builtin.Date(req, &ts))
	assert.Equal(t, "Feb 6, 2011", builtin.Date(nil, sample))

	late := time.Date(2011, 2, 6, 23, 0, 0, 0, time.FixedZone("X", -6*3600))
	assert.Equal(t, "Feb 6, 2011", builtin.Date(nil, late), "the value's location is kept")
}

func TestTime(t *testing.T) {
	t.Parallel()

	req := newRequest()

	tests := []struct {
		name string
		opts []formatter.Option
		want string
	}{
		{"default is medium", nil, "10:35:45 am"},
		{"short", []formatter.Option{formatter.WithFormat("short")}, "10:35 am"},
		{"long", []formatter.Option{formatter.WithFormat("long")}, "10:35:45 am UTC"},
		{"full", []formatter.Option{formatter.WithFormat("full")}, "10:35:45 am UTC"},
		{"timezone long", []formatter.Option{formatter.WithTimezone("US/Central"), formatter.WithFormat("long")}, "4:35:45 am CST"},
		{"timezone full", []formatter.Option{formatter.WithTimezone("US/Central"), formatter.WithFormat("full")}, "4:35:45 am Central Standard Time"},
		{"utc alias", []formatter.Option{formatter.WithTimezone("utc"), formatter.WithFormat("short")}, "10:35 am"},
		{"spanish medium", []formatter.Option{formatter.WithLocale("es")}, "10:35:45"},
		{"spanish full", []formatter.Option{formatter.WithLocale("es"), formatter.WithFormat("full")}, "10:35:45 (UTC)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, builtin.Time(req, sample, tt.opts...))
		})
	}

	assert.Equal(t, "9:00", builtin.Time(req, "9:00"))
}

func TestTimeZoneFallback(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())

	central := newRequest(formatter.WithRequestTimezone("US/Central"), formatter.WithRequestLogger(log))
	assert.Equal(t, "4:35:45 am", builtin.Time(central, sample))
	assert.Equal(t, "4:35:45 am", builtin.Time(central, sample, formatter.WithTimezone("Mars/Base")))
	assert.Contains(t, buf.String(), "unknown timezone")
	assert.Contains(t, buf.String(), "timezone=Mars/Base")

	broken := newRequest(formatter.WithRequestTimezone("Nowhere/Land"), formatter.WithRequestLogger(log))
	assert.Equal(t, "10:35:45 am", builtin.Time(broken, sample, formatter.WithTimezone("Mars/Base")))
}

func TestDateTime(t *testing.T) {
	t.Parallel()

	req := newRequest()

	tests := []struct {
		name string
		opts []formatter.Option
		want string
	}{
		{"default is medium", nil, "Feb 6, 2011, 10:35:45 am"},
		{"short", []formatter.Option{formatter.WithFormat("short")}, "2/6/11, 10:35 am"},
		{"long", []formatter.Option{formatter.WithFormat("long")}, "February 6, 2011 at 10:35:45 am UTC"},
		{
			"full in zone",
			[]formatter.Option{formatter.WithFormat("full"), formatter.WithTimezone("US/Central")},
			"Sunday, February 6, 2011 at 4:35:45 am Central Standard Time",
		},
		{"spanish medium", []formatter.Option{formatter.WithLocale("es")}, "6 feb. 2011, 10:35:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, builtin.DateTime(req, sample, tt.opts...))
		})
	}

	early := time.Date(2011, 2, 6, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "Feb 5, 2011, 8:00:00 pm",
		builtin.DateTime(req, early, formatter.WithTimezone("US/Central")),
		"the timezone applies to the date part too")

	assert.Equal(t, 10, builtin.DateTime(req, 10))
}

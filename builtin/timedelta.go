package builtin

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/djedproject/formatter"
)

// Timedelta formats accepted by WithFormat, besides the approximate styles.
const (
	DeltaClock   = ""
	DeltaSeconds = "seconds"
	DeltaFull    = "full"
	DeltaNarrow  = "narrow"
)

// Defaults for approximate durations.
const (
	DefaultGranularity = "second"
	DefaultThreshold   = 0.85
)

type deltaUnit struct {
	name    string
	seconds float64
}

var deltaUnits = []deltaUnit{
	{"year", 3600 * 24 * 365},
	{"month", 3600 * 24 * 30},
	{"week", 3600 * 24 * 7},
	{"day", 3600 * 24},
	{"hour", 3600},
	{"minute", 60},
	{"second", 1},
}

// Timedelta renders a time.Duration. WithFormat selects the rendering:
//
//	""        10:05:45 (default; any unrecognised format renders this way)
//	"seconds" 36345.0000
//	"full"    10 hours 5 mins 45 secs
//	"medium"  10 hours ("long" renders the same)
//	"short"   10 hrs
//	"narrow"  10h
//
// The approximate styles pick the largest unit reaching WithThreshold
// (default 0.85), never going below WithGranularity (default "second").
// WithDirection renders them as "in 10 hours" or "10 hours ago".
func Timedelta(req *formatter.Request, value any, opts ...formatter.Option) any {
	d, ok := asDuration(value)
	if !ok {
		return value
	}
	req = request(req)
	o := options(req, DeltaClock, opts)
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Granularity == "" {
		o.Granularity = DefaultGranularity
	}

	switch o.Format {
	case DeltaSeconds:
		return strconv.FormatFloat(d.Seconds(), 'f', 4, 64)
	case DeltaFull:
		return deltaFull(newMessages(req, o.Locale), d)
	case StyleLong, StyleMedium:
		return deltaApprox(newMessages(req, o.Locale), d, StyleMedium, o)
	case StyleShort, DeltaNarrow:
		return deltaApprox(newMessages(req, o.Locale), d, o.Format, o)
	default:
		return deltaClock(d)
	}
}

func asDuration(value any) (time.Duration, bool) {
	switch v := value.(type) {
	case time.Duration:
		return v, true
	case *time.Duration:
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

// deltaClock renders H:MM:SS with unbounded hours. Sub-second parts are dropped.
func deltaClock(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
	}
	h, m, s := fields(d)
	return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
}

func deltaFull(msg messages, d time.Duration) string {
	h, m, s := fields(d)

	parts := make([]string, 0, 3)
	if h > 0 {
		parts = append(parts, msg.n("timedelta.full.hour", int(h)))
	}
	if m > 0 {
		parts = append(parts, msg.n("timedelta.full.minute", int(m)))
	}
	if s > 0 || len(parts) == 0 {
		parts = append(parts, msg.n("timedelta.full.second", int(s)))
	}

	out := strings.Join(parts, " ")
	if d < 0 {
		return "-" + out
	}
	return out
}

func deltaApprox(msg messages, d time.Duration, style string, o formatter.Options) string {
	// Floor keeps sub-second past values in the past.
	seconds := math.Floor(d.Seconds())
	abs := math.Abs(seconds)

	for _, unit := range deltaUnits {
		value := abs / unit.seconds
		atGranularity := unit.name == o.Granularity
		if value < o.Threshold && !atGranularity {
			continue
		}
		if atGranularity && value > 0 {
			value = math.Max(1, value)
		}
		count := int(math.Round(value))

		out := msg.n("timedelta."+style+"."+unit.name, count)
		if !o.AddDirection {
			return out
		}
		if seconds >= 0 {
			return msg.t("timedelta.direction.future", "value", out)
		}
		return msg.t("timedelta.direction.past", "value", out)
	}
	return ""
}

// fields splits the absolute value of d into hours, minutes and seconds.
func fields(d time.Duration) (h, m, s int64) {
	total := int64(d / time.Second)
	if total < 0 {
		total = -total
	}
	return total / 3600, total % 3600 / 60, total % 60
}

package builtin

import (
	"fmt"

	"github.com/djedproject/formatter"
)

type sizeUnit struct {
	divisor float64
	symbol  string
}

var sizeUnits = map[string]sizeUnit{
	"b": {1, "B"},
	"k": {1024, "KB"},
	"m": {1024 * 1024, "MB"},
	"g": {1024 * 1024 * 1024, "GB"},
}

// Size renders a byte count in the unit selected by WithUnit: "b", "k"
// (default), "m" or "g". Unknown units render kilobytes.
//
//	Size(req, 1024*768, formatter.WithUnit("m")) // "0.75 MB"
func Size(_ *formatter.Request, value any, opts ...formatter.Option) any {
	n, ok := asFloat(value)
	if !ok {
		return value
	}
	o := formatter.ApplyOptions(formatter.Options{Unit: "k"}, opts...)

	unit, ok := sizeUnits[o.Unit]
	if !ok {
		unit = sizeUnits["k"]
	}
	if unit.symbol == "B" {
		return fmt.Sprintf("%.0f %s", n/unit.divisor, unit.symbol)
	}
	return fmt.Sprintf("%.2f %s", n/unit.divisor, unit.symbol)
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uintptr:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

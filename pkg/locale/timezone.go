package locale

import (
	"errors"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

var zones sync.Map // name -> *time.Location

// LoadTimezone returns the location for an IANA timezone name.
// "utc" is accepted in any letter case. Loaded locations are cached.
func LoadTimezone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTimezone
	}
	if strings.EqualFold(name, "utc") {
		return time.UTC, nil
	}
	if loc, ok := zones.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Join(ErrUnknownTimezone, err)
	}
	zones.Store(name, loc)
	return loc, nil
}

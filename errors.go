package formatter

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrEmptyName             = errors.New("formatter: empty formatter name")
	ErrNilFunc               = errors.New("formatter: nil formatter func")
	ErrDuplicateName         = errors.New("formatter: duplicate formatter name")
	ErrUnknownFormatter      = errors.New("formatter: unknown formatter")
	ErrRegistrySealed        = errors.New("formatter: registry is sealed")
	ErrConfigurationConflict = errors.New("formatter: configuration conflict")
	ErrNoFacade              = errors.New("formatter: no facade in context")
)

// DuplicateNameError is returned by Registry.Register when name is taken.
type DuplicateNameError struct{ Name string }

func (e *DuplicateNameError) Error() string {
	return "formatter: duplicate formatter name " + strconv.Quote(e.Name)
}

func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }

// Access identifies the facade accessor that reported an unknown formatter.
type Access int

const (
	// AccessLookup is Get and the helpers built on it.
	AccessLookup Access = iota
	// AccessMust is MustGet.
	AccessMust
)

func (a Access) String() string {
	if a == AccessMust {
		return "must"
	}
	return "lookup"
}

// UnknownFormatterError reports a name with no registered formatter.
type UnknownFormatterError struct {
	Name   string
	Access Access
}

func (e *UnknownFormatterError) Error() string {
	return "formatter: unknown formatter " + strconv.Quote(e.Name) + " (" + e.Access.String() + ")"
}

func (e *UnknownFormatterError) Unwrap() error { return ErrUnknownFormatter }

// Conflict describes one formatter name declared from include paths that do
// not override each other.
type Conflict struct {
	Name  string
	Paths []string
}

// ConflictError is returned by Configurator.Commit and lists every conflict.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	var b strings.Builder
	b.WriteString("formatter: configuration conflict")
	for i, c := range e.Conflicts {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(strconv.Quote(c.Name))
		b.WriteString(" declared in ")
		b.WriteString(strings.Join(c.Paths, ", "))
	}
	return b.String()
}

func (e *ConflictError) Unwrap() error { return ErrConfigurationConflict }

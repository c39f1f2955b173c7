package formatter

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/djedproject/formatter/pkg/logger"
)

// IncludeFunc declares formatters and settings on a Configurator.
type IncludeFunc func(c *Configurator)

// ConfiguratorOption configures a Configurator.
type ConfiguratorOption func(*Configurator)

// WithRegistry commits into reg instead of a new registry.
func WithRegistry(reg *Registry) ConfiguratorOption {
	return func(c *Configurator) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithSettings sets the initial settings.
func WithSettings(s Settings) ConfiguratorOption {
	return func(c *Configurator) {
		c.settings = s
	}
}

// WithLogger sets the logger used at commit time.
func WithLogger(l *slog.Logger) ConfiguratorOption {
	return func(c *Configurator) {
		if l != nil {
			c.logger = l
		}
	}
}

type action struct {
	entry Entry
	path  []string
}

// Configurator collects formatter declarations during application setup and
// resolves them in Commit.
//
// Declarations are tagged with the include path they were made from. For one
// name, the declaration with the shortest path wins and silently overrides
// declarations from includes nested below it; any other pair of declarations
// is a conflict. This lets an application replace a formatter registered by
// an included package:
//
//	c := formatter.NewConfigurator()
//	c.Include("builtin", builtin.Include)
//	c.AddFormatter("size", mySize) // overrides builtin "size"
//	reg, err := c.Commit()
type Configurator struct {
	registry *Registry
	settings Settings
	logger   *slog.Logger

	path     []string
	actions  []action
	included map[string]bool
	errs     []error
	done     bool
}

// NewConfigurator returns a Configurator with an empty registry.
func NewConfigurator(opts ...ConfiguratorOption) *Configurator {
	c := &Configurator{
		registry: NewRegistry(),
		logger:   logger.Discard(),
		included: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Settings returns the settings being configured. Include functions use it to
// set defaults.
func (c *Configurator) Settings() *Settings {
	return &c.settings
}

// Registry returns the registry Commit writes to.
func (c *Configurator) Registry() *Registry {
	return c.registry
}

// AddFormatter declares a formatter. Invalid declarations are reported by Commit.
func (c *Configurator) AddFormatter(name string, fn Func, opts ...EntryOption) {
	switch {
	case c.done:
		c.errs = append(c.errs, fmt.Errorf("add formatter %q: %w", name, ErrRegistrySealed))
		return
	case name == "":
		c.errs = append(c.errs, ErrEmptyName)
		return
	case fn == nil:
		c.errs = append(c.errs, fmt.Errorf("add formatter %q: %w", name, ErrNilFunc))
		return
	}
	c.actions = append(c.actions, action{
		entry: newEntry(name, fn, opts...),
		path:  slices.Clone(c.path),
	})
}

// Include runs fn with the include path extended by name. Including the same
// name twice from the same path runs fn once.
func (c *Configurator) Include(name string, fn IncludeFunc) {
	if fn == nil {
		return
	}
	path := append(slices.Clone(c.path), name)
	key := strings.Join(path, "\x00")
	if c.included[key] {
		return
	}
	c.included[key] = true

	parent := c.path
	c.path = path
	defer func() { c.path = parent }()

	fn(c)
}

// Commit resolves declarations, registers the winners and seals the registry.
// Every conflict is reported in one *ConflictError. On any error the registry
// is left untouched and unsealed.
func (c *Configurator) Commit() (*Registry, error) {
	if c.done {
		return nil, ErrRegistrySealed
	}
	if len(c.errs) > 0 {
		return nil, errors.Join(c.errs...)
	}

	byName := make(map[string][]action)
	var order []string
	for _, a := range c.actions {
		if _, ok := byName[a.entry.Name]; !ok {
			order = append(order, a.entry.Name)
		}
		byName[a.entry.Name] = append(byName[a.entry.Name], a)
	}

	winners := make([]action, 0, len(order))
	var conflicts []Conflict
	for _, name := range order {
		winner, conflict := resolve(byName[name])
		if conflict != nil {
			conflicts = append(conflicts, *conflict)
			continue
		}
		winners = append(winners, winner)
	}
	if len(conflicts) > 0 {
		sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].Name < conflicts[j].Name })
		return nil, &ConflictError{Conflicts: conflicts}
	}

	entries := make([]Entry, len(winners))
	for i, w := range winners {
		entries[i] = w.entry
	}
	if err := c.registry.addAll(entries); err != nil {
		return nil, err
	}
	for _, w := range winners {
		c.logger.Debug("formatter registered",
			logger.Formatter(w.entry.Name),
			slog.String("symbol", w.entry.Symbol),
			slog.String("include", formatPath(w.path)),
		)
	}

	c.registry.Seal()
	c.done = true
	return c.registry, nil
}

// resolve picks the declaration with the shortest include path. Declarations
// whose path strictly extends it are overridden; the rest conflict.
func resolve(actions []action) (action, *Conflict) {
	basis := 0
	for i, a := range actions {
		if len(a.path) < len(actions[basis].path) {
			basis = i
		}
	}

	var paths []string
	for i, a := range actions {
		if i == basis || isStrictPrefix(actions[basis].path, a.path) {
			continue
		}
		paths = append(paths, formatPath(a.path))
	}
	if len(paths) == 0 {
		return actions[basis], nil
	}
	return actions[basis], &Conflict{
		Name:  actions[basis].entry.Name,
		Paths: append([]string{formatPath(actions[basis].path)}, paths...),
	}
}

func isStrictPrefix(prefix, path []string) bool {
	return len(prefix) < len(path) && slices.Equal(prefix, path[:len(prefix)])
}

func formatPath(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}
	return strings.Join(path, "/")
}

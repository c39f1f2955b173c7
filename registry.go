package formatter

import (
	"errors"
	"reflect"
	"runtime"
	"sort"
	"sync"
)

// Func formats value for req. Values of a type the formatter does not handle
// are returned unchanged.
type Func func(req *Request, value any, opts ...Option) any

// Entry describes a registered formatter.
type Entry struct {
	Name        string
	Description string
	// Symbol is the Go symbol of Func, e.g. "github.com/djedproject/formatter/builtin.Size".
	Symbol string
	Func   Func
}

// EntryOption configures an Entry at registration.
type EntryOption func(*Entry)

// WithDescription sets the entry description shown by introspection.
func WithDescription(description string) EntryOption {
	return func(e *Entry) {
		e.Description = description
	}
}

func newEntry(name string, fn Func, opts ...EntryOption) Entry {
	e := Entry{Name: name, Func: fn, Symbol: funcSymbol(fn)}
	for _, opt := range opts {
		if opt != nil {
			opt(&e)
		}
	}
	return e
}

func funcSymbol(fn Func) string {
	if fn == nil {
		return ""
	}
	if f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()); f != nil {
		return f.Name()
	}
	return ""
}

// Registry maps names to formatters. It is written during application setup
// and read-only once sealed.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	sealed  bool
}

// NewRegistry returns an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds a formatter under name.
func (r *Registry) Register(name string, fn Func, opts ...EntryOption) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return ErrNilFunc
	}
	return r.add(newEntry(name, fn, opts...))
}

func (r *Registry) add(e Entry) error {
	return r.addAll([]Entry{e})
}

// addAll inserts every entry or none of them.
func (r *Registry) addAll(entries []Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrRegistrySealed
	}

	var errs []error
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		_, exists := r.entries[e.Name]
		_, repeated := seen[e.Name]
		if exists || repeated {
			errs = append(errs, &DuplicateNameError{Name: e.Name})
		}
		seen[e.Name] = struct{}{}
	}
	switch len(errs) {
	case 0:
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}

	if r.entries == nil {
		r.entries = make(map[string]Entry, len(entries))
	}
	for _, e := range entries {
		r.entries[e.Name] = e
	}
	return nil
}

// Lookup returns the formatter registered under name.
func (r *Registry) Lookup(name string) (Func, error) {
	e, ok := r.Entry(name)
	if !ok {
		return nil, &UnknownFormatterError{Name: name, Access: AccessLookup}
	}
	return e.Func, nil
}

// Entry returns the entry registered under name.
func (r *Registry) Entry(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	return e, ok
}

// All returns every entry sorted by name.
func (r *Registry) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	all := r.All()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of registered formatters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Seal makes the registry read-only. Further Register calls fail with
// ErrRegistrySealed.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Sealed reports whether Seal was called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

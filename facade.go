package formatter

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Bound is a formatter bound to one request.
type Bound struct {
	name string
	fn   Func
	req  *Request
}

func (b *Bound) Name() string      { return b.name }
func (b *Bound) Func() Func        { return b.fn }
func (b *Bound) Request() *Request { return b.req }

// Format calls the formatter with the bound request.
func (b *Bound) Format(value any, opts ...Option) any {
	return b.fn(b.req, value, opts...)
}

// String formats value and renders the result with fmt.Sprint.
func (b *Bound) String(value any, opts ...Option) string {
	return fmt.Sprint(b.Format(value, opts...))
}

// Facade gives one request access to the registered formatters. Bound
// formatters are created on first use and reused afterwards.
type Facade struct {
	req *Request
	reg *Registry

	mu    sync.Mutex
	bound map[string]*Bound
}

// NewFacade returns a facade over reg for req. A nil req is replaced by a
// Request with default settings.
func NewFacade(req *Request, reg *Registry) *Facade {
	if req == nil {
		req = NewRequest(context.Background())
	}
	if reg == nil {
		reg = NewRegistry()
	}
	return &Facade{req: req, reg: reg, bound: make(map[string]*Bound)}
}

// Request returns the request the facade is bound to.
func (f *Facade) Request() *Request {
	return f.req
}

// Get returns the formatter registered under name bound to the request.
// Repeated calls return the same *Bound.
func (f *Facade) Get(name string) (*Bound, error) {
	return f.get(name, AccessLookup)
}

// MustGet is like Get but panics with *UnknownFormatterError.
func (f *Facade) MustGet(name string) *Bound {
	b, err := f.get(name, AccessMust)
	if err != nil {
		panic(err)
	}
	return b
}

// Format looks up name and formats value.
func (f *Facade) Format(name string, value any, opts ...Option) (any, error) {
	b, err := f.Get(name)
	if err != nil {
		return nil, err
	}
	return b.Format(value, opts...), nil
}

// String looks up name and renders the formatted value as a string.
func (f *Facade) String(name string, value any, opts ...Option) (string, error) {
	b, err := f.Get(name)
	if err != nil {
		return "", err
	}
	return b.String(value, opts...), nil
}

// Cached returns the names bound so far, sorted.
func (f *Facade) Cached() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.bound))
	for name := range f.bound {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f *Facade) get(name string, access Access) (*Bound, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if b, ok := f.bound[name]; ok {
		return b, nil
	}

	fn, err := f.reg.Lookup(name)
	if err != nil {
		var unknown *UnknownFormatterError
		if errors.As(err, &unknown) {
			unknown.Access = access
		}
		return nil, err
	}

	b := &Bound{name: name, fn: fn, req: f.req}
	f.bound[name] = b
	return b, nil
}

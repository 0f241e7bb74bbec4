package fixture

import (
	"fmt"
	"sort"
)

// Scope holds the state shared by one top-level factory chain: auto-increment
// counters, the drafting depth of the current creation call and the nested
// factories reached through FromRecipe.
//
// A scope is not safe for concurrent use. Callers sharing a factory between
// goroutines must serialize whole create calls.
type Scope struct {
	counters   *counterRegistry
	depth      *depthTracker
	factories  *factoryRegistry
	extensions []Extension
}

// ScopeOption is a modifier for scopes
type ScopeOption func(*Scope)

// WithExtension returns an option that registers an extension to a scope
func WithExtension(ext Extension) ScopeOption {
	return func(s *Scope) {
		if err := s.UseExtension(ext); err != nil {
			panic(err)
		}
	}
}

// NewScope creates a new scope with optional configuration
func NewScope(opts ...ScopeOption) *Scope {
	s := &Scope{
		counters:   newCounterRegistry(),
		depth:      &depthTracker{},
		factories:  &factoryRegistry{},
		extensions: []Extension{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// UseExtension registers an extension to the scope
func (s *Scope) UseExtension(ext Extension) error {
	s.extensions = append(s.extensions, ext)
	sort.SliceStable(s.extensions, func(i, j int) bool {
		return s.extensions[i].Order() < s.extensions[j].Order()
	})

	if err := ext.Init(s); err != nil {
		return fmt.Errorf("initializing extension %s: %w", ext.Name(), err)
	}
	return nil
}

// Counter returns the last value handed out by the named sequence of this
// scope, 0 if the sequence was never used.
func (s *Scope) Counter(key string) int {
	return s.counters.peek(key)
}

// nested derives the scope of a nested factory: own counters and registry,
// same depth tracker and extensions.
func (s *Scope) nested() *Scope {
	return &Scope{
		counters:   newCounterRegistry(),
		depth:      s.depth,
		factories:  &factoryRegistry{},
		extensions: s.extensions,
	}
}

// FromRecipe returns the factory for r nested in the scope of ctx. Repeated
// calls with the same recipe through the same scope return the same factory,
// so its counters keep advancing across creations.
func FromRecipe[T any](ctx *Context, r *Recipe[T]) *Factory[T] {
	return nestedFactory(ctx.scope, r)
}

func nestedFactory[T any](s *Scope, r *Recipe[T]) *Factory[T] {
	f := s.factories.loadOrCreate(r, func() any {
		return newFactory(r, s.nested(), nil)
	})
	return f.(*Factory[T])
}

// wrap runs next through the registered extensions, lowest Order outermost.
// A failure is reported to OnError once per call, with the operation the
// caller started.
func (s *Scope) wrap(op *Operation, next func() (any, error)) (any, error) {
	outermost := s.depth.beginOperation()
	defer s.depth.endOperation()

	exts := s.extensions

	for i := len(exts) - 1; i >= 0; i-- {
		ext := exts[i]
		currentNext := next
		next = func() (any, error) {
			return ext.Wrap(currentNext, op)
		}
	}

	result, err := next()
	if err != nil && outermost {
		for _, ext := range exts {
			ext.OnError(err, op)
		}
	}
	return result, err
}

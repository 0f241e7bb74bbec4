package fixture

import (
	"strings"

	"github.com/google/uuid"
)

// Context is handed to build and override functions. One context exists per
// draft; the deferred values it creates are bound to that draft.
type Context struct {
	scope *Scope
	cell  *draftCell
}

func newContext(s *Scope) *Context {
	return &Context{
		scope: s,
		cell:  &draftCell{},
	}
}

// AutoIncrement returns a lazy value yielding the next number of the named
// sequence of the factory: 1, 2, 3, ... Sequences are independent per key;
// no key and "" share the default sequence. Multiple key parts are joined
// with ".".
//
// The counter only advances when the value is resolved, so an auto-increment
// replaced by an override never consumes a number.
func (c *Context) AutoIncrement(key ...string) *Lazy {
	name := strings.Join(key, ".")
	counters := c.scope.counters
	return newLazy(func() (any, error) {
		return counters.next(name), nil
	})
}

// ContextualValue returns a value derived from the finished draft of this
// context. fn runs after all layers have been merged, so it observes
// overrides applied on top of the build output.
func (c *Context) ContextualValue(fn ContextualFunc) *Contextual {
	return newContextual(fn, c.cell)
}

// Lazy defers fn until the outermost draft of the creation call resolves.
func (c *Context) Lazy(fn LazyFunc) *Lazy {
	return newLazy(fn)
}

// UUID returns a lazy random UUID string.
func (c *Context) UUID() *Lazy {
	return newLazy(func() (any, error) {
		return uuid.NewString(), nil
	})
}

// Scope returns the scope the context draws counters from.
func (c *Context) Scope() *Scope {
	return c.scope
}

package fixture

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Deferred is a value placed in a recipe tree whose concrete value is only
// known after the draft has been layered. The set of implementations is
// closed: *Lazy and *Contextual.
type Deferred interface {
	fmt.Stringer
	deferred()
}

// LazyFunc computes a lazy value.
type LazyFunc func() (any, error)

// ContextualFunc derives a value from the draft a contextual value belongs to.
type ContextualFunc func(f *Instance) (any, error)

// Lazy is a deferred value with no dependency on the draft. The outermost
// draft of the creation call evaluates it once per place it appears in the
// tree, and never if an override replaces it first.
type Lazy struct {
	fn     LazyFunc
	pinned bool
	value  any
	err    error
}

func newLazy(fn LazyFunc) *Lazy {
	return &Lazy{fn: fn}
}

// Get evaluates the thunk, or returns the pinned result once the value has
// been read through an Instance.
func (l *Lazy) Get() (any, error) {
	if l.pinned {
		return l.value, l.err
	}
	return l.fn()
}

// pin evaluates the thunk on first use and fixes the result, so a contextual
// value and the final fixture observe the same value.
func (l *Lazy) pin() (any, error) {
	if !l.pinned {
		l.value, l.err = l.fn()
		l.pinned = true
	}
	return l.value, l.err
}

// String evaluates the value. It panics if the thunk fails.
func (l *Lazy) String() string {
	v, err := l.Get()
	if err != nil {
		panic(err)
	}
	return fmt.Sprint(v)
}

func (*Lazy) deferred() {}

// Contextual is a deferred value computed from the finished draft of the
// context that created it. It is resolved regardless of draft depth.
type Contextual struct {
	fn        ContextualFunc
	cell      *draftCell
	resolving bool
}

func newContextual(fn ContextualFunc, cell *draftCell) *Contextual {
	return &Contextual{fn: fn, cell: cell}
}

// Get resolves the value against its draft, following chains of contextual
// values until a non-contextual value remains. It returns ErrDraftUnavailable
// while the owning draft has not been merged yet.
func (c *Contextual) Get() (any, error) {
	if !c.cell.ready() {
		return nil, errors.WithStack(ErrDraftUnavailable)
	}
	if c.resolving {
		return nil, errors.WithStack(ErrContextualCycle)
	}

	c.resolving = true
	defer func() { c.resolving = false }()

	v, err := c.fn(&Instance{cell: c.cell})
	if err != nil {
		return nil, err
	}
	if next, ok := v.(*Contextual); ok {
		return next.Get()
	}
	return v, nil
}

// String formats the resolved value. Formatting a contextual value before its
// draft exists is a recipe bug and panics with ErrDraftUnavailable.
func (c *Contextual) String() string {
	if !c.cell.ready() {
		panic(errors.Wrap(ErrDraftUnavailable, "contextual value cannot be printed before the draft has been created"))
	}
	v, err := c.Get()
	if err != nil {
		panic(err)
	}
	return fmt.Sprint(v)
}

func (*Contextual) deferred() {}

// draftCell is a set-once slot holding the layered draft of one context.
type draftCell struct {
	tree Tree
	set  bool
}

func (c *draftCell) assign(tree Tree) {
	c.tree = tree
	c.set = true
}

func (c *draftCell) ready() bool {
	return c != nil && c.set
}

func (c *draftCell) get() (Tree, error) {
	if !c.ready() {
		return nil, errors.WithStack(ErrDraftUnavailable)
	}
	return c.tree, nil
}

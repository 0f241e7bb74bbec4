package fixture

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Tree is the shape recipes build: keyed structures of plain values, nested
// trees, []any sequences and deferred values.
type Tree = map[string]any

// Instance is the read view of a draft handed to contextual functions.
type Instance struct {
	cell *draftCell
}

// Tree returns the layered draft as is, deferred values included.
func (i *Instance) Tree() Tree {
	tree, _ := i.cell.get()
	return tree
}

// Get walks path through the draft. Keys select entries of keyed structures
// and decimal indexes select sequence elements. Deferred values met on the
// way are resolved; reading a lazy value fixes it for the rest of the call.
func (i *Instance) Get(path ...string) (any, error) {
	tree, err := i.cell.get()
	if err != nil {
		return nil, err
	}

	var node any = tree
	for depth, key := range path {
		if node, err = force(node); err != nil {
			return nil, err
		}

		switch n := node.(type) {
		case Tree:
			v, ok := n[key]
			if !ok {
				return nil, errors.Wrapf(ErrPathNotFound, "%s", strings.Join(path[:depth+1], "."))
			}
			node = v
		case []any:
			idx, ok := sequenceIndex(key, len(n))
			if !ok {
				return nil, errors.Wrapf(ErrPathNotFound, "%s", strings.Join(path[:depth+1], "."))
			}
			node = n[idx]
		case []Tree:
			idx, ok := sequenceIndex(key, len(n))
			if !ok {
				return nil, errors.Wrapf(ErrPathNotFound, "%s", strings.Join(path[:depth+1], "."))
			}
			node = n[idx]
		default:
			return nil, errors.Wrapf(ErrPathNotFound, "cannot descend into %T at %s", node, strings.Join(path[:depth+1], "."))
		}
	}

	return force(node)
}

func sequenceIndex(key string, length int) (int, bool) {
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 || idx >= length {
		return 0, false
	}
	return idx, true
}

// Lookup reads path from the instance and asserts the result to V.
func Lookup[V any](i *Instance, path ...string) (V, error) {
	v, err := i.Get(path...)
	if err != nil {
		var zero V
		return zero, err
	}
	return SafeTypeAssertion[V](v)
}

// force resolves deferred values until a concrete value remains. Lazy values
// read this way are pinned for the rest of the call.
func force(node any) (any, error) {
	for {
		switch n := node.(type) {
		case *Contextual:
			v, err := n.Get()
			if err != nil {
				return nil, err
			}
			node = v
		case *Lazy:
			v, err := n.pin()
			if err != nil {
				return nil, err
			}
			node = v
		default:
			return node, nil
		}
	}
}

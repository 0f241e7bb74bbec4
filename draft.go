package fixture

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// draft is the layered, not yet resolved tree of one create call.
type draft struct {
	tree Tree
	// outermost is captured before the depth tracker is left, once nested
	// creations made during the build have returned.
	outermost bool
}

// newDraft layers, in increasing precedence, the build output, the recipe's
// override, each variant's override and each call-time override.
func newDraft[T any](s *Scope, r *Recipe[T], variants []*Recipe[T], overrides []OverrideFunc) (*draft, error) {
	ctx := newContext(s)

	s.depth.enter()
	defer s.depth.exit()

	var built Tree
	if r.build != nil {
		var err error
		if built, err = r.build(ctx); err != nil {
			return nil, err
		}
	}

	layers := make([]Tree, 0, len(variants)+2)
	layers = append(layers, built, r.override)
	for _, v := range variants {
		layers = append(layers, v.override)
	}
	template := mergeAll(layers...)

	for _, override := range overrides {
		if override == nil {
			continue
		}
		layer, err := override(ctx)
		if err != nil {
			return nil, err
		}
		template = mergeTrees(template, layer)
	}

	if template == nil {
		template = Tree{}
	}

	ctx.cell.assign(template)

	return &draft{
		tree:      template,
		outermost: s.depth.isOutermost(),
	}, nil
}

// toFixture replaces the deferred values of the draft with their values.
func (d *draft) toFixture() (Tree, error) {
	v, err := d.resolve(d.tree)
	if err != nil {
		return nil, err
	}
	return v.(Tree), nil
}

// resolve walks node, descending into trees, []any sequences and the []Tree
// batches returned by nested factories. Lazy values are only resolved by the
// outermost draft and are otherwise handed up unchanged. Contextual values are
// always resolved, unless they belong to an enclosing draft that is still
// being built. Keys are visited in sorted order so counters advance
// deterministically.
func (d *draft) resolve(node any) (any, error) {
	switch n := node.(type) {
	case *Lazy:
		if !d.outermost {
			return n, nil
		}
		v, err := n.Get()
		if err != nil {
			return nil, err
		}
		return d.resolve(v)

	case *Contextual:
		v, err := n.Get()
		if errors.Is(err, ErrDraftUnavailable) {
			return n, nil
		}
		if err != nil {
			return nil, err
		}
		return d.resolve(v)

	case []any:
		out := make([]any, len(n))
		for i, item := range n {
			v, err := d.resolve(item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case []Tree:
		out := make([]Tree, len(n))
		for i, item := range n {
			v, err := d.resolve(item)
			if err != nil {
				return nil, err
			}
			out[i] = v.(Tree)
		}
		return out, nil

	case Tree:
		keys := lo.Keys(n)
		slices.Sort(keys)

		out := make(Tree, len(n))
		for _, k := range keys {
			v, err := d.resolve(n[k])
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil

	default:
		return node, nil
	}
}

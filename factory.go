package fixture

import (
	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/samber/lo"
)

// Factory creates fixtures from a recipe within one scope.
type Factory[T any] struct {
	recipe   *Recipe[T]
	scope    *Scope
	variants []*Recipe[T]
}

func newFactory[T any](r *Recipe[T], s *Scope, variants []*Recipe[T]) *Factory[T] {
	return &Factory[T]{
		recipe:   r,
		scope:    s,
		variants: variants,
	}
}

// WithVariants returns a factory bound to the same recipe and scope that
// applies variants, in order, on top of the recipe. The receiver is
// unaffected. Calling it without variants logs a warning.
func (f *Factory[T]) WithVariants(variants ...*Recipe[T]) *VariantFactory[T] {
	if len(variants) == 0 {
		Logger().Warn("No variants provided to WithVariants()", "recipe", f.recipe.Name())
	}
	return &VariantFactory[T]{factory: newFactory(f.recipe, f.scope, variants)}
}

// CreateTree creates one fixture as a tree. Inside a build function it returns
// the nested tree with its lazy values still deferred; they are resolved by
// the outermost draft.
func (f *Factory[T]) CreateTree(overrides ...OverrideFunc) (Tree, error) {
	op := &Operation{
		Kind:     OpCreate,
		Recipe:   f.recipe,
		Scope:    f.scope,
		Nested:   f.scope.depth.level() > 0,
		Variants: len(f.variants),
	}

	result, err := f.scope.wrap(op, func() (any, error) {
		d, err := newDraft(f.scope, f.recipe, f.variants, overrides)
		if err != nil {
			return nil, err
		}
		return d.toFixture()
	})
	if err != nil {
		return nil, err
	}

	tree, _ := result.(Tree)
	return tree, nil
}

// Create creates one fixture and decodes it into T.
func (f *Factory[T]) Create(overrides ...OverrideFunc) (T, error) {
	tree, err := f.CreateTree(overrides...)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](f.recipe, tree)
}

// CreateMany creates a batch whose length is drawn from the configured array
// range.
func (f *Factory[T]) CreateMany(overrides ...OverrideFunc) ([]T, error) {
	return f.CreateN(randomLength(), overrides...)
}

// CreateN creates exactly n fixtures, one after the other, sharing the
// factory's counters.
func (f *Factory[T]) CreateN(n int, overrides ...OverrideFunc) ([]T, error) {
	return createBatch(f, n, f.Create, overrides)
}

// CreateTreeMany is CreateMany returning trees. Use it inside build functions.
func (f *Factory[T]) CreateTreeMany(overrides ...OverrideFunc) ([]Tree, error) {
	return f.CreateTreeN(randomLength(), overrides...)
}

// CreateTreeN is CreateN returning trees. Use it inside build functions: the
// trees keep their lazy values until the outermost draft resolves them.
func (f *Factory[T]) CreateTreeN(n int, overrides ...OverrideFunc) ([]Tree, error) {
	return createBatch(f, n, f.CreateTree, overrides)
}

func randomLength() int {
	cfg := CurrentConfig()
	return Between(cfg.Array.Min, cfg.Array.Max)
}

func createBatch[T, V any](f *Factory[T], n int, create func(...OverrideFunc) (V, error), overrides []OverrideFunc) ([]V, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "%d", n)
	}

	op := &Operation{
		Kind:     OpCreateMany,
		Recipe:   f.recipe,
		Scope:    f.scope,
		Nested:   f.scope.depth.level() > 0,
		Variants: len(f.variants),
		Count:    n,
	}

	result, err := f.scope.wrap(op, func() (any, error) {
		batch := make([]V, 0, n)
		for i := 0; i < n; i++ {
			v, err := create(overrides...)
			if err != nil {
				return nil, err
			}
			batch = append(batch, v)
		}
		return batch, nil
	})
	if err != nil {
		return nil, err
	}

	batch, _ := result.([]V)
	return batch, nil
}

// Scope returns the scope the factory creates fixtures in.
func (f *Factory[T]) Scope() *Scope {
	return f.scope
}

// Recipe returns the recipe the factory is bound to.
func (f *Factory[T]) Recipe() *Recipe[T] {
	return f.recipe
}

// VariantFactory is a factory with variants applied. It creates fixtures like
// Factory but cannot take further variants.
type VariantFactory[T any] struct {
	factory *Factory[T]
}

func (v *VariantFactory[T]) CreateTree(overrides ...OverrideFunc) (Tree, error) {
	return v.factory.CreateTree(overrides...)
}

func (v *VariantFactory[T]) Create(overrides ...OverrideFunc) (T, error) {
	return v.factory.Create(overrides...)
}

func (v *VariantFactory[T]) CreateMany(overrides ...OverrideFunc) ([]T, error) {
	return v.factory.CreateMany(overrides...)
}

func (v *VariantFactory[T]) CreateN(n int, overrides ...OverrideFunc) ([]T, error) {
	return v.factory.CreateN(n, overrides...)
}

func (v *VariantFactory[T]) CreateTreeN(n int, overrides ...OverrideFunc) ([]Tree, error) {
	return v.factory.CreateTreeN(n, overrides...)
}

func (v *VariantFactory[T]) CreateTreeMany(overrides ...OverrideFunc) ([]Tree, error) {
	return v.factory.CreateTreeMany(overrides...)
}

func (v *VariantFactory[T]) Scope() *Scope {
	return v.factory.scope
}

// Must returns v, panicking if err is not nil. Meant for test code.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// decode converts a resolved tree into T. Struct fields are matched by their
// `fixture` tag or, without a tag, case-insensitively by name. A tree still
// holding deferred values, as created inside a build function, cannot be
// decoded.
func decode[T any](r AnyRecipe, tree Tree) (T, error) {
	var out T
	if t, ok := any(tree).(T); ok {
		return t, nil
	}

	if holdsDeferred(tree) {
		return out, errors.Mark(
			errors.Newf("%s fixture holds unresolved values; use CreateTree, CreateTreeN or CreateTreeMany inside build functions", r.Name()),
			ErrDecode,
		)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &out,
		TagName: "fixture",
	})
	if err != nil {
		return out, errors.Mark(errors.Wrap(err, "creating decoder"), ErrDecode)
	}

	if err := dec.Decode(tree); err != nil {
		var zero T
		return zero, errors.Mark(errors.Wrapf(err, "decoding %s fixture into %T", r.Name(), out), ErrDecode)
	}

	return out, nil
}

func holdsDeferred(node any) bool {
	switch n := node.(type) {
	case Deferred:
		return true
	case []any:
		return lo.SomeBy(n, holdsDeferred)
	case []Tree:
		return lo.SomeBy(n, func(t Tree) bool { return holdsDeferred(t) })
	case Tree:
		return lo.SomeBy(lo.Values(n), holdsDeferred)
	default:
		return false
	}
}

package fixture

import "maps"

// BuildFunc builds the template tree of a recipe.
type BuildFunc func(ctx *Context) (Tree, error)

// OverrideFunc builds a call-time override layer. It receives the context of
// the draft being created, so it may use AutoIncrement, ContextualValue and
// nested recipes like a build function.
type OverrideFunc func(ctx *Context) (Tree, error)

// AnyRecipe is the type-erased view of a Recipe used by tags and extensions.
type AnyRecipe interface {
	Name() string
	GetTag(tag any) (any, bool)
	setTag(tag any, val any)
}

// RecipeOption is a modifier for recipes
type RecipeOption func(AnyRecipe)

// WithTag returns an option that sets a tag on a recipe
func WithTag[T any](tag Tag[T], val T) RecipeOption {
	return func(r AnyRecipe) {
		r.setTag(tag, val)
	}
}

// WithName returns an option that names a recipe for logs and extensions
func WithName(name string) RecipeOption {
	return WithTag(recipeNameTag, name)
}

// Recipe is an immutable template for fixtures of type T: a build function and
// an accumulated override layer. Its pointer identity keys nested factories,
// so variants derived from it are distinct recipes.
type Recipe[T any] struct {
	build    BuildFunc
	override Tree
	tags     map[any]any
}

// DefineRecipe creates a recipe from a build function.
func DefineRecipe[T any](build BuildFunc, opts ...RecipeOption) *Recipe[T] {
	r := &Recipe[T]{
		build: build,
		tags:  make(map[any]any),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Variant returns a new recipe sharing the build function, with override
// merged on top of the receiver's override layer. The receiver is unchanged.
func (r *Recipe[T]) Variant(override Tree, opts ...RecipeOption) *Recipe[T] {
	v := &Recipe[T]{
		build:    r.build,
		override: mergeTrees(r.override, override),
		tags:     maps.Clone(r.tags),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// CreateFactory binds the recipe to a fresh scope. Factories created this way
// never share counters.
func (r *Recipe[T]) CreateFactory(opts ...ScopeOption) *Factory[T] {
	return newFactory(r, NewScope(opts...), nil)
}

// Name returns the recipe's RecipeName tag, or "recipe" when unset.
func (r *Recipe[T]) Name() string {
	return recipeNameTag.GetOrDefault(r, "recipe")
}

// GetTag retrieves a tag value from the recipe
func (r *Recipe[T]) GetTag(tag any) (any, bool) {
	val, ok := r.tags[tag]
	return val, ok
}

func (r *Recipe[T]) setTag(tag any, val any) {
	r.tags[tag] = val
}

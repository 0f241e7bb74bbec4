package fixture

// Tag is a typed key for recipe metadata, such as the name shown in logs.
// Tags are compared by value, so two tags created with the same name and type
// address the same entry.
type Tag[T any] struct {
	name string
}

// NewTag creates a tag.
func NewTag[T any](name string) Tag[T] {
	return Tag[T]{name: name}
}

// Get reads the tag from r.
func (t Tag[T]) Get(r AnyRecipe) (T, bool) {
	v, ok := r.GetTag(t)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// GetOrDefault reads the tag from r, falling back to fallback when unset.
func (t Tag[T]) GetOrDefault(r AnyRecipe, fallback T) T {
	if v, ok := t.Get(r); ok {
		return v
	}
	return fallback
}

var recipeNameTag = NewTag[string]("recipe.name")

// RecipeName returns the tag holding a recipe's display name, set with
// WithName.
func RecipeName() Tag[string] {
	return recipeNameTag
}

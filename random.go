package fixture

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Between returns a uniformly distributed integer in [min, max]. It panics if
// min > max.
func Between(min, max int) int {
	if min > max {
		panic("fixture: Between called with min > max")
	}
	return min + rand.IntN(max-min+1)
}

// PickFrom returns one of values chosen uniformly. It panics if values is
// empty.
func PickFrom[T any](values ...T) T {
	if len(values) == 0 {
		panic(ErrEmptyCollection)
	}
	return lo.Sample(values)
}

// PickFromSet returns one of the distinct values of a labeled set, such as a
// map from constant names to constant values.
func PickFromSet[K cmp.Ordered, V comparable](set map[K]V) V {
	return PickFrom(Enumerate(set)...)
}

// Enumerate returns the distinct values of set ordered by their first label.
func Enumerate[K cmp.Ordered, V comparable](set map[K]V) []V {
	keys := lo.Keys(set)
	slices.Sort(keys)

	return lo.Uniq(lo.Map(keys, func(k K, _ int) V {
		return set[k]
	}))
}

// UUID returns a random UUID string.
func UUID() string {
	return uuid.NewString()
}

package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeTrees_LaterWinsAndNestedTreesMerge(t *testing.T) {
	dst := Tree{
		"name": "foo",
		"address": Tree{
			"line1":   "100 Foo St",
			"country": "US",
		},
	}
	src := Tree{
		"salary": 10,
		"address": Tree{
			"country": "Canada",
		},
	}

	got := mergeTrees(dst, src)

	assert.Equal(t, Tree{
		"name":   "foo",
		"salary": 10,
		"address": Tree{
			"line1":   "100 Foo St",
			"country": "Canada",
		},
	}, got)
}

func TestMergeTrees_SequencesAreReplaced(t *testing.T) {
	got := mergeTrees(Tree{"tags": []any{"a", "b", "c"}}, Tree{"tags": []any{"z"}})

	assert.Equal(t, Tree{"tags": []any{"z"}}, got)
}

func TestMergeTrees_ZeroAndNilValuesOverride(t *testing.T) {
	got := mergeTrees(Tree{"count": 5, "name": "foo", "ref": Tree{"id": 1}}, Tree{"count": 0, "name": "", "ref": nil})

	assert.Equal(t, Tree{"count": 0, "name": "", "ref": nil}, got)
}

func TestMergeTrees_DeferredValuesReplaceWholesale(t *testing.T) {
	lazy := newLazy(func() (any, error) { return 1, nil })

	got := mergeTrees(Tree{"id": Tree{"nested": true}}, Tree{"id": lazy})
	assert.Same(t, lazy, got["id"])

	got = mergeTrees(Tree{"id": lazy}, Tree{"id": Tree{"nested": true}})
	assert.Equal(t, Tree{"nested": true}, got["id"])
}

func TestMergeTrees_DoesNotMutateInputs(t *testing.T) {
	dst := Tree{"address": Tree{"country": "US"}}
	src := Tree{"address": Tree{"zip": 5000}, "extra": Tree{"k": "v"}}

	got := mergeTrees(dst, src)
	got["address"].(Tree)["country"] = "changed"
	got["extra"].(Tree)["k"] = "changed"

	assert.Equal(t, Tree{"address": Tree{"country": "US"}}, dst)
	assert.Equal(t, Tree{"address": Tree{"zip": 5000}, "extra": Tree{"k": "v"}}, src)
}

func TestMergeAll_FoldsLeftToRight(t *testing.T) {
	got := mergeAll(Tree{"a": 1, "b": 2}, nil, Tree{"b": 3}, Tree{"c": 4})

	assert.Equal(t, Tree{"a": 1, "b": 3, "c": 4}, got)
	assert.Nil(t, mergeAll())
}

package set_test

import (
	"sort"
	"testing"

	"github.com/akoltun/typed-array/set"
	"github.com/stretchr/testify/assert"
)

func TestHashSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := set.NewHashSet[string]()
		s.InsertSlice([]string{"foo", "bar", "baz", "123"})

		assert.True(t, s.Remove("bar"))

		items := s.Items()
		sort.Strings(items)

		assert.Equal(t, []string{"123", "baz", "foo"}, items)
	})

	t.Run("remove non existing item", func(t *testing.T) {
		s := set.NewHashSet[string]()
		s.InsertSlice([]string{"foo", "bar"})

		assert.False(t, s.Remove("baz"))
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Has("foo"))
		assert.True(t, s.Has("bar"))
	})
}

func TestHashSet_FromSlice(t *testing.T) {
	t.Run("duplicates are collapsed", func(t *testing.T) {
		s := set.FromSlice([]int{3, 1, 3, 2, 1})

		items := s.Items()
		sort.Ints(items)

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []int{1, 2, 3}, items)
	})

	t.Run("empty slice gives an empty set", func(t *testing.T) {
		s := set.FromSlice[int](nil)

		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Has(0))
	})
}

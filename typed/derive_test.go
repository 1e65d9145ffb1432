package typed_test

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/akoltun/typed-array/typed"
	"github.com/akoltun/typed-array/utils"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_Derive(t *testing.T) {
	for _, k := range itemKinds {
		item, declared := k.item, reflect.TypeOf(k.item)
		always := func(any) bool { return true }
		present := func(v any) bool { return v != nil }

		t.Run(k.name+" slice returns a typed array", func(t *testing.T) {
			a := mustOf(t, item)
			out, ok := a.Slice(0, 1)
			require.True(t, ok)
			assertArray(t, mustOf(t, item), out)
			assertArray(t, mustOf(t, item), a)
		})

		t.Run(k.name+" slice range returns a typed array", func(t *testing.T) {
			a := mustOf(t, item)
			out, ok := a.SliceRange(typed.Between(0, -1))
			require.True(t, ok)
			assertArray(t, mustOf(t, item), out)
			assertArray(t, mustOf(t, item), a)
		})

		t.Run(k.name+" at returns the raw item", func(t *testing.T) {
			v, ok := mustOf(t, item).At(0)
			assert.True(t, ok)
			assert.Equal(t, item, v)
		})

		t.Run(k.name+" reverse", func(t *testing.T) {
			a := mustOf(t, item, nil)
			assertArray(t, mustOf(t, nil, item), a.Reverse())
			assertArray(t, mustOf(t, item, nil), a)
		})

		t.Run(k.name+" rotate", func(t *testing.T) {
			assertArray(t, mustOf(t, item, nil, item), mustOf(t, item, item, nil).Rotate(1))
		})

		t.Run(k.name+" sort", func(t *testing.T) {
			a := mustOf(t, item, item)
			sorted := a.Sort(func(x, y any) int { return 0 })
			assertArray(t, mustOf(t, item, item), sorted)

			a.SortInPlace(func(x, y any) int { return 0 })
			assertArray(t, mustOf(t, item, item), a)
		})

		t.Run(k.name+" select", func(t *testing.T) {
			assertArray(t, mustOf(t, item, item), mustOf(t, item, item).Select(always))
		})

		t.Run(k.name+" values at", func(t *testing.T) {
			assertArray(t, mustNew(t, declared, nil, item), mustOf(t, item, nil, item).ValuesAt(1, 2))
		})

		t.Run(k.name+" reject", func(t *testing.T) {
			a := mustOf(t, item)
			assertArray(t, mustNew(t, declared), a.Reject(always))
			assertArray(t, mustOf(t, item), a)
		})

		t.Run(k.name+" plus adds items", func(t *testing.T) {
			out, err := mustOf(t, item).Plus(typed.Slice[any]{nil, item})
			require.NoError(t, err)
			assertArray(t, mustOf(t, item, nil, item), out)
		})

		t.Run(k.name+" plus rejects items of another type", func(t *testing.T) {
			a := mustOf(t, item)
			out, err := a.Plus(typed.Slice[any]{item, nil, wrong})
			assert.Nil(t, out)
			assertMismatch(t, err, item, wrong)
			assertArray(t, mustOf(t, item), a)
		})

		t.Run(k.name+" plus allows only nil items", func(t *testing.T) {
			out, err := mustOf(t, item).Plus(typed.Slice[any]{nil, nil})
			require.NoError(t, err)
			assertArray(t, mustOf(t, item, nil, nil), out)
		})

		t.Run(k.name+" repeat", func(t *testing.T) {
			assertArray(t, mustOf(t, item, item, item), mustOf(t, item).Repeat(3))
		})

		t.Run(k.name+" uniq", func(t *testing.T) {
			assertArray(t, mustOf(t, item), mustOf(t, item, item, item).Uniq())
			assertArray(t, mustOf(t, item), typed.UniqBy(mustOf(t, item, item, item), func(v any) any { return v }))
		})

		t.Run(k.name+" compact", func(t *testing.T) {
			assertArray(t, mustOf(t, item, item), mustOf(t, item, nil, item).Compact())
		})

		t.Run(k.name+" shuffle", func(t *testing.T) {
			shuffled := mustOf(t, item, nil, item).Shuffle()
			assert.Equal(t, declared, shuffled.Type())
			assert.Equal(t, 3, shuffled.Len())
		})

		t.Run(k.name+" sample returns an element", func(t *testing.T) {
			v, ok := mustOf(t, item, nil, item).Sample()
			assert.True(t, ok)
			assert.True(t, v == nil || reflect.TypeOf(v) == declared)
		})

		t.Run(k.name+" sample n returns a typed array", func(t *testing.T) {
			sampled := mustOf(t, item, nil, item).SampleN(2)
			assert.Equal(t, declared, sampled.Type())
			assert.Equal(t, 2, sampled.Len())
		})

		t.Run(k.name+" take", func(t *testing.T) {
			assertArray(t, mustOf(t, item, nil), mustOf(t, item, nil, item).Take(2))
		})

		t.Run(k.name+" take while", func(t *testing.T) {
			assertArray(t, mustOf(t, item), mustOf(t, item, nil, item).TakeWhile(present))
		})

		t.Run(k.name+" drop", func(t *testing.T) {
			assertArray(t, mustOf(t, nil, item), mustOf(t, item, nil, item).Drop(1))
		})

		t.Run(k.name+" drop while", func(t *testing.T) {
			assertArray(t, mustOf(t, nil, item), mustOf(t, item, nil, item).DropWhile(present))
		})
	}
}

func TestArray_DerivedKeepTypeWhenEmpty(t *testing.T) {
	declared := reflect.TypeOf("")
	a := mustNew(t, declared, "a", nil, "b")
	never := func(any) bool { return false }
	always := func(any) bool { return true }

	derived := map[string]*typed.Array[any]{
		"slice":      must(a.Slice(3, 2)),
		"reverse":    mustNew(t, declared).Reverse(),
		"rotate":     mustNew(t, declared).Rotate(3),
		"sort":       mustNew(t, declared).Sort(func(x, y any) int { return 0 }),
		"select":     a.Select(never),
		"reject":     a.Reject(always),
		"values at":  a.ValuesAt(),
		"uniq":       mustNew(t, declared).Uniq(),
		"compact":    mustNew(t, declared, nil, nil).Compact(),
		"take":       a.Take(0),
		"drop":       a.Drop(5),
		"take while": a.TakeWhile(never),
		"drop while": a.DropWhile(always),
		"repeat":     a.Repeat(0),
		"sample n":   a.SampleN(0),
		"minus":      a.Minus(a),
		"intersect":  a.Intersect(typed.Slice[any]{"z"}),
		"pop n":      a.Clone().PopN(0),
		"shift n":    a.Clone().ShiftN(0),
		"extract if": a.Clone().ExtractIf(never),
	}

	for name, out := range derived {
		t.Run(name, func(t *testing.T) {
			require.NotNil(t, out)
			assert.Equal(t, declared, out.Type())
			assert.Equal(t, 0, out.Len())
		})
	}
}

func must[T any](v T, ok bool) T {
	if !ok {
		panic("unexpected miss")
	}
	return v
}

func TestArray_Slice(t *testing.T) {
	a := mustOf(t, 1, 2, 3, 4)

	cases := []struct {
		name          string
		start, length int
		want          []any
		ok            bool
	}{
		{name: "from the start", start: 0, length: 2, want: []any{1, 2}, ok: true},
		{name: "negative start", start: -2, length: 5, want: []any{3, 4}, ok: true},
		{name: "start at the end", start: 4, length: 1, want: []any{}, ok: true},
		{name: "start past the end", start: 5, length: 1, ok: false},
		{name: "start before the beginning", start: -5, length: 1, ok: false},
		{name: "negative length", start: 0, length: -1, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, ok := a.Slice(tc.start, tc.length)
			require.Equal(t, tc.ok, ok)
			if !ok {
				assert.Nil(t, out)
				return
			}

			if diff := cmp.Diff(tc.want, out.Items()); diff != "" {
				t.Errorf("slice mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("ranges", func(t *testing.T) {
		out, ok := a.SliceRange(typed.Until(1, -1))
		require.True(t, ok)
		assert.Equal(t, []any{2, 3}, out.Items())

		out, ok = a.SliceRange(typed.Between(2, 0))
		require.True(t, ok)
		assert.Equal(t, 0, out.Len())

		_, ok = a.SliceRange(typed.Between(-9, 1))
		assert.False(t, ok)
	})
}

func TestArray_Order(t *testing.T) {
	t.Run("rotate both ways", func(t *testing.T) {
		a := mustOf(t, 1, 2, 3)
		assert.Equal(t, []any{2, 3, 1}, a.Rotate(1).Items())
		assert.Equal(t, []any{3, 1, 2}, a.Rotate(-1).Items())
		assert.Equal(t, []any{1, 2, 3}, a.Rotate(3).Items())
		assert.Equal(t, []any{3, 1, 2}, a.Rotate(5).Items())
	})

	t.Run("sort is stable", func(t *testing.T) {
		a := mustOf(t, "bb", "a", "cc", "b")
		sorted := a.Sort(func(x, y any) int {
			return len(x.(string)) - len(y.(string))
		})
		assert.Equal(t, []any{"a", "b", "bb", "cc"}, sorted.Items())
	})

	t.Run("sort ordered", func(t *testing.T) {
		a, err := typed.Of(3, 1, 2)
		require.NoError(t, err)

		assert.Equal(t, []int{1, 2, 3}, typed.SortOrdered(a, utils.AscOrder).Items())
		assert.Equal(t, []int{3, 2, 1}, typed.SortOrdered(a, utils.DescOrder).Items())
		assert.Equal(t, []int{3, 1, 2}, a.Items())
	})

	t.Run("sort by key", func(t *testing.T) {
		a := mustOf(t, "ccc", "a", "bb")
		sorted := typed.SortBy(a, func(v any) int { return len(v.(string)) })
		assert.Equal(t, []any{"a", "bb", "ccc"}, sorted.Items())
		assert.Equal(t, reflect.TypeOf(""), sorted.Type())
	})

	t.Run("uniq by key keeps the first occurrence", func(t *testing.T) {
		a := mustOf(t, "Go", "go", "GO", "rust")
		uniq := typed.UniqBy(a, func(v any) string { return strings.ToLower(v.(string)) })
		assert.Equal(t, []any{"Go", "rust"}, uniq.Items())
	})
}

func TestArray_Random(t *testing.T) {
	t.Run("seeded sources give the same result", func(t *testing.T) {
		items := []any{1, 2, 3, 4, 5, 6, 7, 8}
		a1, err := typed.Infer(items, typed.WithRand(rand.New(rand.NewSource(42))))
		require.NoError(t, err)
		a2, err := typed.Infer(items, typed.WithRand(rand.New(rand.NewSource(42))))
		require.NoError(t, err)

		assert.Equal(t, a1.Shuffle().Items(), a2.Shuffle().Items())
		assert.Equal(t, a1.SampleN(3).Items(), a2.SampleN(3).Items())
	})

	t.Run("shuffle uses the configured source", func(t *testing.T) {
		a, err := typed.Infer([]any{1, 2, 3}, typed.WithRand(fixedSource{}))
		require.NoError(t, err)

		assert.Equal(t, []any{3, 2, 1}, a.Shuffle().Items())
		assert.Equal(t, []any{1, 2, 3}, a.Items())
	})

	t.Run("sample n picks distinct positions", func(t *testing.T) {
		a := mustOf(t, 1, 2, 3, 4, 5)
		sampled := a.SampleN(5)
		assert.ElementsMatch(t, []any{1, 2, 3, 4, 5}, sampled.Items())

		assert.Equal(t, 5, a.SampleN(10).Len())
		assert.Equal(t, 0, a.SampleN(-1).Len())
	})

	t.Run("sample n with the fixed source", func(t *testing.T) {
		a, err := typed.Infer([]any{1, 2, 3}, typed.WithRand(fixedSource{}))
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2}, a.SampleN(2).Items())
	})

	t.Run("sample of an empty array", func(t *testing.T) {
		_, ok := mustNew(t, reflect.TypeOf(0)).Sample()
		assert.False(t, ok)
	})
}

func TestArray_Compact(t *testing.T) {
	t.Run("compact is idempotent", func(t *testing.T) {
		a := mustOf(t, nil, 1, nil, 2, nil)
		once := a.Compact()
		twice := once.Compact()

		assertArray(t, once, twice)
		assert.Equal(t, []any{1, 2}, twice.Items())
	})

	t.Run("nil pointers are dropped", func(t *testing.T) {
		p := &point{X: 1}
		a, err := typed.Of(p, nil, (*point)(nil))
		require.NoError(t, err)

		assert.Equal(t, []*point{p}, a.Compact().Items())
	})
}

func TestArray_Chunks(t *testing.T) {
	a := mustOf(t, 1, 2, nil, 4, 5)

	t.Run("partition", func(t *testing.T) {
		matched, rest := a.Partition(func(v any) bool { return v == nil })
		assertArray(t, mustNew(t, reflect.TypeOf(0), nil), matched)
		assertArray(t, mustOf(t, 1, 2, 4, 5), rest)
	})

	t.Run("each slice", func(t *testing.T) {
		chunks, err := a.EachSlice(2)
		require.NoError(t, err)
		require.Len(t, chunks, 3)
		assertArray(t, mustOf(t, 1, 2), chunks[0])
		assertArray(t, mustNew(t, reflect.TypeOf(0), nil, 4), chunks[1])
		assertArray(t, mustOf(t, 5), chunks[2])

		_, err = a.EachSlice(0)
		assert.ErrorIs(t, err, typed.ErrInvalidSize)
	})

	t.Run("each cons", func(t *testing.T) {
		windows, err := a.EachCons(3)
		require.NoError(t, err)
		require.Len(t, windows, 3)
		assertArray(t, mustOf(t, 1, 2, nil), windows[0])
		assertArray(t, mustOf(t, 2, nil, 4), windows[1])
		assertArray(t, mustOf(t, nil, 4, 5), windows[2])

		windows, err = a.EachCons(6)
		require.NoError(t, err)
		assert.Empty(t, windows)

		_, err = a.EachCons(-1)
		assert.ErrorIs(t, err, typed.ErrInvalidSize)
	})

	t.Run("group by", func(t *testing.T) {
		groups := typed.GroupBy(a, func(v any) string {
			if v == nil {
				return "absent"
			}
			if v.(int)%2 == 0 {
				return "even"
			}
			return "odd"
		})

		assert.Equal(t, []string{"odd", "even", "absent"}, groups.Keys())
		assertArray(t, mustOf(t, 1, 5), groups.Get("odd"))
		assertArray(t, mustOf(t, 2, 4), groups.Get("even"))
		assertArray(t, mustNew(t, reflect.TypeOf(0), nil), groups.Get("absent"))
	})
}

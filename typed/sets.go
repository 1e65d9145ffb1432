package typed

import (
	"reflect"

	"github.com/akoltun/typed-array/set"

	"go.uber.org/zap"
)

// Uniq drops repeated items keeping first occurrences.
func (a *Array[T]) Uniq() *Array[T] {
	return a.derive(a.uniq())
}

func (a *Array[T]) uniq() []T {
	seen := set.NewOrderedSet[T]()
	seen.InsertSlice(a.items)
	return seen.Items()
}

// UniqBy drops items whose key was already seen.
func UniqBy[T, K comparable](a *Array[T], key func(item T) K) *Array[T] {
	seen := set.NewHashSet[K]()
	items := make([]T, 0, len(a.items))
	for _, item := range a.items {
		if seen.Insert(key(item)) {
			items = append(items, item)
		}
	}
	return a.derive(items)
}

// Minus returns the items that do not occur in other.
func (a *Array[T]) Minus(other Sequence[T]) *Array[T] {
	exclude := set.FromSlice(hashable(itemsOf(other)))
	return a.Reject(func(item T) bool {
		return isHashable(item) && exclude.Has(item)
	})
}

// Intersect returns the distinct items that occur in both arrays,
// in the order of a.
func (a *Array[T]) Intersect(other Sequence[T]) *Array[T] {
	include := set.FromSlice(hashable(itemsOf(other)))
	common := set.NewOrderedSet[T]()
	for _, item := range a.items {
		if isHashable(item) && include.Has(item) {
			common.Insert(item)
		}
	}
	return a.derive(common.Items())
}

// Union returns the distinct items of both operands. The result is an Array
// only when other is an Array of the same declared type, otherwise it is
// a plain Slice. Items that cannot be compared are kept as they come.
func (a *Array[T]) Union(other Sequence[T]) Sequence[T] {
	seen := set.NewHashSet[T]()
	all := make([]T, 0, len(a.items))
	for _, items := range [][]T{a.items, itemsOf(other)} {
		for _, item := range items {
			if !isHashable(item) || seen.Insert(item) {
				all = append(all, item)
			}
		}
	}

	if a.sameType(other) {
		return a.derive(all)
	}

	a.config().logger.Debug("type degraded", zap.String("op", "union"), zap.Stringer("declared", a.Type()))
	return Slice[T](all)
}

// isHashable reports whether item can be used as a map key without panicking.
// Foreign items of a plain sequence may hold slices, maps or funcs.
func isHashable[T any](item T) bool {
	v := reflect.ValueOf(item)
	return !v.IsValid() || v.Comparable()
}

func hashable[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if isHashable(item) {
			out = append(out, item)
		}
	}
	return out
}

package typed

import (
	"github.com/akoltun/typed-array/orderedmap"
	"github.com/akoltun/typed-array/queue"
	"github.com/akoltun/typed-array/utils"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Slice returns length items from start, negative start counts from the end.
func (a *Array[T]) Slice(start, length int) (*Array[T], bool) {
	start, length, ok := bounds(len(a.items), start, length)
	if !ok {
		return nil, false
	}

	return a.derive(slices.Clone(a.items[start : start+length])), true
}

// SliceRange returns the items within r.
func (a *Array[T]) SliceRange(r Range) (*Array[T], bool) {
	start, length, ok := r.resolve(len(a.items))
	if !ok {
		return nil, false
	}

	return a.Slice(start, length)
}

func (a *Array[T]) Clone() *Array[T] {
	return a.derive(slices.Clone(a.items))
}

func (a *Array[T]) Reverse() *Array[T] {
	items := slices.Clone(a.items)
	slices.Reverse(items)
	return a.derive(items)
}

// Rotate moves the first n items to the end, a negative n rotates the other way.
func (a *Array[T]) Rotate(n int) *Array[T] {
	return a.derive(a.rotated(n))
}

func (a *Array[T]) rotated(n int) []T {
	l := len(a.items)
	items := make([]T, 0, l)
	if l == 0 {
		return items
	}

	k := (n%l + l) % l
	items = append(items, a.items[k:]...)
	return append(items, a.items[:k]...)
}

// Sort is a stable sort by cmp.
func (a *Array[T]) Sort(cmp func(x, y T) int) *Array[T] {
	items := slices.Clone(a.items)
	slices.SortStableFunc(items, cmp)
	return a.derive(items)
}

// SortOrdered sorts an array of ordered items in the given order.
func SortOrdered[T constraints.Ordered](a *Array[T], order utils.Order) *Array[T] {
	return a.Sort(func(x, y T) int {
		if order == utils.DescOrder {
			x, y = y, x
		}
		return compare(x, y)
	})
}

// SortBy sorts items by the key computed for each of them.
func SortBy[T comparable, K constraints.Ordered](a *Array[T], key func(item T) K) *Array[T] {
	return a.Sort(func(x, y T) int {
		return compare(key(x), key(y))
	})
}

func compare[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (a *Array[T]) Select(pred Predicate[T]) *Array[T] {
	_, matched := split(a.items, pred)
	return a.derive(matched)
}

func (a *Array[T]) Reject(pred Predicate[T]) *Array[T] {
	rest, _ := split(a.items, pred)
	return a.derive(rest)
}

// Partition splits items into the ones matching pred and the rest.
func (a *Array[T]) Partition(pred Predicate[T]) (matched, rest *Array[T]) {
	r, m := split(a.items, pred)
	return a.derive(m), a.derive(r)
}

// ValuesAt picks items by index, an index out of range gives a zero value.
// That value is absent only for interface and pointer element types.
func (a *Array[T]) ValuesAt(indexes ...int) *Array[T] {
	items := make([]T, 0, len(indexes))
	for _, i := range indexes {
		item, _ := a.At(i)
		items = append(items, item)
	}
	return a.derive(items)
}

// Compact drops absent items.
func (a *Array[T]) Compact() *Array[T] {
	return a.Reject(isAbsent[T])
}

func (a *Array[T]) Shuffle() *Array[T] {
	out := a.Clone()
	out.ShuffleInPlace()
	return out
}

// Sample returns a random item.
func (a *Array[T]) Sample() (T, bool) {
	if len(a.items) == 0 {
		return utils.GetZero[T](), false
	}

	return a.items[a.config().rand.Intn(len(a.items))], true
}

// SampleN returns up to n items taken from distinct random positions.
func (a *Array[T]) SampleN(n int) *Array[T] {
	l := len(a.items)
	n = min(max(n, 0), l)

	positions := make([]int, l)
	for i := range positions {
		positions[i] = i
	}

	rnd := a.config().rand
	items := make([]T, 0, n)
	for i := 0; i < n; i++ {
		j := i + rnd.Intn(l-i)
		positions[i], positions[j] = positions[j], positions[i]
		items = append(items, a.items[positions[i]])
	}
	return a.derive(items)
}

// Plus returns a new array with the items of other appended.
func (a *Array[T]) Plus(other Sequence[T]) (*Array[T], error) {
	items := itemsOf(other)
	if err := a.validate("plus", items); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(a.items)+len(items))
	out = append(out, a.items...)
	return a.derive(append(out, items...)), nil
}

// Repeat returns the items repeated n times.
func (a *Array[T]) Repeat(n int) *Array[T] {
	n = max(n, 0)
	items := make([]T, 0, len(a.items)*n)
	for i := 0; i < n; i++ {
		items = append(items, a.items...)
	}
	return a.derive(items)
}

// Take returns the first n items.
func (a *Array[T]) Take(n int) *Array[T] {
	n = min(max(n, 0), len(a.items))
	return a.derive(slices.Clone(a.items[:n]))
}

// Drop returns the items after the first n.
func (a *Array[T]) Drop(n int) *Array[T] {
	n = min(max(n, 0), len(a.items))
	return a.derive(slices.Clone(a.items[n:]))
}

// TakeWhile returns the items before the first one not matching pred.
func (a *Array[T]) TakeWhile(pred Predicate[T]) *Array[T] {
	return a.Take(a.prefix(pred))
}

// DropWhile returns the items from the first one not matching pred.
func (a *Array[T]) DropWhile(pred Predicate[T]) *Array[T] {
	return a.Drop(a.prefix(pred))
}

func (a *Array[T]) prefix(pred Predicate[T]) int {
	i := slices.IndexFunc(a.items, func(item T) bool {
		return !pred(item)
	})
	if i < 0 {
		return len(a.items)
	}
	return i
}

// EachSlice cuts items into consecutive chunks of size, the last one may be shorter.
func (a *Array[T]) EachSlice(size int) ([]*Array[T], error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "typed: each slice %d", size)
	}

	chunks := make([]*Array[T], 0, (len(a.items)+size-1)/size)
	for start := 0; start < len(a.items); start += size {
		end := min(start+size, len(a.items))
		chunks = append(chunks, a.derive(slices.Clone(a.items[start:end])))
	}
	return chunks, nil
}

// EachCons returns every window of size consecutive items.
func (a *Array[T]) EachCons(size int) ([]*Array[T], error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "typed: each cons %d", size)
	}

	window := queue.NewRing[T](size)
	windows := make([]*Array[T], 0, max(len(a.items)-size+1, 0))
	for _, item := range a.items {
		if window.IsFull() {
			if _, err := window.Dequeue(); err != nil {
				return nil, err
			}
		}

		if err := window.Enqueue(item); err != nil {
			return nil, err
		}

		if window.IsFull() {
			windows = append(windows, a.derive(window.Items()))
		}
	}
	return windows, nil
}

// GroupBy groups items by key, groups and keys keep the order of first appearance.
func GroupBy[T, K comparable](a *Array[T], key func(item T) K) *orderedmap.OrderedMap[K, *Array[T]] {
	groups := orderedmap.NewOrderedMap[K, *Array[T]]()
	for _, item := range a.items {
		k := key(item)
		group, ok := groups.HasGet(k)
		if !ok {
			group = a.derive(nil)
			groups.Set(k, group)
		}
		group.items = append(group.items, item)
	}
	return groups
}

package typed

import (
	"github.com/akoltun/typed-array/utils"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Push appends items to the end.
func (a *Array[T]) Push(items ...T) error {
	if err := a.validate("push", items); err != nil {
		return err
	}

	a.items = append(a.items, items...)
	return nil
}

// Concat appends the items of other to the end.
func (a *Array[T]) Concat(other Sequence[T]) error {
	items := itemsOf(other)
	if err := a.validate("concat", items); err != nil {
		return err
	}

	a.items = append(a.items, items...)
	return nil
}

// Unshift prepends items to the beginning.
func (a *Array[T]) Unshift(items ...T) error {
	if err := a.validate("unshift", items); err != nil {
		return err
	}

	a.items = slices.Insert(a.items, 0, items...)
	return nil
}

// Insert puts items before index. A negative index counts from the end
// and inserts after the item it points to, so -1 appends.
// An index past the end pads the gap with zero values, which are absent
// only for interface and pointer element types (an Array[int] pads with 0).
func (a *Array[T]) Insert(index int, items ...T) error {
	if err := a.validate("insert", items); err != nil {
		return err
	}

	if len(items) == 0 {
		return nil
	}

	n := len(a.items)
	if index < 0 {
		index += n + 1
		if index < 0 {
			return errors.Wrapf(ErrIndexOutOfRange, "typed: insert at %d", index-n-1)
		}
	}

	items = slices.Clone(items)
	if index >= n {
		a.pad(index)
		a.items = append(a.items, items...)
		return nil
	}

	a.items = slices.Insert(a.items, index, items...)
	return nil
}

// Set assigns item to the slot at index, padding with zero values
// when index is past the end. The padding is absent only for interface
// and pointer element types, an Array[int] pads with 0.
func (a *Array[T]) Set(index int, item T) error {
	if err := a.validate("set", []T{item}); err != nil {
		return err
	}

	start, _, err := writeBounds(len(a.items), index, 1)
	if err != nil {
		return err
	}

	if start >= len(a.items) {
		a.pad(start)
		a.items = append(a.items, item)
		return nil
	}

	a.items[start] = item
	return nil
}

// SetSlice replaces length items from start with the items of other.
func (a *Array[T]) SetSlice(start, length int, other Sequence[T]) error {
	items := itemsOf(other)
	if err := a.validate("set slice", items); err != nil {
		return err
	}

	start, length, err := writeBounds(len(a.items), start, length)
	if err != nil {
		return err
	}

	a.splice(start, length, slices.Clone(items))
	return nil
}

// SetRange replaces the items within r with the items of other.
func (a *Array[T]) SetRange(r Range, other Sequence[T]) error {
	items := itemsOf(other)
	if err := a.validate("set range", items); err != nil {
		return err
	}

	start, length, ok := r.resolve(len(a.items))
	if !ok {
		return errors.Wrapf(ErrIndexOutOfRange, "typed: range %d..%d", r.Start, r.End)
	}

	a.splice(start, length, slices.Clone(items))
	return nil
}

// Replace swaps the whole content for the items of other,
// the declared type stays the same.
func (a *Array[T]) Replace(other Sequence[T]) error {
	items := itemsOf(other)
	if err := a.validate("replace", items); err != nil {
		return err
	}

	a.items = slices.Clone(items)
	return nil
}

// Fill assigns item to every slot.
func (a *Array[T]) Fill(item T) error {
	if err := a.validate("fill", []T{item}); err != nil {
		return err
	}

	for i := range a.items {
		a.items[i] = item
	}
	return nil
}

// FillSlice assigns item to length slots from start, growing the array if needed.
func (a *Array[T]) FillSlice(item T, start, length int) error {
	if err := a.validate("fill", []T{item}); err != nil {
		return err
	}

	if start < 0 {
		start = max(start+len(a.items), 0)
	}

	if length <= 0 {
		return nil
	}

	a.pad(start + length)
	for i := start; i < start+length; i++ {
		a.items[i] = item
	}
	return nil
}

// FillFunc assigns fn(i) to every slot i. All values are computed
// and checked before the first one is stored.
func (a *Array[T]) FillFunc(fn func(index int) T) error {
	values := make([]T, len(a.items))
	for i := range values {
		values[i] = fn(i)
	}

	if err := a.validate("fill", values); err != nil {
		return err
	}

	a.items = values
	return nil
}

// pad grows the array with zero values up to n items.
func (a *Array[T]) pad(n int) {
	if n > len(a.items) {
		a.items = append(a.items, make([]T, n-len(a.items))...)
	}
}

func (a *Array[T]) splice(start, length int, items []T) {
	n := len(a.items)
	if start >= n {
		a.pad(start)
		a.items = append(a.items, items...)
		return
	}

	if length > n-start {
		length = n - start
	}

	a.items = slices.Replace(a.items, start, start+length, items...)
}

func (a *Array[T]) Clear() {
	clear(a.items)
	a.items = a.items[:0]
}

// Delete removes every occurrence of item and reports whether there was any.
func (a *Array[T]) Delete(item T) bool {
	n := len(a.items)
	a.items = slices.DeleteFunc(a.items, func(v T) bool {
		return v == item
	})
	return len(a.items) < n
}

// DeleteAt removes and returns the item at index.
func (a *Array[T]) DeleteAt(index int) (T, bool) {
	if index < 0 {
		index += len(a.items)
	}

	if index < 0 || index >= len(a.items) {
		return utils.GetZero[T](), false
	}

	item := a.items[index]
	a.items = slices.Delete(a.items, index, index+1)
	return item, true
}

// DeleteIf removes the items matching pred and returns how many were removed.
func (a *Array[T]) DeleteIf(pred Predicate[T]) int {
	n := len(a.items)
	a.items = slices.DeleteFunc(a.items, pred)
	return n - len(a.items)
}

// KeepIf removes the items not matching pred and returns how many were removed.
func (a *Array[T]) KeepIf(pred Predicate[T]) int {
	return a.DeleteIf(func(item T) bool {
		return !pred(item)
	})
}

// ExtractIf removes the items matching pred and returns them.
func (a *Array[T]) ExtractIf(pred Predicate[T]) *Array[T] {
	kept, removed := split(a.items, pred)
	a.items = kept
	return a.derive(removed)
}

// Pop removes and returns the last item.
func (a *Array[T]) Pop() (T, bool) {
	return a.DeleteAt(-1)
}

// PopN removes and returns up to n items from the end.
func (a *Array[T]) PopN(n int) *Array[T] {
	n = min(max(n, 0), len(a.items))
	out, _ := a.SliceOut(len(a.items)-n, n)
	return out
}

// Shift removes and returns the first item.
func (a *Array[T]) Shift() (T, bool) {
	return a.DeleteAt(0)
}

// ShiftN removes and returns up to n items from the beginning.
func (a *Array[T]) ShiftN(n int) *Array[T] {
	out, _ := a.SliceOut(0, max(n, 0))
	return out
}

// SliceOut removes length items from start and returns them.
func (a *Array[T]) SliceOut(start, length int) (*Array[T], bool) {
	start, length, ok := bounds(len(a.items), start, length)
	if !ok {
		return nil, false
	}

	out := slices.Clone(a.items[start : start+length])
	a.items = slices.Delete(a.items, start, start+length)
	return a.derive(out), true
}

// SliceOutRange removes the items within r and returns them.
func (a *Array[T]) SliceOutRange(r Range) (*Array[T], bool) {
	start, length, ok := r.resolve(len(a.items))
	if !ok {
		return nil, false
	}

	return a.SliceOut(start, length)
}

func (a *Array[T]) ReverseInPlace() {
	slices.Reverse(a.items)
}

func (a *Array[T]) RotateInPlace(n int) {
	copy(a.items, a.rotated(n))
}

// SortInPlace is a stable sort by cmp.
func (a *Array[T]) SortInPlace(cmp func(x, y T) int) {
	slices.SortStableFunc(a.items, cmp)
}

func (a *Array[T]) ShuffleInPlace() {
	a.config().rand.Shuffle(len(a.items), func(i, j int) {
		a.items[i], a.items[j] = a.items[j], a.items[i]
	})
}

// UniqInPlace drops repeated items and reports whether any was dropped.
func (a *Array[T]) UniqInPlace() bool {
	uniq := a.uniq()
	changed := len(uniq) < len(a.items)
	a.items = uniq
	return changed
}

// CompactInPlace drops absent items and reports whether any was dropped.
func (a *Array[T]) CompactInPlace() bool {
	n := len(a.items)
	a.items = slices.DeleteFunc(a.items, isAbsent[T])
	return len(a.items) < n
}

func split[T any](items []T, pred Predicate[T]) (rest, matched []T) {
	rest = make([]T, 0, len(items))
	matched = make([]T, 0)
	for _, item := range items {
		if pred(item) {
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}
	return rest, matched
}

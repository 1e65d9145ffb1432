package set

// Set is a collection of unique comparable items.
// Typed arrays use it for dedupe and membership checks.
type Set[T comparable] interface {
	Insert(item T) (modified bool)
	InsertSlice(items []T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Items() []T
	Len() int
}

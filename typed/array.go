// Package typed provides Array, a resizable sequence that only accepts
// items of one declared type. Absent items (nil interfaces and nil pointers)
// are accepted for any declared type.
//
// Every write checks the incoming items before the array changes, and every
// operation that builds a new array from an existing one hands the declared
// type over to the result instead of inferring it again.
package typed

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/akoltun/typed-array/set"
	"github.com/akoltun/typed-array/utils"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

type (
	// Sequence is anything that can hand over its items in order.
	Sequence[T any] interface {
		Items() []T
	}

	// Slice is a plain sequence without a declared type.
	Slice[T any] []T

	// Array is a sequence whose present items all share one declared type.
	// The zero value of an Array over a concrete T is an empty Array of T.
	// Array is not safe for concurrent use.
	Array[T comparable] struct {
		declared reflect.Type
		items    []T
		cfg      *config
	}

	Predicate[T any] func(item T) bool
)

var (
	_ Sequence[any] = (*Array[any])(nil)
	_ Sequence[any] = Slice[any](nil)
)

func (s Slice[T]) Items() []T {
	return s
}

// New creates an array of the declared type holding a copy of items.
func New[T comparable](declared reflect.Type, items []T, options ...Option) (*Array[T], error) {
	if err := checkDeclared[T](declared); err != nil {
		return nil, err
	}

	a := &Array[T]{declared: declared, cfg: newConfig(options)}
	if err := a.validate("new", items); err != nil {
		return nil, err
	}

	a.items = slices.Clone(items)
	return a, nil
}

// Infer creates an array whose declared type is the type of its present items.
func Infer[T comparable](items []T, options ...Option) (*Array[T], error) {
	types := set.NewOrderedSet[reflect.Type]()
	for _, item := range items {
		if !isAbsent(item) {
			types.Insert(reflect.TypeOf(item))
		}
	}

	switch types.Len() {
	case 0:
		return nil, errors.Wrap(ErrEmptyTypeSet, "typed: infer")
	case 1:
		return New(types.Items()[0], items, options...)
	default:
		return nil, errors.Wrapf(ErrAmbiguousType, "typed: infer %v", types.Items())
	}
}

// Of is Infer over variadic items.
func Of[T comparable](items ...T) (*Array[T], error) {
	return Infer(items)
}

func checkDeclared[T any](declared reflect.Type) error {
	if declared == nil {
		return errors.Wrap(ErrNilType, "typed: new")
	}

	if !declared.Comparable() {
		return errors.Wrapf(ErrIncomparableType, "typed: new %s", declared)
	}

	// interfaces are never the dynamic type of a value
	if declared.Kind() == reflect.Interface || !declared.AssignableTo(reflect.TypeFor[T]()) {
		return errors.Wrapf(ErrIncompatibleType, "typed: new %s in %s", declared, reflect.TypeFor[T]())
	}

	return nil
}

// isAbsent reports whether item is a nil interface or a nil pointer.
func isAbsent[T any](item T) bool {
	v := reflect.ValueOf(item)
	if !v.IsValid() {
		return true
	}

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Type returns the declared type, nil for a zero value Array over an interface.
func (a *Array[T]) Type() reflect.Type {
	if a.declared == nil {
		if t := reflect.TypeFor[T](); t.Kind() != reflect.Interface {
			return t
		}
	}

	return a.declared
}

func (a *Array[T]) config() *config {
	if a.cfg == nil {
		return defaultConfig
	}

	return a.cfg
}

// validate checks every item against the declared type,
// it must run before any write touches the storage.
func (a *Array[T]) validate(op string, items []T) error {
	declared := a.Type()
	if declared == nil {
		return errors.Wrapf(ErrUntyped, "typed: %s", op)
	}

	for i, item := range items {
		if isAbsent(item) {
			continue
		}

		if actual := reflect.TypeOf(item); actual != declared {
			return a.reject(op, actual, i)
		}
	}

	return nil
}

func (a *Array[T]) reject(op string, actual reflect.Type, index int) error {
	declared := a.Type()
	a.config().logger.Debug("rejected write",
		zap.String("op", op),
		zap.Stringer("expected", declared),
		zap.Stringer("actual", actual),
		zap.Int("index", index))

	return errors.Wrapf(&TypeMismatchError{Expected: declared, Actual: actual, Index: index}, "typed: %s", op)
}

// derive stamps items with the declared type of a.
// items must not share a backing array with a.
func (a *Array[T]) derive(items []T) *Array[T] {
	if items == nil {
		items = []T{}
	}

	return &Array[T]{declared: a.Type(), items: items, cfg: a.cfg}
}

// itemsOf returns the items of s without copying them when s is an Array.
func itemsOf[T comparable](s Sequence[T]) []T {
	switch v := s.(type) {
	case nil:
		return nil
	case *Array[T]:
		if v == nil {
			return nil
		}
		return v.items
	default:
		return s.Items()
	}
}

// sameType reports whether s is an array with the same declared type as a.
func (a *Array[T]) sameType(s Sequence[T]) bool {
	other, ok := s.(*Array[T])
	return ok && other != nil && other.Type() != nil && other.Type() == a.Type()
}

func (a *Array[T]) Len() int {
	return len(a.items)
}

func (a *Array[T]) IsEmpty() bool {
	return len(a.items) == 0
}

// Items returns a copy of the items.
func (a *Array[T]) Items() []T {
	return append(make([]T, 0, len(a.items)), a.items...)
}

// At returns the item at index, negative indexes count from the end.
func (a *Array[T]) At(index int) (T, bool) {
	if index < 0 {
		index += len(a.items)
	}

	if index < 0 || index >= len(a.items) {
		return utils.GetZero[T](), false
	}

	return a.items[index], true
}

func (a *Array[T]) First() (T, bool) {
	return a.At(0)
}

func (a *Array[T]) Last() (T, bool) {
	return a.At(-1)
}

// Index returns the position of the first occurrence of item or -1.
func (a *Array[T]) Index(item T) int {
	return slices.Index(a.items, item)
}

func (a *Array[T]) Contains(item T) bool {
	return slices.Contains(a.items, item)
}

// All iterates over indexes and items.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range a.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values iterates over items.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range a.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Equal compares items in order. When other is an Array
// its declared type has to match as well.
func (a *Array[T]) Equal(other Sequence[T]) bool {
	if other == nil {
		return false
	}

	if o, ok := other.(*Array[T]); ok {
		return o != nil && a.Type() == o.Type() && slices.Equal(a.items, o.items)
	}

	return slices.Equal(a.items, other.Items())
}

// StrictEqual is Equal that never matches anything but an Array.
func (a *Array[T]) StrictEqual(other any) bool {
	o, ok := other.(*Array[T])
	if !ok || o == nil {
		return false
	}

	return a.Type() == o.Type() && slices.Equal(a.items, o.items)
}

func (a *Array[T]) String() string {
	name := "<untyped>"
	if t := a.Type(); t != nil {
		name = t.String()
	}

	return fmt.Sprintf("Array<%s>%v", name, a.items)
}

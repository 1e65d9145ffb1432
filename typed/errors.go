package typed

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	ErrEmptyTypeSet     = errors.New("constructor requires at least one non-nil element")
	ErrAmbiguousType    = errors.New("all arguments should be of the same type")
	ErrTypeMismatch     = errors.New("item type mismatch")
	ErrNilType          = errors.New("declared type is nil")
	ErrIncomparableType = errors.New("declared type is not comparable")
	ErrIncompatibleType = errors.New("declared type cannot be stored in the array")
	ErrUntyped          = errors.New("array has no declared type")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidSize      = errors.New("size must be positive")
)

// TypeMismatchError is returned when a write brings an item
// whose dynamic type differs from the declared one.
type TypeMismatchError struct {
	Expected reflect.Type
	Actual   reflect.Type
	// Index of the offending item among the items being written
	Index int
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("assigned item(s) should be of the type %s, got %s at %d", e.Expected, e.Actual, e.Index)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

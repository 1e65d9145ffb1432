package typed_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/akoltun/typed-array/typed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	point struct {
		X, Y int
	}

	wrongItem struct {
		Wrong string
	}

	itemKind struct {
		name string
		item any
	}
)

var (
	wrong = wrongItem{Wrong: "wrong"}

	itemKinds = []itemKind{
		{name: "int", item: 1},
		{name: "string", item: "abc"},
		{name: "float64", item: 1.1},
		{name: "bool", item: true},
		{name: "struct", item: point{X: 1, Y: 2}},
		{name: "time", item: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{name: "pointer", item: &point{X: 3, Y: 4}},
	}
)

func mustOf(t *testing.T, items ...any) *typed.Array[any] {
	t.Helper()
	a, err := typed.Of(items...)
	require.NoError(t, err)
	return a
}

func mustNew(t *testing.T, declared reflect.Type, items ...any) *typed.Array[any] {
	t.Helper()
	a, err := typed.New(declared, items)
	require.NoError(t, err)
	return a
}

func assertArray(t *testing.T, want, have *typed.Array[any]) {
	t.Helper()
	require.NotNil(t, have)
	assert.Equal(t, want.Type(), have.Type(), "declared type")
	assert.True(t, want.StrictEqual(have), "want %s, have %s", want, have)
}

func assertMismatch(t *testing.T, err error, expected, actual any) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, typed.ErrTypeMismatch)

	var mismatch *typed.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, reflect.TypeOf(expected), mismatch.Expected)
	assert.Equal(t, reflect.TypeOf(actual), mismatch.Actual)
	assert.Contains(t, err.Error(), "assigned item(s) should be of the type "+reflect.TypeOf(expected).String())
}

// fixedSource always picks the first candidate and shuffles by reversing.
type fixedSource struct{}

func (fixedSource) Intn(int) int {
	return 0
}

func (fixedSource) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

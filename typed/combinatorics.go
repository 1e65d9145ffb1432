package typed

import (
	"golang.org/x/exp/slices"

	"go.uber.org/zap"
)

// Permutation returns every ordering of n items picked by position.
func (a *Array[T]) Permutation(n int) []*Array[T] {
	l := len(a.items)
	if n < 0 || n > l {
		return []*Array[T]{}
	}

	var out []*Array[T]
	used := make([]bool, l)
	tuple := make([]T, 0, n)

	var walk func()
	walk = func() {
		if len(tuple) == n {
			out = append(out, a.derive(slices.Clone(tuple)))
			return
		}

		for i := 0; i < l; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			tuple = append(tuple, a.items[i])
			walk()
			tuple = tuple[:len(tuple)-1]
			used[i] = false
		}
	}
	walk()

	return out
}

// Combination returns every choice of n items picked by position,
// keeping their order.
func (a *Array[T]) Combination(n int) []*Array[T] {
	return a.choose(n, false)
}

// RepeatedPermutation returns every sequence of n items where positions may repeat.
func (a *Array[T]) RepeatedPermutation(n int) []*Array[T] {
	if n < 0 {
		return []*Array[T]{}
	}

	pools := make([][]T, n)
	for i := range pools {
		pools[i] = a.items
	}

	var out []*Array[T]
	product(pools, func(tuple []T) {
		out = append(out, a.derive(tuple))
	})
	return out
}

// RepeatedCombination returns every choice of n items where positions may repeat.
func (a *Array[T]) RepeatedCombination(n int) []*Array[T] {
	return a.choose(n, true)
}

func (a *Array[T]) choose(n int, repeat bool) []*Array[T] {
	l := len(a.items)
	if n < 0 || (!repeat && n > l) || (repeat && l == 0 && n > 0) {
		return []*Array[T]{}
	}

	var out []*Array[T]
	tuple := make([]T, 0, n)

	var walk func(from int)
	walk = func(from int) {
		if len(tuple) == n {
			out = append(out, a.derive(slices.Clone(tuple)))
			return
		}

		for i := from; i < l; i++ {
			tuple = append(tuple, a.items[i])
			if repeat {
				walk(i)
			} else {
				walk(i + 1)
			}
			tuple = tuple[:len(tuple)-1]
		}
	}
	walk(0)

	return out
}

// Product returns the cartesian product of a and others. The tuples are Arrays
// when every operand is an Array of the same declared type, plain Slices otherwise.
func (a *Array[T]) Product(others ...Sequence[T]) []Sequence[T] {
	sameTyped := true
	pools := make([][]T, 0, len(others)+1)
	pools = append(pools, a.items)
	for _, other := range others {
		sameTyped = sameTyped && a.sameType(other)
		pools = append(pools, itemsOf(other))
	}

	if !sameTyped {
		a.config().logger.Debug("type degraded", zap.String("op", "product"), zap.Stringer("declared", a.Type()))
	}

	out := make([]Sequence[T], 0)
	product(pools, func(tuple []T) {
		if sameTyped {
			out = append(out, a.derive(tuple))
		} else {
			out = append(out, Slice[T](tuple))
		}
	})
	return out
}

// product calls emit with a fresh slice for every tuple,
// the first pool varies slowest.
func product[T any](pools [][]T, emit func(tuple []T)) {
	for _, pool := range pools {
		if len(pool) == 0 {
			return
		}
	}

	idx := make([]int, len(pools))
	for {
		tuple := make([]T, len(pools))
		for i, pool := range pools {
			tuple[i] = pool[idx[i]]
		}
		emit(tuple)

		i := len(pools) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(pools[i]) {
				break
			}
			idx[i] = 0
		}

		if i < 0 {
			return
		}
	}
}

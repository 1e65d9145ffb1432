package queue

import (
	"errors"
	"sync"

	"github.com/akoltun/typed-array/utils"
)

var (
	ErrOverflow = errors.New("queue is full")
	ErrEmpty    = errors.New("queue is empty")
)

// Ring is a bounded FIFO queue over a fixed buffer.
// Typed arrays use it as a sliding window.
type Ring[T any] struct {
	mux   sync.RWMutex
	head  int
	tail  int
	count int
	buf   []T
}

func NewRing[T any](size int) *Ring[T] {
	return &Ring[T]{
		buf: make([]T, size),
	}
}

func (q *Ring[T]) Len() int {
	q.mux.RLock()
	defer q.mux.RUnlock()
	return q.count
}

func (q *Ring[T]) IsEmpty() bool {
	q.mux.RLock()
	defer q.mux.RUnlock()
	return q.count == 0
}

func (q *Ring[T]) IsFull() bool {
	q.mux.RLock()
	defer q.mux.RUnlock()
	return q.count == len(q.buf)
}

func (q *Ring[T]) Enqueue(item T) error {
	q.mux.Lock()
	defer q.mux.Unlock()
	if q.count == len(q.buf) {
		return ErrOverflow
	}

	q.buf[q.head] = item
	q.head = (q.head + 1) % len(q.buf)
	q.count++

	return nil
}

func (q *Ring[T]) Peek() (T, error) {
	q.mux.RLock()
	defer q.mux.RUnlock()
	if q.count == 0 {
		return utils.GetZero[T](), ErrEmpty
	}
	return q.buf[q.tail], nil
}

func (q *Ring[T]) Dequeue() (T, error) {
	q.mux.Lock()
	defer q.mux.Unlock()
	if q.count == 0 {
		return utils.GetZero[T](), ErrEmpty
	}

	result := q.buf[q.tail]
	q.buf[q.tail] = utils.GetZero[T]()
	q.tail = (q.tail + 1) % len(q.buf)
	q.count--

	return result, nil
}

// Items copies the queued items, oldest first
func (q *Ring[T]) Items() []T {
	q.mux.RLock()
	defer q.mux.RUnlock()

	items := make([]T, 0, q.count)
	for i := 0; i < q.count; i++ {
		items = append(items, q.buf[(q.tail+i)%len(q.buf)])
	}
	return items
}

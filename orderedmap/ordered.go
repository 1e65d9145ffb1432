package orderedmap

import (
	"github.com/akoltun/typed-array/utils"

	"github.com/denismitr/dll"
)

type (
	entry[K comparable, V any] struct {
		key   K
		value V
	}

	// OrderedMap remembers the order in which keys were first set.
	// typed.GroupBy returns one with a typed array per group.
	OrderedMap[K comparable, V any] struct {
		m    map[K]*dll.Element[entry[K, V]]
		list *dll.DoublyLinkedList[entry[K, V]]
	}

	ForEachFn[K comparable, V any] func(key K, value V, order int)
)

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m:    make(map[K]*dll.Element[entry[K, V]]),
		list: dll.New[entry[K, V]](),
	}
}

// Set is idempotent, an existing key keeps its position
func (om *OrderedMap[K, V]) Set(key K, value V) {
	existingEl, found := om.m[key]
	if !found {
		newEl := dll.NewElement(entry[K, V]{key: key, value: value})
		om.m[key] = newEl
		om.list.PushTail(newEl)
		return
	}

	existingEl.ReplaceValue(entry[K, V]{key: key, value: value})
}

func (om *OrderedMap[K, V]) SetNX(key K, value V) (added bool) {
	if _, found := om.m[key]; found {
		return false
	}

	om.Set(key, value)
	return true
}

func (om *OrderedMap[K, V]) HasGet(key K) (V, bool) {
	el, found := om.m[key]
	if !found {
		return utils.GetZero[V](), false
	}

	return el.Value().value, true
}

func (om *OrderedMap[K, V]) Get(key K) V {
	v, _ := om.HasGet(key)
	return v
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	_, found := om.m[key]
	return found
}

func (om *OrderedMap[K, V]) Remove(key K) (V, bool) {
	el, exists := om.m[key]
	if !exists {
		return utils.GetZero[V](), false
	}

	delete(om.m, key)
	om.list.Remove(el)

	return el.Value().value, true
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.m)
}

func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(om.m))
	om.ForEach(func(key K, _ V, _ int) {
		keys = append(keys, key)
	})
	return keys
}

func (om *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, len(om.m))
	om.ForEach(func(_ K, value V, _ int) {
		values = append(values, value)
	})
	return values
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	curr := om.list.Head()
	order := 0
	for curr != nil {
		e := curr.Value()
		f(e.key, e.value, order)
		curr = curr.Next()
		order++
	}
}

package typed

import (
	"bytes"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func (a *Array[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Items())
}

// UnmarshalJSON replaces the items with the decoded ones. Items of a typed
// array are decoded straight into the declared type, null is absent.
// An array without a declared type infers it from the items.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	const op = "decode json"

	if a.Type() == nil {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return errors.Wrap(err, "typed: "+op)
		}
		return a.infer(op, items)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "typed: "+op)
	}

	items, err := decodeEach(a, op, len(raw),
		func(i int) bool { return bytes.Equal(bytes.TrimSpace(raw[i]), []byte("null")) },
		func(i int, v any) error { return json.Unmarshal(raw[i], v) })
	if err != nil {
		return err
	}

	return a.assign(op, items)
}

func (a *Array[T]) MarshalYAML() (interface{}, error) {
	return a.Items(), nil
}

// UnmarshalYAML follows the same rules as UnmarshalJSON.
func (a *Array[T]) UnmarshalYAML(value *yaml.Node) error {
	const op = "decode yaml"

	if a.Type() == nil {
		var items []T
		if err := value.Decode(&items); err != nil {
			return errors.Wrap(err, "typed: "+op)
		}
		return a.infer(op, items)
	}

	var nodes []yaml.Node
	if err := value.Decode(&nodes); err != nil {
		return errors.Wrap(err, "typed: "+op)
	}

	items, err := decodeEach(a, op, len(nodes),
		func(i int) bool { return nodes[i].ShortTag() == "!!null" },
		func(i int, v any) error { return nodes[i].Decode(v) })
	if err != nil {
		return err
	}

	return a.assign(op, items)
}

// decodeEach decodes n encoded items into the declared type of a.
// An item that does not decode is reported with the type it has on its own.
func decodeEach[T comparable](
	a *Array[T],
	op string,
	n int,
	isNull func(i int) bool,
	decode func(i int, v any) error,
) ([]T, error) {
	declared := a.Type()
	items := make([]T, n)
	for i := range items {
		if isNull(i) {
			continue
		}

		v := reflect.New(declared)
		if err := decode(i, v.Interface()); err != nil {
			var loose any
			if looseErr := decode(i, &loose); looseErr != nil || loose == nil {
				return nil, errors.Wrapf(err, "typed: %s at %d", op, i)
			}
			return nil, a.reject(op, reflect.TypeOf(loose), i)
		}

		item, ok := v.Elem().Interface().(T)
		if !ok {
			return nil, errors.Wrapf(ErrIncompatibleType, "typed: %s %s in %s", op, declared, reflect.TypeFor[T]())
		}
		items[i] = item
	}

	return items, nil
}

func (a *Array[T]) assign(op string, items []T) error {
	if err := a.validate(op, items); err != nil {
		return err
	}

	a.items = items
	return nil
}

func (a *Array[T]) infer(op string, items []T) error {
	inferred, err := Infer(items)
	if err != nil {
		return errors.Wrapf(err, "typed: %s", op)
	}

	a.declared = inferred.declared
	a.items = inferred.items
	return nil
}

package empty

import (
	"encoding/json"
	"fmt"

	"github.com/amp-labs/nothing/errors"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = List[int]{}
	_ json.Unmarshaler = (*List[int])(nil)
	_ yaml.Marshaler   = List[int]{}
	_ yaml.Unmarshaler = (*List[int])(nil)
	_ fmt.Stringer     = List[int]{}
)

// MarshalJSON implements json.Marshaler. A List is always [].
func (List[T]) MarshalJSON() ([]byte, error) {
	return []byte("[]"), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts [] and null.
// An array with elements fails with ErrNotEmpty, anything else with
// ErrNotSequence. The elements themselves are never decoded.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	it := jsoniter.ConfigDefault.BorrowIterator(data)
	defer jsoniter.ConfigDefault.ReturnIterator(it)

	switch it.WhatIsNext() { //nolint:exhaustive
	case jsoniter.NilValue:
		return nil
	case jsoniter.ArrayValue:
		if it.ReadArray() {
			return fmt.Errorf("%w: json array has elements", errors.ErrNotEmpty)
		}

		return it.Error
	default:
		return fmt.Errorf("%w: json %s", errors.ErrNotSequence, preview(data))
	}
}

// MarshalYAML implements yaml.Marshaler. A List is always an empty sequence.
func (List[T]) MarshalYAML() (any, error) {
	return Slice[T](), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same rules as
// UnmarshalJSON: an empty sequence or null.
func (l *List[T]) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind { //nolint:exhaustive
	case yaml.AliasNode:
		return l.UnmarshalYAML(node.Alias)
	case yaml.SequenceNode:
		if len(node.Content) != 0 {
			return fmt.Errorf("%w: yaml sequence at line %d has %d elements",
				errors.ErrNotEmpty, node.Line, len(node.Content))
		}

		return nil
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil
		}
	}

	return fmt.Errorf("%w: yaml %s at line %d", errors.ErrNotSequence, node.ShortTag(), node.Line)
}

func preview(data []byte) string {
	const maxPreview = 16

	if len(data) > maxPreview {
		return string(data[:maxPreview]) + "..."
	}

	return string(data)
}

package nullable

import (
	"bytes"
	"encoding/json"
)

type state uint8

const (
	stateUndefined state = iota
	stateNull
	stateValue
)

// Null is a tri-state wrapper distinguishing a missing value (Undefined),
// an explicit null (Null), and a present value (Value). The distinction
// matters for JSON payloads where "field absent" and "field: null" carry
// different intent.
type Null[T any] struct {
	state state
	value T
}

// New wraps a concrete value.
func New[T any](v T) Null[T] {
	return Null[T]{state: stateValue, value: v}
}

// Nil returns an explicit-null wrapper.
func Nil[T any]() Null[T] {
	return Null[T]{state: stateNull}
}

// Undefined returns an absent wrapper. It is also the zero value.
func Undefined[T any]() Null[T] {
	return Null[T]{}
}

// Take extracts the wrapped value. Both Null and Undefined collapse to
// "no value": the zero value of T and false are returned.
func (n Null[T]) Take() (T, bool) {
	if n.state != stateValue {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Or returns the wrapped value, or fallback when no value is present.
func (n Null[T]) Or(fallback T) T {
	if v, ok := n.Take(); ok {
		return v
	}
	return fallback
}

func (n Null[T]) IsValue() bool {
	return n.state == stateValue
}

func (n Null[T]) IsNull() bool {
	return n.state == stateNull
}

func (n Null[T]) IsUndefined() bool {
	return n.state == stateUndefined
}

var jsonNull = []byte("null")

// MarshalJSON renders the wrapped value; Null and Undefined both render as
// JSON null since JSON cannot express the absent state inline.
func (n Null[T]) MarshalJSON() ([]byte, error) {
	if n.state != stateValue {
		return jsonNull, nil
	}
	return json.Marshal(n.value)
}

// UnmarshalJSON maps JSON null to the explicit-null state and any other
// value to the present state. Absence never reaches UnmarshalJSON, so a
// field left untouched by a decode keeps its Undefined zero value.
func (n *Null[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*n = Nil[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = New(v)
	return nil
}

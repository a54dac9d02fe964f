// SPDX-License-Identifier: MIT

package model

import (
	"bytes"
	"encoding/json"
	"slices"
)

// OrderedMap maintains insertion order for deterministic output.
// Its JSON encoding keeps that order, which the metadata documents rely on.
type OrderedMap[T any] struct {
	m     map[string]T
	order []string
}

// NewOrderedMap returns an empty map.
func NewOrderedMap[T any]() *OrderedMap[T] {
	return &OrderedMap[T]{
		m: make(map[string]T),
	}
}

// Set stores value under key. Re-setting a key keeps its original position.
func (m *OrderedMap[T]) Set(key string, value T) {
	if _, exists := m.m[key]; !exists {
		m.order = append(m.order, key)
	}
	m.m[key] = value
}

// Get returns the value for key or the zero value.
func (m *OrderedMap[T]) Get(key string) T {
	return m.m[key]
}

// Lookup returns the value for key and whether it exists.
func (m *OrderedMap[T]) Lookup(key string) (T, bool) {
	v, ok := m.m[key]
	return v, ok
}

// Has reports whether key exists.
func (m *OrderedMap[T]) Has(key string) bool {
	_, ok := m.m[key]
	return ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[T]) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.order)
}

// Len returns the number of entries.
func (m *OrderedMap[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *OrderedMap[T]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.m[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

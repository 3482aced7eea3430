package core

import (
	"bytes"
	"strings"
)

// Collector accumulates elements into a container of type C.
type Collector[T, C any] interface {
	// Grow hints that at least n more elements are coming.
	Grow(n int)
	Add(T)
	Result() C
}

// Into builds a fresh Collector. Collect calls it once per drain, so no
// container is ever shared between two calls.
type Into[T, C any] func() Collector[T, C]

type sliceCollector[T any] struct{ items []T }

func (c *sliceCollector[T]) Grow(n int) {
	if n > 0 && c.items == nil {
		c.items = make([]T, 0, n)
	}
}
func (c *sliceCollector[T]) Add(v T)    { c.items = append(c.items, v) }
func (c *sliceCollector[T]) Result() []T { return c.items }

// ToSlice collects into a slice in sequence order.
func ToSlice[T any]() Into[T, []T] {
	return func() Collector[T, []T] { return &sliceCollector[T]{} }
}

type setCollector[T comparable] struct{ set map[T]struct{} }

func (c *setCollector[T]) Grow(n int) {
	if c.set == nil {
		c.set = make(map[T]struct{}, max(n, 0))
	}
}
func (c *setCollector[T]) Add(v T) {
	if c.set == nil {
		c.set = make(map[T]struct{})
	}
	c.set[v] = struct{}{}
}
func (c *setCollector[T]) Result() map[T]struct{} {
	if c.set == nil {
		return map[T]struct{}{}
	}
	return c.set
}

// ToSet collects the distinct elements into a set.
func ToSet[T comparable]() Into[T, map[T]struct{}] {
	return func() Collector[T, map[T]struct{}] { return &setCollector[T]{} }
}

type mapCollector[T any, K comparable] struct {
	key func(T) K
	m   map[K]T
}

func (c *mapCollector[T, K]) Grow(n int) {
	if c.m == nil {
		c.m = make(map[K]T, max(n, 0))
	}
}
func (c *mapCollector[T, K]) Add(v T) {
	if c.m == nil {
		c.m = make(map[K]T)
	}
	c.m[c.key(v)] = v
}
func (c *mapCollector[T, K]) Result() map[K]T {
	if c.m == nil {
		return map[K]T{}
	}
	return c.m
}

// ToMap collects elements keyed by key. Later elements replace earlier ones
// with the same key.
func ToMap[T any, K comparable](key func(T) K) Into[T, map[K]T] {
	return func() Collector[T, map[K]T] { return &mapCollector[T, K]{key: key} }
}

type runeCollector struct{ sb strings.Builder }

func (c *runeCollector) Grow(n int)      { c.sb.Grow(max(n, 0)) }
func (c *runeCollector) Add(r rune)      { c.sb.WriteRune(r) }
func (c *runeCollector) Result() string { return c.sb.String() }

// ToString collects runes into a string.
func ToString() Into[rune, string] {
	return func() Collector[rune, string] { return &runeCollector{} }
}

type joinCollector struct {
	sep   string
	sb    strings.Builder
	first bool
}

func (c *joinCollector) Grow(int) {}
func (c *joinCollector) Add(s string) {
	if !c.first {
		c.sb.WriteString(c.sep)
	}
	c.first = false
	c.sb.WriteString(s)
}
func (c *joinCollector) Result() string { return c.sb.String() }

// Join collects strings into one, separated by sep.
func Join(sep string) Into[string, string] {
	return func() Collector[string, string] { return &joinCollector{sep: sep, first: true} }
}

type byteCollector struct{ buf bytes.Buffer }

func (c *byteCollector) Grow(n int)      { c.buf.Grow(max(n, 0)) }
func (c *byteCollector) Add(b byte)      { c.buf.WriteByte(b) }
func (c *byteCollector) Result() []byte { return c.buf.Bytes() }

// ToBytes collects bytes into a byte slice.
func ToBytes() Into[byte, []byte] {
	return func() Collector[byte, []byte] { return &byteCollector{} }
}

package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Path is an immutable, never-empty history of values with shared tails.
//
// Each node holds one value and a pointer to the rest of the history. Extend
// builds a new head on top of an existing Path without touching it, so any
// number of branches can share a common prefix. Nodes are never mutated after
// construction, which makes it safe to keep many Paths in one search queue.
type Path[T any] struct {
	head T
	tail *Path[T]
	n    int
}

// NewPath returns the single-element path [seed].
func NewPath[T any](seed T) *Path[T] {
	return &Path[T]{head: seed, n: 1}
}

// Head returns the most recently added value.
func (p *Path[T]) Head() T { return p.head }

// Len returns the number of values from head to root inclusive; always ≥ 1.
func (p *Path[T]) Len() int { return p.n }

// Tail returns the path without its head. The boolean is false for a
// single-element path.
func (p *Path[T]) Tail() (*Path[T], bool) {
	return p.tail, p.tail != nil
}

// Extend returns a new path whose head is v and whose tail is p.
// p is unchanged and remains usable.
func (p *Path[T]) Extend(v T) *Path[T] {
	return &Path[T]{head: v, tail: p, n: p.n + 1}
}

// All yields the values from head to root.
func (p *Path[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := p; cur != nil; cur = cur.tail {
			if !yield(cur.head) {
				return
			}
		}
	}
}

// Slice materialises the path head-to-root into a fresh slice.
func (p *Path[T]) Slice() []T {
	out := make([]T, 0, p.n)
	for v := range p.All() {
		out = append(out, v)
	}
	return out
}

// Reversed materialises the path root-to-head into a fresh slice.
func (p *Path[T]) Reversed() []T {
	out := make([]T, p.n)
	i := p.n - 1
	for v := range p.All() {
		out[i] = v
		i--
	}
	return out
}

// String renders the path head first, e.g. "8 -> 3 -> 2".
func (p *Path[T]) String() string {
	var sb strings.Builder
	first := true
	for v := range p.All() {
		if !first {
			sb.WriteString(" -> ")
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

// PathContains reports whether v appears anywhere in p. O(n).
func PathContains[T comparable](p *Path[T], v T) bool {
	for x := range p.All() {
		if x == v {
			return true
		}
	}
	return false
}

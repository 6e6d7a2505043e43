// Package seq provides an immutable, ordered, duplicate-permitting sequence
// with the textbook functor/applicative/monad surface (Map, Pure, Apply,
// Join, Bind) plus folds, filtering and conversion to and from the
// purealgebra fold engine.
//
// Every transformation returns a new Sequence; no operation mutates its
// receiver or arguments. Because Go methods cannot introduce type
// parameters, the type-changing operations (Map, FoldLeft, Join, ...) are
// package-level functions.
//
// Example:
//
//	words := seq.Of("a", " ", "b")
//	ms, _ := words.ToMonoid(func(a, b string) string { return a + b }, "")
//	out := ms.Fold() // "a b"
package seq

import (
	"log/slog"
	"reflect"
	"slices"

	"github.com/Pure-Company/purealgebra"
	"github.com/Pure-Company/purealgebra/maybe"
)

// logger receives the warnings emitted by the documented drop policies.
var logger = slog.Default()

// SetLogger replaces the package logger used for drop-policy warnings.
// Passing nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = slog.Default()
		return
	}
	logger = l
}

// Sequence is an ordered, possibly-empty collection of T. Duplicates are
// permitted; nil values are not (they are dropped at construction with a
// logged warning). The zero value is the empty sequence.
type Sequence[T any] struct {
	items []T
}

// ============================================================================
// Construction
// ============================================================================

// Empty returns the empty sequence.
func Empty[T any]() Sequence[T] {
	return Sequence[T]{}
}

// Of builds a sequence from values in the given order. Nil values are
// dropped with a logged warning; the sequence never holds them.
func Of[T any](values ...T) Sequence[T] {
	return From(values)
}

// From builds a sequence from a copy of values, preserving order. Nil values
// are dropped with a logged warning.
func From[T any](values []T) Sequence[T] {
	items := make([]T, 0, len(values))
	for i, v := range values {
		if isNil(v) {
			logger.Warn("seq: dropping nil element", "index", i)
			continue
		}
		items = append(items, v)
	}
	return Sequence[T]{items: items}
}

// FromMonoid builds a sequence from the elements of ms, in fold order.
func FromMonoid[T any](ms *purealgebra.MonoidStructure[T]) Sequence[T] {
	return Sequence[T]{items: ms.Elements()}
}

// Pure lifts a single value into a sequence (applicative/monad unit).
func Pure[T any](v T) Sequence[T] {
	return Of(v)
}

// ============================================================================
// Inspection
// ============================================================================

// Len returns the number of elements.
func (s Sequence[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the sequence has no elements.
func (s Sequence[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// All returns a copy of the elements as a plain slice, in order.
func (s Sequence[T]) All() []T {
	return slices.Clone(s.items)
}

// Each calls fn(item, index) for every element, in order.
func (s Sequence[T]) Each(fn func(T, int)) {
	for i, v := range s.items {
		fn(v, i)
	}
}

// ============================================================================
// Transformation
// ============================================================================

// Append returns a new sequence holding the receiver's elements followed by
// other's. Neither operand is mutated.
func (s Sequence[T]) Append(other Sequence[T]) Sequence[T] {
	items := make([]T, 0, len(s.items)+len(other.items))
	items = append(items, s.items...)
	items = append(items, other.items...)
	return Sequence[T]{items: items}
}

// Filter returns the elements satisfying predicate, preserving order. It is
// a specialization of FoldLeft: the fold starts from the empty sequence and
// appends each passing element.
func (s Sequence[T]) Filter(predicate func(T) bool) Sequence[T] {
	return FoldLeft(s, Empty[T](), func(acc Sequence[T], x T) Sequence[T] {
		if predicate(x) {
			return acc.Append(Pure(x))
		}
		return acc
	})
}

// Map applies f to every element in order. Elements for which f yields a nil
// result are dropped from the output with a logged warning. This partial
// function tolerance is a deliberate, documented policy, not an error path:
// it lets a mapper decline an element without aborting the whole pass.
func Map[T, U any](s Sequence[T], f func(T) U) Sequence[U] {
	items := make([]U, 0, len(s.items))
	for i, v := range s.items {
		u := f(v)
		if isNil(u) {
			logger.Warn("seq: dropping nil map result", "index", i)
			continue
		}
		items = append(items, u)
	}
	return Sequence[U]{items: items}
}

// MapMaybe applies f to every element in order and keeps only the present
// results. It is the typed form of Map's drop policy: a mapper declines an
// element by returning Nothing, so no warning is logged.
func MapMaybe[T, U any](s Sequence[T], f func(T) maybe.Maybe[U]) Sequence[U] {
	items := make([]U, 0, len(s.items))
	for _, v := range s.items {
		if u, ok := f(v).Get(); ok {
			items = append(items, u)
		}
	}
	return Sequence[U]{items: items}
}

// FoldLeft reduces the sequence front to back: acc starts at identity and
// becomes f(acc, x) for each element x in order. An empty sequence yields
// identity.
func FoldLeft[T, V any](s Sequence[T], identity V, f func(V, T) V) V {
	acc := identity
	for _, x := range s.items {
		acc = f(acc, x)
	}
	return acc
}

// FoldRight reduces the sequence back to front: acc starts at identity and
// becomes f(x, acc) for each element x from the last backward.
func FoldRight[T, V any](s Sequence[T], identity V, f func(T, V) V) V {
	acc := identity
	for i := len(s.items) - 1; i >= 0; i-- {
		acc = f(s.items[i], acc)
	}
	return acc
}

// Apply applies every function in fs to every element of s, in
// outer-then-inner order (applicative ap).
func Apply[T, U any](fs Sequence[func(T) U], s Sequence[T]) Sequence[U] {
	items := make([]U, 0, len(fs.items)*len(s.items))
	for _, f := range fs.items {
		for _, v := range s.items {
			items = append(items, f(v))
		}
	}
	return Sequence[U]{items: items}
}

// Join flattens a sequence of sequences into one, preserving
// outer-then-inner order (monad flatten).
func Join[T any](s Sequence[Sequence[T]]) Sequence[T] {
	n := 0
	for _, inner := range s.items {
		n += len(inner.items)
	}
	items := make([]T, 0, n)
	for _, inner := range s.items {
		items = append(items, inner.items...)
	}
	return Sequence[T]{items: items}
}

// Bind maps every element to a sequence and flattens the results (monad
// bind): Bind(s, f) == Join(Map(s, f)).
func Bind[T, U any](s Sequence[T], f func(T) Sequence[U]) Sequence[U] {
	items := make([]U, 0, len(s.items))
	for _, v := range s.items {
		items = append(items, f(v).items...)
	}
	return Sequence[U]{items: items}
}

// ============================================================================
// Conversion
// ============================================================================

// ToMonoid wraps the sequence's elements, order preserved, as the backing
// collection of a new MonoidStructure bound to op and identity.
func (s Sequence[T]) ToMonoid(op purealgebra.Operation[T], identity T) (*purealgebra.MonoidStructure[T], error) {
	items := s.items
	if items == nil {
		// The zero-value sequence is empty, not absent.
		items = []T{}
	}
	return purealgebra.NewMonoidStructure(items, op, identity)
}

// isNil reports whether v is a nil value of a nilable kind. Value kinds
// (ints, strings, structs) are never nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

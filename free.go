package purealgebra

import "fmt"

// ============================================================================
// Free Structures
// ============================================================================
//
// The free variants are unconstrained by a backing collection: any two values
// of the element type combine, and closure is guaranteed by the operation's
// type signature rather than by set-membership checks. Append is therefore
// total and returns no error, and ErrNotAnElement never arises here.

// FreeMagma wraps a binary operation over the whole of T.
type FreeMagma[T any] struct {
	op Operation[T]
}

// NewFreeMagma builds a free magma from op. It returns ErrInvalidArgument
// when op is nil.
func NewFreeMagma[T any](op Operation[T]) (*FreeMagma[T], error) {
	if op == nil {
		return nil, fmt.Errorf("%w: nil operation", ErrInvalidArgument)
	}
	return &FreeMagma[T]{op: op}, nil
}

// Append combines a and b. Total: any two values of T are combinable.
func (m *FreeMagma[T]) Append(a, b T) T {
	return m.op(a, b)
}

// FreeSemigroup is a FreeMagma whose operation the caller asserts to be
// associative.
type FreeSemigroup[T any] struct {
	op Operation[T]
}

// NewFreeSemigroup builds a free semigroup from op. The caller is
// responsible for op being associative.
func NewFreeSemigroup[T any](op Operation[T]) (*FreeSemigroup[T], error) {
	if op == nil {
		return nil, fmt.Errorf("%w: nil operation", ErrInvalidArgument)
	}
	return &FreeSemigroup[T]{op: op}, nil
}

// Append combines a and b.
func (s *FreeSemigroup[T]) Append(a, b T) T {
	return s.op(a, b)
}

// LeftFold reduces values left to right, seeded with identity. With no
// values it returns identity unchanged.
func (s *FreeSemigroup[T]) LeftFold(identity T, values ...T) T {
	acc := identity
	for _, x := range values {
		acc = s.op(acc, x)
	}
	return acc
}

// FreeMonoid is a FreeSemigroup with a distinguished identity element. It is
// the minimal fold engine: operation plus identity, no backing collection.
//
// Example:
//
//	sum, err := purealgebra.NewFreeMonoid(func(a, b int) int { return a + b }, 0)
//	n := sum.Fold(1, 2, 3) // 6
type FreeMonoid[T any] struct {
	op       Operation[T]
	identity T
}

// NewFreeMonoid builds a free monoid from op and identity. The caller is
// responsible for op being associative and identity being neutral for it.
func NewFreeMonoid[T any](op Operation[T], identity T) (*FreeMonoid[T], error) {
	if op == nil {
		return nil, fmt.Errorf("%w: nil operation", ErrInvalidArgument)
	}
	return &FreeMonoid[T]{op: op, identity: identity}, nil
}

// Append combines a and b.
func (m *FreeMonoid[T]) Append(a, b T) T {
	return m.op(a, b)
}

// Identity returns the monoid's identity element.
func (m *FreeMonoid[T]) Identity() T {
	return m.identity
}

// Fold reduces values left to right, seeded with the identity. With no
// values it returns the identity.
func (m *FreeMonoid[T]) Fold(values ...T) T {
	acc := m.identity
	for _, x := range values {
		acc = m.op(acc, x)
	}
	return acc
}

// ToStructure binds the monoid's operation and identity to a concrete
// element collection, producing an enumerable monoid that can be folded
// repeatedly. The supplied elements are copied.
func (m *FreeMonoid[T]) ToStructure(elements []T) (*MonoidStructure[T], error) {
	return NewMonoidStructure(elements, m.op, m.identity)
}

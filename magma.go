package purealgebra

import (
	"fmt"
	"slices"
)

// Operation is a closed binary operation over T. It is the caller-supplied
// function every structure in this package wraps.
//
// Example:
//
//	concat := purealgebra.Operation[string](func(a, b string) string {
//	    return a + b
//	})
type Operation[T any] func(a, b T) T

// Option selects per-variant behavior for the strict structures.
type Option func(*settings)

type settings struct {
	closureCheck     bool
	distinctOperands bool
}

// WithClosureCheck makes Append verify that the operation's result is itself
// a member of the backing collection, returning ErrClosureViolation when it
// is not. Without it only the operands are checked.
func WithClosureCheck() Option {
	return func(s *settings) { s.closureCheck = true }
}

// WithDistinctOperands makes Append reject calls where both operands are
// equal, returning ErrEqualOperands.
func WithDistinctOperands() Option {
	return func(s *settings) { s.distinctOperands = true }
}

// ============================================================================
// Shared Core
// ============================================================================

// core is the single representation behind Magma, Semigroup and Monoid. The
// three types differ only in contract, not in data, so they are thin wrappers
// over one parameterized struct, and the capability checks live in standalone
// functions instead of a type hierarchy.
//
// The element collection is copied on construction and never mutated; callers
// keep no handle into internal state.
type core[T comparable] struct {
	op       Operation[T]
	elements []T
	members  map[T]struct{}
	settings settings
}

func newCore[T comparable](elements []T, op Operation[T], opts ...Option) (core[T], error) {
	if op == nil {
		return core[T]{}, fmt.Errorf("%w: nil operation", ErrInvalidArgument)
	}
	if elements == nil {
		return core[T]{}, fmt.Errorf("%w: nil element collection", ErrInvalidArgument)
	}
	c := core[T]{
		op:       op,
		elements: slices.Clone(elements),
		members:  make(map[T]struct{}, len(elements)),
	}
	for _, e := range c.elements {
		c.members[e] = struct{}{}
	}
	for _, opt := range opts {
		opt(&c.settings)
	}
	return c, nil
}

// checkMembership reports whether v belongs to the backing collection.
func (c *core[T]) checkMembership(v T) error {
	if _, ok := c.members[v]; !ok {
		return fmt.Errorf("%w: %v", ErrNotAnElement, v)
	}
	return nil
}

// checkClosure reports whether an operation result stayed inside the backing
// collection.
func (c *core[T]) checkClosure(r T) error {
	if _, ok := c.members[r]; !ok {
		return fmt.Errorf("%w: result %v", ErrClosureViolation, r)
	}
	return nil
}

func (c *core[T]) append(a, b T) (T, error) {
	var zero T
	if c.settings.distinctOperands && a == b {
		return zero, fmt.Errorf("%w: %v", ErrEqualOperands, a)
	}
	if err := c.checkMembership(a); err != nil {
		return zero, err
	}
	if err := c.checkMembership(b); err != nil {
		return zero, err
	}
	r := c.op(a, b)
	if c.settings.closureCheck {
		if err := c.checkClosure(r); err != nil {
			return zero, err
		}
	}
	return r, nil
}

// leftFold reduces the backing collection left to right in its stored order,
// seeded with identity. The raw operation is applied: intermediate
// accumulator values may legitimately fall outside the backing collection,
// so membership checks do not apply here.
func (c *core[T]) leftFold(identity T) T {
	acc := identity
	for _, x := range c.elements {
		acc = c.op(acc, x)
	}
	return acc
}

// Elements returns a copy of the backing collection in its stored order.
func (c *core[T]) Elements() []T {
	return slices.Clone(c.elements)
}

// Contains reports whether v is a member of the backing collection.
func (c *core[T]) Contains(v T) bool {
	_, ok := c.members[v]
	return ok
}

// Len returns the number of elements in the backing collection.
func (c *core[T]) Len() int {
	return len(c.elements)
}

// ============================================================================
// Magma
// ============================================================================

// Magma is a finite element collection together with a binary operation.
// Append checks that both operands are members; WithClosureCheck extends the
// check to the result and WithDistinctOperands forbids combining a value
// with itself.
//
// Example:
//
//	m, err := purealgebra.NewMagma([]int{1, 2, 3}, func(a, b int) int { return a + b })
//	r, err := m.Append(1, 2) // 3
type Magma[T comparable] struct {
	core[T]
}

// NewMagma builds a strict magma over a copy of elements. It returns
// ErrInvalidArgument when op or elements is nil.
func NewMagma[T comparable](elements []T, op Operation[T], opts ...Option) (*Magma[T], error) {
	c, err := newCore(elements, op, opts...)
	if err != nil {
		return nil, err
	}
	return &Magma[T]{core: c}, nil
}

// Append combines a and b with the magma's operation, enforcing the
// configured membership checks. It has no side effects.
func (m *Magma[T]) Append(a, b T) (T, error) {
	return m.append(a, b)
}

// ============================================================================
// Semigroup
// ============================================================================

// Semigroup is a Magma whose operation the caller asserts to be associative.
// Associativity is not (and in general cannot be) checked at runtime; it is
// what makes LeftFold well-defined independent of grouping. Use
// CheckAssociativity from a test suite to validate the assertion over
// concrete samples.
type Semigroup[T comparable] struct {
	core[T]
}

// NewSemigroup builds a strict semigroup over a copy of elements. The caller
// is responsible for op being associative over the elements.
func NewSemigroup[T comparable](elements []T, op Operation[T], opts ...Option) (*Semigroup[T], error) {
	c, err := newCore(elements, op, opts...)
	if err != nil {
		return nil, err
	}
	return &Semigroup[T]{core: c}, nil
}

// Append combines a and b with the semigroup's operation, enforcing the
// configured membership checks.
func (s *Semigroup[T]) Append(a, b T) (T, error) {
	return s.append(a, b)
}

// LeftFold reduces the backing collection left to right in its stored order,
// seeded with identity:
//
//	acc := identity
//	for each x in order { acc = op(acc, x) }
//
// An empty collection yields identity unchanged.
func (s *Semigroup[T]) LeftFold(identity T) T {
	return s.leftFold(identity)
}

// ============================================================================
// Monoid
// ============================================================================

// Monoid is a Semigroup with a distinguished identity element: the caller
// asserts op(identity, x) == x == op(x, identity) for every member x. The
// identity law is validated through fold behavior in tests, not at runtime;
// see CheckIdentity.
//
// Example:
//
//	m, err := purealgebra.NewMonoid([]string{"a", " ", "b"},
//	    func(a, b string) string { return a + b }, "")
//	out := m.Fold() // "a b"
type Monoid[T comparable] struct {
	core[T]
	identity T
}

// NewMonoid builds a strict monoid over a copy of elements with the given
// identity element.
func NewMonoid[T comparable](elements []T, op Operation[T], identity T, opts ...Option) (*Monoid[T], error) {
	c, err := newCore(elements, op, opts...)
	if err != nil {
		return nil, err
	}
	return &Monoid[T]{core: c, identity: identity}, nil
}

// Append combines a and b with the monoid's operation, enforcing the
// configured membership checks.
func (m *Monoid[T]) Append(a, b T) (T, error) {
	return m.append(a, b)
}

// Identity returns the monoid's identity element.
func (m *Monoid[T]) Identity() T {
	return m.identity
}

// Fold reduces the backing collection left to right in its stored order,
// seeded with the identity. An empty collection yields the identity; a
// singleton collection yields op(identity, e), which equals e whenever the
// identity law holds.
func (m *Monoid[T]) Fold() T {
	return m.leftFold(m.identity)
}

// ToStructure rebinds the monoid's operation and identity to a different
// concrete element collection. It is a view constructor: the receiver is not
// modified and the new structure copies the supplied elements.
func (m *Monoid[T]) ToStructure(elements []T) (*MonoidStructure[T], error) {
	return NewMonoidStructure(elements, m.op, m.identity)
}

// Package maybe provides the Maybe monad: a value that is either present
// (Just) or absent (Nothing).
//
// Maybe is a plain value type compared structurally; Nothing is not a shared
// singleton object, so two Nothings of the same type are always equal and
// aliasing cannot arise. The typeclass operations are package-level
// functions because Go methods cannot introduce type parameters.
//
// The operations satisfy the monad laws:
//
//   - left identity:  Bind(Pure(x), f) == f(x)
//   - right identity: Bind(m, Pure)    == m
//   - associativity:  Bind(Bind(m, f), g) == Bind(m, func(x) { return Bind(f(x), g) })
package maybe

// Maybe holds either a present value of T or nothing. The zero value is
// Nothing.
type Maybe[T any] struct {
	value   T
	present bool
}

// Just wraps a present value.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, present: true}
}

// Nothing returns the absent value of T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr wraps the pointee when p is non-nil, Nothing otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// Pure lifts a value into Maybe (applicative/monad unit). Alias of Just.
func Pure[T any](v T) Maybe[T] {
	return Just(v)
}

// IsPresent reports whether the value is present.
func (m Maybe[T]) IsPresent() bool {
	return m.present
}

// IsNothing reports whether the value is absent.
func (m Maybe[T]) IsNothing() bool {
	return !m.present
}

// Get returns the value and whether it is present. When absent, the first
// return is the zero value of T.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// OrElse returns the value when present, fallback otherwise.
func (m Maybe[T]) OrElse(fallback T) T {
	if m.present {
		return m.value
	}
	return fallback
}

// OrElseGet returns the value when present, otherwise the result of calling
// supply. Use it when the fallback is expensive to build.
func (m Maybe[T]) OrElseGet(supply func() T) T {
	if m.present {
		return m.value
	}
	return supply()
}

// ToPtr returns a pointer to a copy of the value, or nil when absent.
func (m Maybe[T]) ToPtr() *T {
	if !m.present {
		return nil
	}
	v := m.value
	return &v
}

// Map applies f to a present value (functor map). Nothing maps to Nothing.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.present {
		return Nothing[U]()
	}
	return Just(f(m.value))
}

// Apply applies a present function to a present value (applicative ap).
// Either side being Nothing yields Nothing.
func Apply[T, U any](mf Maybe[func(T) U], m Maybe[T]) Maybe[U] {
	f, ok := mf.Get()
	if !ok {
		return Nothing[U]()
	}
	return Map(m, f)
}

// Join collapses a nested Maybe by one level (monad flatten).
func Join[T any](mm Maybe[Maybe[T]]) Maybe[T] {
	if inner, ok := mm.Get(); ok {
		return inner
	}
	return Nothing[T]()
}

// Bind sequences a present value into f (monad bind). Nothing propagates.
func Bind[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.present {
		return Nothing[U]()
	}
	return f(m.value)
}

// Package reader provides the Reader monad: a computation that produces a
// value from a shared environment it never mutates.
//
// A Reader[E, A] is just a function from the environment E to a result A;
// composition threads the environment for you. The operations are
// package-level functions because Go methods cannot introduce type
// parameters.
//
// Example:
//
//	type Config struct{ Greeting string }
//
//	greet := reader.Map(reader.Ask[Config](), func(c Config) string {
//	    return c.Greeting + ", world"
//	})
//	out := greet.Run(Config{Greeting: "hello"}) // "hello, world"
package reader

// Reader computes an A from an environment E.
type Reader[E, A any] func(E) A

// Run evaluates the reader against env.
func (r Reader[E, A]) Run(env E) A {
	return r(env)
}

// Pure lifts a value into a reader that ignores the environment
// (applicative/monad unit).
func Pure[E, A any](a A) Reader[E, A] {
	return func(E) A {
		return a
	}
}

// Ask returns the environment itself.
func Ask[E any]() Reader[E, E] {
	return func(env E) E {
		return env
	}
}

// Local runs r against an environment transformed by f, leaving the outer
// environment untouched.
func Local[E, A any](r Reader[E, A], f func(E) E) Reader[E, A] {
	return func(env E) A {
		return r(f(env))
	}
}

// Map applies f to the reader's result (functor map).
func Map[E, A, B any](r Reader[E, A], f func(A) B) Reader[E, B] {
	return func(env E) B {
		return f(r(env))
	}
}

// Apply evaluates a reader-of-function and a reader-of-value against the
// same environment and applies one to the other (applicative ap).
func Apply[E, A, B any](rf Reader[E, func(A) B], r Reader[E, A]) Reader[E, B] {
	return func(env E) B {
		return rf(env)(r(env))
	}
}

// Join collapses a nested reader by one level, sharing the environment
// (monad flatten).
func Join[E, A any](rr Reader[E, Reader[E, A]]) Reader[E, A] {
	return func(env E) A {
		return rr(env)(env)
	}
}

// Bind sequences the reader's result into f, threading the same environment
// through both steps (monad bind).
func Bind[E, A, B any](r Reader[E, A], f func(A) Reader[E, B]) Reader[E, B] {
	return func(env E) B {
		return f(r(env))(env)
	}
}

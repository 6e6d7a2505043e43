/*
Package purealgebra implements the classic algebraic structures (magma,
semigroup, monoid) and the fold machinery built on top of them.

# Overview

Purealgebra wraps a binary operation (and optionally a backing element
collection and an identity value) into small value types whose only job is to
make the algebraic contract explicit: which pairs may be combined, what the
combination must satisfy, and how a whole collection collapses to one value.

The library splits into two families.

Strict structures carry a finite backing collection and check membership on
every Append:

	elems := []string{"foo", "bar", "foobar"}
	m, err := purealgebra.NewMagma(elems, func(a, b string) string { return a + b })
	r, err := m.Append("foo", "bar") // "foobar", checked against elems

Free structures are unconstrained by a backing collection; any two values of
the element type combine, and totality is guaranteed by the function's type
signature rather than by runtime checks:

	concat, err := purealgebra.NewFreeMonoid(func(a, b string) string { return a + b }, "")
	s := concat.Fold("a", " ", "b") // "a b"

# Folding

MonoidStructure is the enumerable monoid: an ordered, duplicate-permitting
element collection bound to an operation and identity. Fold performs a
deterministic left-to-right reduction in the collection's declared order:

	ms, err := purealgebra.NewMonoidStructure([]string{"a", " ", "b"},
		func(a, b string) string { return a + b }, "")
	out := ms.Fold() // "a b"

Order matters. The operation is assumed, never verified, associative, so the
fold result depends on iteration order, and the library never silently
reorders elements. Insertion order is the default; OrderedBy selects a
comparator order at construction.

ParallelFold is the opt-in chunked reduction for operations that really are
associative. It partitions the elements, folds chunks on their own
goroutines, and combines partial results positionally, so it agrees with
Fold whenever the operation is associative. Fold remains the default,
trustworthy path.

# Laws

Associativity and the identity law cannot be verified at runtime in general;
they are caller obligations. CheckAssociativity, CheckIdentity and
CheckClosure validate them over concrete samples, exhaustively or by random
sampling, and are meant to be run from test suites:

	if err := purealgebra.CheckAssociativity(samples, op); err != nil {
		t.Fatal(err)
	}

# Companion Packages

seq provides an immutable ordered Sequence with map/filter/fold and
conversion to and from MonoidStructure. maybe, either and reader provide the
textbook functor/applicative/monad wrappers the sequence interoperates with.

# Package Import

	import "github.com/Pure-Company/purealgebra"

	// Companions
	import "github.com/Pure-Company/purealgebra/seq"
*/
package purealgebra

// Package either provides the Either monad: a value holding one of two
// alternatives, conventionally an error-like Left or a successful Right.
//
// Either is a tagged struct compared structurally rather than an interface
// pair, so equal Lefts (or Rights) are equal values and no shared sentinel
// objects exist. The operations are right-biased: Map, Apply and Bind
// transform a Right and pass a Left through unchanged. The zero value is
// Left of L's zero value.
package either

// Either holds either a left L or a right R.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds an Either holding a left value.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right builds an Either holding a right value.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// Pure lifts a value into a Right (applicative/monad unit).
func Pure[L, R any](v R) Either[L, R] {
	return Right[L, R](v)
}

// IsRight reports whether the Either holds a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeft reports whether the Either holds a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// Left returns the left value and whether it is held.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether it is held.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Map applies f to a Right (functor map). A Left passes through.
func Map[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if !e.isRight {
		return Left[L, R2](e.left)
	}
	return Right[L, R2](f(e.right))
}

// MapLeft applies f to a Left. A Right passes through.
func MapLeft[L, R, L2 any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if e.isRight {
		return Right[L2, R](e.right)
	}
	return Left[L2, R](f(e.left))
}

// Apply applies a Right function to a Right value (applicative ap). The
// first Left encountered wins.
func Apply[L, R, R2 any](ef Either[L, func(R) R2], e Either[L, R]) Either[L, R2] {
	if !ef.isRight {
		return Left[L, R2](ef.left)
	}
	return Map(e, ef.right)
}

// Join collapses a nested Either by one level (monad flatten).
func Join[L, R any](ee Either[L, Either[L, R]]) Either[L, R] {
	if !ee.isRight {
		return Left[L, R](ee.left)
	}
	return ee.right
}

// Bind sequences a Right into f (monad bind). A Left propagates.
func Bind[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	if !e.isRight {
		return Left[L, R2](e.left)
	}
	return f(e.right)
}

// Fold collapses the Either to a single value by applying onLeft or onRight
// to whichever side is held.
func Fold[L, R, V any](e Either[L, R], onLeft func(L) V, onRight func(R) V) V {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

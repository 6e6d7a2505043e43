package purealgebra

import "errors"

// Sentinel errors for contract violations. Constructors and Append return
// these (wrapped with context) so callers can match them with errors.Is.
//
// These are programmer-contract violations, not transient failures; there is
// no retry or recovery path anywhere in the library:
//   - ErrInvalidArgument: nil operation or nil required collection at construction
//   - ErrNotAnElement: an Append operand is outside the backing collection
//   - ErrClosureViolation: an Append result is outside the backing collection
//   - ErrEqualOperands: both Append operands are equal under WithDistinctOperands
//
// Folding an empty collection is not an error; it returns the identity.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotAnElement     = errors.New("not an element")
	ErrClosureViolation = errors.New("closure violation")
	ErrEqualOperands    = errors.New("equal operands")
)

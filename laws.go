package purealgebra

import (
	"fmt"
	"math/rand/v2"
)

// ============================================================================
// Law Checkers
// ============================================================================
//
// Associativity, the identity law and closure are caller obligations: they
// cannot be verified at runtime in general, only validated over concrete
// samples. These helpers do exactly that and are meant to be called from
// test suites. Each returns nil on success and an error carrying the first
// counterexample on failure.

// CheckClosure verifies that op maps every pair of elements back into
// elements.
func CheckClosure[T comparable](elements []T, op Operation[T]) error {
	if op == nil {
		return fmt.Errorf("%w: nil operation", ErrInvalidArgument)
	}
	members := make(map[T]struct{}, len(elements))
	for _, e := range elements {
		members[e] = struct{}{}
	}
	for _, a := range elements {
		for _, b := range elements {
			if r := op(a, b); !contains(members, r) {
				return fmt.Errorf("%w: op(%v, %v) = %v", ErrClosureViolation, a, b, r)
			}
		}
	}
	return nil
}

// CheckAssociativity verifies op(op(a,b),c) == op(a,op(b,c)) for every
// triple drawn from samples. Cubic in len(samples); for large domains use
// CheckAssociativitySampled.
func CheckAssociativity[T comparable](samples []T, op Operation[T]) error {
	if op == nil {
		return fmt.Errorf("%w: nil operation", ErrInvalidArgument)
	}
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				if err := checkTriple(a, b, c, op); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// CheckAssociativitySampled probabilistically validates associativity by
// drawing trials random triples from samples. The seed makes a run
// reproducible.
func CheckAssociativitySampled[T comparable](samples []T, op Operation[T], trials int, seed uint64) error {
	if op == nil {
		return fmt.Errorf("%w: nil operation", ErrInvalidArgument)
	}
	if len(samples) == 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, 0))
	for i := 0; i < trials; i++ {
		a := samples[rng.IntN(len(samples))]
		b := samples[rng.IntN(len(samples))]
		c := samples[rng.IntN(len(samples))]
		if err := checkTriple(a, b, c, op); err != nil {
			return err
		}
	}
	return nil
}

// CheckIdentity verifies op(identity, x) == x == op(x, identity) for every
// x in samples.
func CheckIdentity[T comparable](samples []T, op Operation[T], identity T) error {
	if op == nil {
		return fmt.Errorf("%w: nil operation", ErrInvalidArgument)
	}
	for _, x := range samples {
		if got := op(identity, x); got != x {
			return fmt.Errorf("identity law: op(identity, %v) = %v, want %v", x, got, x)
		}
		if got := op(x, identity); got != x {
			return fmt.Errorf("identity law: op(%v, identity) = %v, want %v", x, got, x)
		}
	}
	return nil
}

func checkTriple[T comparable](a, b, c T, op Operation[T]) error {
	left := op(op(a, b), c)
	right := op(a, op(b, c))
	if left != right {
		return fmt.Errorf("associativity: op(op(%v, %v), %v) = %v but op(%v, op(%v, %v)) = %v",
			a, b, c, left, a, b, c, right)
	}
	return nil
}

func contains[T comparable](members map[T]struct{}, v T) bool {
	_, ok := members[v]
	return ok
}

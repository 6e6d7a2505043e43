package purealgebra

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ============================================================================
// MonoidStructure
// ============================================================================

// MonoidStructure is a concrete enumerable monoid: an ordered,
// duplicate-permitting element collection bound to an operation and an
// identity. It is the workhorse behind Fold.
//
// The element collection is copied at construction and iterated in a fixed,
// reproducible order: insertion order by default, comparator order when
// built with OrderedBy. Because the operation is assumed but never verified
// associative, fold order affects the result, and the structure never
// silently reorders elements.
type MonoidStructure[T any] struct {
	elements []T
	op       Operation[T]
	identity T
}

// StructureOption configures a MonoidStructure at construction time.
type StructureOption[T any] func(*MonoidStructure[T])

// OrderedBy stores the elements in the order induced by less instead of
// insertion order. The sort is stable, so equal elements keep their relative
// insertion order.
func OrderedBy[T any](less func(a, b T) bool) StructureOption[T] {
	return func(ms *MonoidStructure[T]) {
		sort.SliceStable(ms.elements, func(i, j int) bool {
			return less(ms.elements[i], ms.elements[j])
		})
	}
}

// NewMonoidStructure builds an enumerable monoid over a copy of elements.
// It returns ErrInvalidArgument when op or elements is nil. Duplicates are
// permitted and preserved.
func NewMonoidStructure[T any](elements []T, op Operation[T], identity T, opts ...StructureOption[T]) (*MonoidStructure[T], error) {
	if op == nil {
		return nil, fmt.Errorf("%w: nil operation", ErrInvalidArgument)
	}
	if elements == nil {
		return nil, fmt.Errorf("%w: nil element collection", ErrInvalidArgument)
	}
	ms := &MonoidStructure[T]{
		elements: slices.Clone(elements),
		op:       op,
		identity: identity,
	}
	for _, opt := range opts {
		opt(ms)
	}
	return ms, nil
}

// Elements returns a copy of the element collection in fold order.
func (ms *MonoidStructure[T]) Elements() []T {
	return slices.Clone(ms.elements)
}

// Len returns the number of elements.
func (ms *MonoidStructure[T]) Len() int {
	return len(ms.elements)
}

// Identity returns the identity element.
func (ms *MonoidStructure[T]) Identity() T {
	return ms.identity
}

// Fold reduces the elements to a single value by a deterministic
// left-to-right pass in the structure's declared order, seeded with the
// identity. An empty structure yields the identity; a singleton yields
// op(identity, e). Folding the same structure twice yields identical
// results.
func (ms *MonoidStructure[T]) Fold() T {
	acc := ms.identity
	for _, x := range ms.elements {
		acc = ms.op(acc, x)
	}
	return acc
}

// ============================================================================
// Parallel Fold
// ============================================================================

const defaultChunkSize = 64

// ParallelOption configures a single ParallelFold call.
type ParallelOption func(*parallelConfig)

type parallelConfig struct {
	chunkSize  int
	maxWorkers int
}

// WithChunkSize sets how many elements each goroutine folds per round.
// Values below 2 are raised to 2 so every round strictly shrinks the input.
func WithChunkSize(n int) ParallelOption {
	return func(c *parallelConfig) { c.chunkSize = n }
}

// WithMaxWorkers bounds the number of goroutines folding chunks
// concurrently. The default is runtime.GOMAXPROCS(0).
func WithMaxWorkers(n int) ParallelOption {
	return func(c *parallelConfig) { c.maxWorkers = n }
}

// ParallelFold reduces the elements by repeated chunked rounds: the element
// slice is partitioned into fixed-size chunks, each chunk is folded
// sequentially from the identity on its own goroutine, and the partial
// results become the input of the next round, until one value remains.
//
// Partial results are kept in an index-addressed slice, so they preserve
// chunk order and duplicates; combined with the positional recombination
// this makes the reduction deterministic. Each chunk is seeded with the
// identity, so the result still requires the identity law to hold.
//
// Correctness additionally requires the operation to be genuinely
// associative, not merely asserted so: chunk boundaries regroup the
// reduction. When in doubt, use Fold, which is the default, sequential,
// trustworthy path. Validate the operation with CheckAssociativity before
// opting in.
//
// The fold aborts with the context's error if ctx is cancelled mid-round.
func (ms *MonoidStructure[T]) ParallelFold(ctx context.Context, opts ...ParallelOption) (T, error) {
	cfg := parallelConfig{
		chunkSize:  defaultChunkSize,
		maxWorkers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.chunkSize < 2 {
		cfg.chunkSize = 2
	}
	if cfg.maxWorkers < 1 {
		cfg.maxWorkers = 1
	}

	elems := ms.elements
	for len(elems) > 1 {
		chunks := (len(elems) + cfg.chunkSize - 1) / cfg.chunkSize
		partials := make([]T, chunks)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.maxWorkers)
		for i := 0; i < chunks; i++ {
			lo := i * cfg.chunkSize
			hi := min(lo+cfg.chunkSize, len(elems))
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				acc := ms.identity
				for _, x := range elems[lo:hi] {
					acc = ms.op(acc, x)
				}
				partials[i] = acc
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			var zero T
			return zero, err
		}
		elems = partials
	}

	if len(elems) == 0 {
		return ms.identity, nil
	}
	return ms.op(ms.identity, elems[0]), nil
}

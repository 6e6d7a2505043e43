package purealgebra_test

import (
	"context"
	"fmt"
	"strings"

	pa "github.com/Pure-Company/purealgebra"
	"github.com/Pure-Company/purealgebra/seq"
)

// ============================================================================
// Example 1: Word Joining With A Concatenation Monoid
// ============================================================================

// Example_wordJoin folds an ordered word collection with the string
// concatenation monoid. Order is preserved: concatenation is associative but
// not commutative.
func Example_wordJoin() {
	ms, err := pa.NewMonoidStructure(
		[]string{"a", " ", "b"},
		func(a, b string) string { return a + b },
		"",
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(ms.Fold())
	// Output: a b
}

// ============================================================================
// Example 2: Clock Arithmetic
// ============================================================================

// Example_clockMonoid wraps integer addition onto a 12-hour clock face. The
// operation stays associative, so folding hour offsets in any grouping gives
// the same face value.
func Example_clockMonoid() {
	clock := func(a, b int) int {
		s := (a + b) % 12
		if s == 0 && a+b != 0 {
			return 12
		}
		return s
	}

	clk, err := pa.NewFreeMonoid(clock, 0)
	if err != nil {
		panic(err)
	}

	fmt.Println(clk.Append(2, 10))
	fmt.Println(clk.Append(8, 11))
	// Output:
	// 12
	// 7
}

// ============================================================================
// Example 3: Strict Membership Checking
// ============================================================================

// Example_strictMagma shows the strict variant rejecting operands from
// outside the backing collection.
func Example_strictMagma() {
	m, err := pa.NewMagma([]string{"foo"}, func(a, b string) string { return a + b })
	if err != nil {
		panic(err)
	}

	_, err = m.Append("foo", "bar")
	fmt.Println(err)
	// Output: not an element: bar
}

// ============================================================================
// Example 4: Sequence Pipeline Into A Fold
// ============================================================================

// Example_sequencePipeline stages values in a Sequence, transforms them, and
// collapses the result through a monoid.
func Example_sequencePipeline() {
	words := seq.Of("alpha", "beta", "gamma", "x")

	long := words.Filter(func(w string) bool { return len(w) > 1 })
	upper := seq.Map(long, strings.ToUpper)

	ms, err := upper.ToMonoid(func(a, b string) string {
		if a == "" {
			return b
		}
		return a + "," + b
	}, "")
	if err != nil {
		panic(err)
	}

	fmt.Println(ms.Fold())
	// Output: ALPHA,BETA,GAMMA
}

// ============================================================================
// Example 5: Law Checking From A Test Suite
// ============================================================================

// Example_lawChecking validates caller-asserted laws over concrete samples
// before trusting a parallel fold to them.
func Example_lawChecking() {
	add := func(a, b int) int { return a + b }
	samples := []int{-4, 0, 1, 9, 12}

	fmt.Println(pa.CheckAssociativity(samples, add))
	fmt.Println(pa.CheckIdentity(samples, add, 0))

	sub := func(a, b int) int { return a - b }
	err := pa.CheckAssociativity(samples, sub)
	fmt.Println(err != nil)
	// Output:
	// <nil>
	// <nil>
	// true
}

// ============================================================================
// Example 6: Opt-In Parallel Fold
// ============================================================================

// Example_parallelFold sums a range with the chunked parallel reduction.
// Addition is genuinely associative, so the result matches the sequential
// fold.
func Example_parallelFold() {
	nums := make([]int, 100)
	for i := range nums {
		nums[i] = i + 1
	}

	sum, err := pa.NewMonoidStructure(nums, func(a, b int) int { return a + b }, 0)
	if err != nil {
		panic(err)
	}

	sequential := sum.Fold()
	parallel, err := sum.ParallelFold(context.Background(), pa.WithChunkSize(8))
	if err != nil {
		panic(err)
	}

	fmt.Println(sequential, parallel)
	// Output: 5050 5050
}

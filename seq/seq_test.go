package seq

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pure-Company/purealgebra"
	"github.com/Pure-Company/purealgebra/maybe"
)

func TestConstruction(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := Empty[int]()
		assert.True(t, s.IsEmpty())
		assert.Equal(t, 0, s.Len())
	})

	t.Run("of preserves order and duplicates", func(t *testing.T) {
		s := Of("b", "a", "b")
		assert.Equal(t, []string{"b", "a", "b"}, s.All())
	})

	t.Run("from copies the input slice", func(t *testing.T) {
		backing := []int{1, 2, 3}
		s := From(backing)
		backing[0] = 99
		assert.Equal(t, []int{1, 2, 3}, s.All())
	})

	t.Run("nil elements are dropped with a warning", func(t *testing.T) {
		var buf bytes.Buffer
		SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
		defer SetLogger(nil)

		one := 1
		s := Of[*int](&one, nil, &one)

		assert.Equal(t, 2, s.Len())
		assert.Contains(t, buf.String(), "dropping nil element")
	})
}

func TestMap(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		s := Map(Of(1, 2, 3), strconv.Itoa)
		assert.Equal(t, []string{"1", "2", "3"}, s.All())
	})

	t.Run("nil results are dropped, not an error", func(t *testing.T) {
		var buf bytes.Buffer
		SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
		defer SetLogger(nil)

		s := Map(Of("a", "b"), func(string) *int { return nil })

		assert.True(t, s.IsEmpty())
		assert.Contains(t, buf.String(), "dropping nil map result")
	})

	t.Run("partial mapper keeps only produced values", func(t *testing.T) {
		s := Map(Of(1, 2, 3, 4), func(n int) *int {
			if n%2 == 0 {
				return &n
			}
			return nil
		})
		require.Equal(t, 2, s.Len())
		assert.Equal(t, 2, *s.All()[0])
		assert.Equal(t, 4, *s.All()[1])
	})
}

func TestMapMaybe(t *testing.T) {
	halve := func(n int) maybe.Maybe[int] {
		if n%2 == 0 {
			return maybe.Just(n / 2)
		}
		return maybe.Nothing[int]()
	}

	s := MapMaybe(Of(1, 2, 3, 4), halve)
	assert.Equal(t, []int{1, 2}, s.All())
}

func TestFilter(t *testing.T) {
	s := Of(1, 2, 3, 4, 5).Filter(func(n int) bool { return n%2 == 1 })
	assert.Equal(t, []int{1, 3, 5}, s.All())

	assert.True(t, Empty[int]().Filter(func(int) bool { return true }).IsEmpty())
}

func TestFoldLeft(t *testing.T) {
	t.Run("sums left to right", func(t *testing.T) {
		got := FoldLeft(Of(1, 2, 3), 0, func(acc, n int) int { return acc + n })
		assert.Equal(t, 6, got)
	})

	t.Run("empty sequence yields the identity", func(t *testing.T) {
		got := FoldLeft(Empty[int](), 0, func(acc, n int) int { return acc + n })
		assert.Equal(t, 0, got)
	})

	t.Run("visits front to back", func(t *testing.T) {
		got := FoldLeft(Of("a", "b", "c"), "", func(acc, x string) string { return acc + x })
		assert.Equal(t, "abc", got)
	})
}

func TestFoldRight(t *testing.T) {
	got := FoldRight(Of("a", "b", "c"), "", func(x, acc string) string { return acc + x })
	assert.Equal(t, "cba", got)

	assert.Equal(t, "seed", FoldRight(Empty[string](), "seed", func(x, acc string) string { return acc + x }))
}

func TestAppend(t *testing.T) {
	a := Of(1, 2)
	b := Of(3)

	joined := a.Append(b)

	assert.Equal(t, []int{1, 2, 3}, joined.All())
	assert.Equal(t, []int{1, 2}, a.All(), "append must not mutate the receiver")
	assert.Equal(t, []int{3}, b.All(), "append must not mutate the argument")
}

func TestEach(t *testing.T) {
	var seen []string
	Of("a", "b").Each(func(v string, i int) {
		seen = append(seen, strconv.Itoa(i)+v)
	})
	assert.Equal(t, []string{"0a", "1b"}, seen)
}

func TestJoin(t *testing.T) {
	nested := Of(Of(1, 2), Empty[int](), Of(3))
	assert.Equal(t, []int{1, 2, 3}, Join(nested).All())
}

func TestPureAndBind(t *testing.T) {
	assert.Equal(t, []int{7}, Pure(7).All())

	dup := func(n int) Sequence[int] { return Of(n, n) }
	assert.Equal(t, []int{1, 1, 2, 2}, Bind(Of(1, 2), dup).All())

	t.Run("bind equals join of map", func(t *testing.T) {
		s := Of(1, 2, 3)
		assert.Equal(t, Join(Map(s, dup)).All(), Bind(s, dup).All())
	})
}

func TestApply(t *testing.T) {
	fs := Of(
		func(n int) int { return n + 1 },
		func(n int) int { return n * 10 },
	)
	got := Apply(fs, Of(1, 2))
	assert.Equal(t, []int{2, 3, 10, 20}, got.All())
}

func TestToMonoid(t *testing.T) {
	concat := func(a, b string) string { return a + b }

	t.Run("wraps elements in order", func(t *testing.T) {
		ms, err := Of("a", " ", "b").ToMonoid(concat, "")
		require.NoError(t, err)
		assert.Equal(t, "a b", ms.Fold())
	})

	t.Run("empty sequence folds to the identity", func(t *testing.T) {
		ms, err := Empty[string]().ToMonoid(concat, "id")
		require.NoError(t, err)
		assert.Equal(t, "id", ms.Fold())
	})

	t.Run("round trips through FromMonoid", func(t *testing.T) {
		ms, err := Of("x", "y").ToMonoid(concat, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, FromMonoid(ms).All())
	})
}

func TestPipeline(t *testing.T) {
	// Staging container usage: filter, transform, then fold through the
	// algebra package.
	words := Of("go", "is", "fun", "x")

	joinSp := func(a, b string) string {
		switch {
		case a == "":
			return b
		case b == "":
			return a
		default:
			return a + " " + b
		}
	}

	ms, err := Map(words.Filter(func(w string) bool { return len(w) > 1 }), strings.ToUpper).
		ToMonoid(joinSp, "")
	require.NoError(t, err)

	assert.Equal(t, "GO IS FUN", ms.Fold())
	require.NoError(t, purealgebra.CheckIdentity([]string{"GO", "IS"}, joinSp, ""))
	require.NoError(t, purealgebra.CheckAssociativity([]string{"GO", "IS", ""}, joinSp))
}

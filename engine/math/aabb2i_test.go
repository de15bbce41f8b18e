package math

import (
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
)

func TestNewAabb2iWrapsPoints(t *testing.T) {
	start := NewVec2i(0, 1)
	end := NewVec2i(2, 3)

	require.Equal(t, NewAabb2i(start, end), NewAabb2i(end, start))
	require.True(t, NewAabb2i(start, end).ContainsPoint(start))
	require.True(t, NewAabb2i(end, start).ContainsPoint(start))
	require.False(t, NewAabb2i(start, end).ContainsPoint(end))
	require.False(t, NewAabb2i(end, start).ContainsPoint(end))
}

func TestNewAabb2iMixedCorners(t *testing.T) {
	box := NewAabb2i(NewVec2i(5, -2), NewVec2i(-1, 7))
	require.Equal(t, NewVec2i(-1, -2), box.Min)
	require.Equal(t, NewVec2i(5, 7), box.Max)
}

func TestAabb2iIsEmpty(t *testing.T) {
	require.False(t, NewAabb2i(NewVec2iSplat(0), NewVec2iSplat(1)).IsEmpty())
	require.True(t, NewAabb2i(NewVec2iSplat(0), NewVec2iSplat(0)).IsEmpty())
	require.True(t, Aabb2i{}.IsEmpty())
	require.True(t, NewAabb2iEmpty().IsEmpty())

	// zero extent on a single axis
	require.True(t, NewAabb2i(NewVec2i(0, 0), NewVec2i(4, 0)).IsEmpty())
	require.True(t, NewAabb2i(NewVec2i(0, 0), NewVec2i(0, 4)).IsEmpty())

	// inverted boxes can only be built by hand
	require.True(t, Aabb2i{Min: NewVec2i(3, 3), Max: NewVec2i(1, 5)}.IsEmpty())
}

func TestAabb2iFromMinPoint(t *testing.T) {
	require.Equal(t, NewVec2i(2, 3), NewAabb2iFromMinPoint(NewVec2iSplat(0), NewVec2i(2, 3)).Size())
	require.Equal(t, NewVec2i(2, 3), NewAabb2iFromMinPoint(NewVec2iSplat(0), NewVec2i(2, -3)).Size())

	box := NewAabb2iFromMinPoint(NewVec2i(4, 4), NewVec2i(-2, -1))
	require.Equal(t, NewAabb2i(NewVec2i(2, 3), NewVec2i(4, 4)), box)
}

func TestAabb2iAroundPoint(t *testing.T) {
	box := NewAabb2iAroundPoint(NewVec2i(3, 3), NewVec2i(1, 2))
	require.Equal(t, NewVec2i(2, 1), box.Min)
	require.Equal(t, NewVec2i(4, 5), box.Max)
	require.Equal(t, NewVec2i(2, 4), box.Size())
	require.True(t, box.ContainsPoint(NewVec2i(3, 3)))
}

func TestAabb2iUnion(t *testing.T) {
	a := NewAabb2iFromMinPoint(NewVec2iZero(), NewVec2iSplat(1))
	b := NewAabb2iFromMinPoint(NewVec2iSplat(2), NewVec2iSplat(1))
	aub := a.Union(b)
	bua := b.Union(a)

	require.Equal(t, aub, bua)
	require.Equal(t, NewAabb2i(NewVec2iZero(), NewVec2iSplat(3)), aub)
}

func TestAabb2iUnionWithEmpty(t *testing.T) {
	a := NewAabb2i(NewVec2i(-2, 1), NewVec2i(4, 6))
	empties := map[string]Aabb2i{
		"zero":      NewAabb2iEmpty(),
		"flat":      NewAabb2i(NewVec2i(10, 10), NewVec2i(10, 20)),
		"far point": NewAabb2i(NewVec2i(-50, -50), NewVec2i(-50, -50)),
	}

	for name, empty := range empties {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, a, a.Union(empty))
			require.Equal(t, a, empty.Union(a))
		})
	}
}

func TestAabb2iUnionOverlapping(t *testing.T) {
	a := NewAabb2i(NewVec2i(0, 4), NewVec2i(5, 6))
	b := NewAabb2i(NewVec2i(3, 0), NewVec2i(4, 10))
	require.Equal(t, NewAabb2i(NewVec2i(0, 0), NewVec2i(5, 10)), a.Union(b))
	require.Equal(t, a.Union(b), b.Union(a))

	inner := NewAabb2i(NewVec2i(1, 4), NewVec2i(2, 5))
	require.Equal(t, a, a.Union(inner))
}

func TestUnionAll(t *testing.T) {
	require.True(t, UnionAll().IsEmpty())

	cells := []Aabb2i{
		NewAabb2iFromMinPoint(NewVec2i(1, 1), NewVec2iSplat(1)),
		NewAabb2iEmpty(),
		NewAabb2iFromMinPoint(NewVec2i(4, 2), NewVec2iSplat(1)),
		NewAabb2iFromMinPoint(NewVec2i(2, 6), NewVec2iSplat(1)),
	}
	expected := NewAabb2i(NewVec2i(1, 1), NewVec2i(5, 7))
	require.Equal(t, expected, UnionAll(cells...))

	// order does not matter
	require.Equal(t, expected, UnionAll(cells[3], cells[0], cells[2], cells[1]))
}

func TestAabb2iContainsPointHalfOpen(t *testing.T) {
	box := NewAabb2i(NewVec2i(0, 0), NewVec2i(1, 1))
	require.True(t, box.ContainsPoint(NewVec2i(0, 0)))
	require.False(t, box.ContainsPoint(NewVec2i(1, 0)))
	require.False(t, box.ContainsPoint(NewVec2i(0, 1)))
	require.False(t, box.ContainsPoint(NewVec2i(1, 1)))
	require.False(t, box.ContainsPoint(NewVec2i(-1, 0)))

	wide := NewAabb2i(NewVec2i(-3, 2), NewVec2i(3, 8))
	for x := int32(-3); x < 3; x++ {
		require.True(t, wide.ContainsPoint(NewVec2i(x, 2)))
		require.False(t, wide.ContainsPoint(NewVec2i(x, 8)))
	}
	require.False(t, wide.ContainsPoint(NewVec2i(3, 5)))
}

func TestAabb2iScale(t *testing.T) {
	box := NewAabb2i(NewVec2i(1, 2), NewVec2i(3, 5))
	require.Equal(t, NewAabb2i(NewVec2i(2, 4), NewVec2i(6, 10)), box.Scale(2))

	// negative factors flip the corners which get normalized again
	require.Equal(t, NewAabb2i(NewVec2i(-3, -5), NewVec2i(-1, -2)), box.Scale(-1))
}

func TestAabb2iMulVec(t *testing.T) {
	cells := NewAabb2i(NewVec2i(1, 2), NewVec2i(3, 3))
	pixels := cells.MulVec(NewVec2i(16, 32))
	require.Equal(t, NewAabb2i(NewVec2i(16, 64), NewVec2i(48, 96)), pixels)
}

func TestAabb2iToAabb2(t *testing.T) {
	box := NewAabb2i(NewVec2i(1, 2), NewVec2i(3, 5)).ToAabb2()
	require.Equal(t, NewVec2(1, 2), box.Min)
	require.Equal(t, NewVec2(3, 5), box.Max)

	// the exclusive max is inside the closed view
	require.True(t, box.ContainsPoint(NewVec2(3, 5)))
}

func TestAabb2iUsableAsMapKey(t *testing.T) {
	seen := map[Aabb2i]string{}
	seen[NewAabb2i(NewVec2i(0, 1), NewVec2i(2, 3))] = "a"
	require.Equal(t, "a", seen[NewAabb2i(NewVec2i(2, 3), NewVec2i(0, 1))])
}

func TestAabb2iEncoding(t *testing.T) {
	box := NewAabb2i(NewVec2i(0, 1), NewVec2i(2, 3))

	data, err := json.Marshal(box)
	require.NoError(t, err)
	require.JSONEq(t, `{"min":{"x":0,"y":1},"max":{"x":2,"y":3}}`, string(data))

	type selection struct {
		Cells Aabb2i `toml:"cells"`
	}
	raw, err := toml.Marshal(selection{Cells: box})
	require.NoError(t, err)

	var decoded selection
	require.NoError(t, toml.Unmarshal(raw, &decoded))
	require.Equal(t, box, decoded.Cells)
}

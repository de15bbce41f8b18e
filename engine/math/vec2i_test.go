package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec2iConstructors(t *testing.T) {
	require.Equal(t, Vec2i{X: 3, Y: 3}, NewVec2iSplat(3))
	require.Equal(t, Vec2i{}, NewVec2iZero())
	require.Equal(t, NewVec2i(1, 2), NewVec2iFromTuple(1, 2))
	require.Equal(t, NewVec2i(-4, 9), NewVec2iFromArray([2]int32{-4, 9}))

	x, y := NewVec2i(5, 6).Elem()
	require.Equal(t, int32(5), x)
	require.Equal(t, int32(6), y)
	require.Equal(t, [2]int32{5, 6}, NewVec2i(5, 6).ToArray())
}

func TestVec2iArithmetic(t *testing.T) {
	a := NewVec2i(6, -4)
	b := NewVec2i(2, 3)

	require.Equal(t, NewVec2i(8, -1), a.Add(b))
	require.Equal(t, NewVec2i(4, -7), a.Sub(b))
	require.Equal(t, NewVec2i(12, -12), a.Mul(b))
	require.Equal(t, NewVec2i(3, -1), a.Div(b))
	require.Equal(t, NewVec2i(18, -12), a.MulScalar(3))
	require.Equal(t, NewVec2i(3, -2), a.DivScalar(2))
	require.Equal(t, NewVec2i(-6, 4), a.Neg())
	require.Equal(t, NewVec2i(2, -4), a.Min(b))
	require.Equal(t, NewVec2i(6, 3), a.Max(b))
}

func TestVec2iDivByZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		NewVec2i(1, 1).Div(NewVec2i(1, 0))
	})
}

func TestVec2iTranspose(t *testing.T) {
	require.Equal(t, NewVec2i(2, 1), NewVec2i(1, 2).Transpose())
	require.Equal(t, NewVec2i(1, 2), NewVec2i(1, 2).Transpose().Transpose())
}

func TestVec2iLength(t *testing.T) {
	require.Equal(t, float32(5), NewVec2i(3, 4).Length())
	require.Equal(t, float32(5), NewVec2i(-3, -4).Length())
	require.Equal(t, float32(0), NewVec2iZero().Length())

	// would overflow if squared in int32
	require.InDelta(t, 141421.356, float64(NewVec2i(100000, 100000).Length()), 0.05)
}

func TestVec2iToVec2(t *testing.T) {
	require.Equal(t, NewVec2(-3, 7), NewVec2i(-3, 7).ToVec2())
	require.Equal(t, NewVec2i(-1, 2), NewVec2(-1.5, 2.7).ToVec2i())
}

func TestVec2iClamp(t *testing.T) {
	low := NewVec2iZero()
	high := NewVec2iSplat(7)
	require.Equal(t, NewVec2i(0, 7), NewVec2i(-3, 12).Clamp(low, high))
	require.Equal(t, NewVec2i(4, 5), NewVec2i(4, 5).Clamp(low, high))
}

func TestVec2iString(t *testing.T) {
	require.Equal(t, "(1, -2)", NewVec2i(1, -2).String())
}

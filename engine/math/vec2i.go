package math

import (
	"fmt"
	m "math"
)

// ------------------------------------------
// Integer Vector 2
// ------------------------------------------

func NewVec2i(x, y int32) Vec2i {
	return Vec2i{X: x, Y: y}
}

// NewVec2iSplat returns a vector with both components set to v.
func NewVec2iSplat(v int32) Vec2i {
	return Vec2i{v, v}
}

func NewVec2iZero() Vec2i {
	return NewVec2iSplat(0)
}

// NewVec2iFromTuple builds a vector from a pair of values, the counterpart of Elem.
func NewVec2iFromTuple(x, y int32) Vec2i {
	return Vec2i{x, y}
}

func NewVec2iFromArray(a [2]int32) Vec2i {
	return Vec2i{a[0], a[1]}
}

// Elem extracts the components as a pair.
func (v Vec2i) Elem() (x, y int32) {
	return v.X, v.Y
}

func (v Vec2i) ToArray() [2]int32 {
	return [2]int32{v.X, v.Y}
}

/**
 * @brief Widens v to a float vector. Magnitudes above 2^24 lose precision.
 */
func (v Vec2i) ToVec2() Vec2 {
	return Vec2{float32(v.X), float32(v.Y)}
}

// Transpose swaps the x and y components.
func (v Vec2i) Transpose() Vec2i {
	return Vec2i{v.Y, v.X}
}

/**
 * @brief Returns the euclidean length of v. The squares are summed in floating
 * point so large components do not overflow the integer range.
 */
func (v Vec2i) Length() float32 {
	x, y := float64(v.X), float64(v.Y)
	return float32(m.Sqrt(x*x + y*y))
}

func (v Vec2i) Add(other Vec2i) Vec2i {
	return Vec2i{v.X + other.X, v.Y + other.Y}
}

func (v Vec2i) Sub(other Vec2i) Vec2i {
	return Vec2i{v.X - other.X, v.Y - other.Y}
}

func (v Vec2i) Mul(other Vec2i) Vec2i {
	return Vec2i{v.X * other.X, v.Y * other.Y}
}

// Div divides component-wise. A zero component in other panics.
func (v Vec2i) Div(other Vec2i) Vec2i {
	return Vec2i{v.X / other.X, v.Y / other.Y}
}

func (v Vec2i) MulScalar(scalar int32) Vec2i {
	return Vec2i{v.X * scalar, v.Y * scalar}
}

func (v Vec2i) DivScalar(scalar int32) Vec2i {
	return Vec2i{v.X / scalar, v.Y / scalar}
}

func (v Vec2i) Neg() Vec2i {
	return Vec2i{-v.X, -v.Y}
}

func (v Vec2i) Min(other Vec2i) Vec2i {
	return Vec2i{min(v.X, other.X), min(v.Y, other.Y)}
}

func (v Vec2i) Max(other Vec2i) Vec2i {
	return Vec2i{max(v.X, other.X), max(v.Y, other.Y)}
}

// Clamp clamps every component of v into [low, high].
func (v Vec2i) Clamp(low, high Vec2i) Vec2i {
	return Vec2i{Clamp(v.X, low.X, high.X), Clamp(v.Y, low.Y, high.Y)}
}

func (v Vec2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

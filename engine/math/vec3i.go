package math

import (
	"fmt"
	m "math"
)

// ------------------------------------------
// Integer Vector 3
// ------------------------------------------

func NewVec3i(x, y, z int32) Vec3i {
	return Vec3i{X: x, Y: y, Z: z}
}

func NewVec3iSplat(v int32) Vec3i {
	return Vec3i{v, v, v}
}

func NewVec3iZero() Vec3i {
	return NewVec3iSplat(0)
}

func NewVec3iFromTuple(x, y, z int32) Vec3i {
	return Vec3i{x, y, z}
}

func NewVec3iFromArray(a [3]int32) Vec3i {
	return Vec3i{a[0], a[1], a[2]}
}

func (v Vec3i) Elem() (x, y, z int32) {
	return v.X, v.Y, v.Z
}

func (v Vec3i) ToArray() [3]int32 {
	return [3]int32{v.X, v.Y, v.Z}
}

func (v Vec3i) ToVec3() Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Length is computed after widening, see Vec2i.Length.
func (v Vec3i) Length() float32 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return float32(m.Sqrt(x*x + y*y + z*z))
}

func (v Vec3i) Add(other Vec3i) Vec3i {
	return Vec3i{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3i) Sub(other Vec3i) Vec3i {
	return Vec3i{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vec3i) Mul(other Vec3i) Vec3i {
	return Vec3i{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vec3i) Div(other Vec3i) Vec3i {
	return Vec3i{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vec3i) MulScalar(scalar int32) Vec3i {
	return Vec3i{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

func (v Vec3i) DivScalar(scalar int32) Vec3i {
	return Vec3i{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

func (v Vec3i) Neg() Vec3i {
	return Vec3i{-v.X, -v.Y, -v.Z}
}

func (v Vec3i) Min(other Vec3i) Vec3i {
	return Vec3i{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

func (v Vec3i) Max(other Vec3i) Vec3i {
	return Vec3i{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

func (v Vec3i) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

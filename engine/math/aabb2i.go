package math

import "fmt"

/**
 * @brief Creates a half open box from two corners given in any order.
 */
func NewAabb2i(a, b Vec2i) Aabb2i {
	return Aabb2i{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

/**
 * @brief Returns the zero box, which is empty and is the identity of Union.
 */
func NewAabb2iEmpty() Aabb2i {
	return Aabb2i{}
}

func NewAabb2iAroundPoint(center, extents Vec2i) Aabb2i {
	return NewAabb2i(center.Sub(extents), center.Add(extents))
}

/**
 * @brief Creates a box starting at min spanning size. A negative size component
 * still produces a valid box of the absolute size, extending the other way.
 */
func NewAabb2iFromMinPoint(minPoint, size Vec2i) Aabb2i {
	return NewAabb2i(minPoint, minPoint.Add(size))
}

/**
 * @brief Converts to a closed float box with the same numeric extent.
 * The exclusive Max becomes inclusive, so the two boxes do not contain
 * exactly the same points.
 */
func (b Aabb2i) ToAabb2() Aabb2 {
	return NewAabb2(b.Min.ToVec2(), b.Max.ToVec2())
}

// Scale multiplies both corners by factor, about the origin. Overflow wraps.
func (b Aabb2i) Scale(factor int32) Aabb2i {
	return NewAabb2i(b.Min.MulScalar(factor), b.Max.MulScalar(factor))
}

// MulVec multiplies both corners component-wise, e.g. to turn cells into pixels.
func (b Aabb2i) MulVec(v Vec2i) Aabb2i {
	return NewAabb2i(b.Min.Mul(v), b.Max.Mul(v))
}

/**
 * @brief Returns the smallest box covering both b and rhs.
 * If either operand is empty the other one is returned unchanged.
 */
func (b Aabb2i) Union(rhs Aabb2i) Aabb2i {
	if b.IsEmpty() {
		return rhs
	}
	if rhs.IsEmpty() {
		return b
	}

	minRect := NewAabb2i(b.Min, rhs.Min)
	maxRect := NewAabb2i(b.Max, rhs.Max)
	return NewAabb2i(minRect.Min, maxRect.Max)
}

// UnionAll folds boxes with Union starting from the empty box.
func UnionAll(boxes ...Aabb2i) Aabb2i {
	acc := NewAabb2iEmpty()
	for _, box := range boxes {
		acc = acc.Union(box)
	}
	return acc
}

func (b Aabb2i) IsEmpty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y
}

// ContainsPoint is inclusive of Min and exclusive of Max on both axes.
func (b Aabb2i) ContainsPoint(p Vec2i) bool {
	return b.Min.X <= p.X && p.X < b.Max.X &&
		b.Min.Y <= p.Y && p.Y < b.Max.Y
}

func (b Aabb2i) Size() Vec2i {
	return b.Max.Sub(b.Min)
}

func (b Aabb2i) String() string {
	return fmt.Sprintf("[%s, %s)", b.Min, b.Max)
}

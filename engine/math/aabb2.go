package math

/**
 * @brief Creates a box from two opposite corners given in any order.
 * The corners are normalized so that Min <= Max on both axes.
 *
 * @param a The first corner.
 * @param b The opposite corner.
 * @return A new closed box.
 */
func NewAabb2(a, b Vec2) Aabb2 {
	return Aabb2{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

/**
 * @brief Creates the canonical empty box: Min at +infinity and Max at -infinity.
 * Any union-like operation treats it as the identity.
 */
func NewAabb2Empty() Aabb2 {
	return Aabb2{
		Min: NewVec2Splat(kinf(1)),
		Max: NewVec2Splat(kinf(-1)),
	}
}

/**
 * @brief Creates a box centered at center whose half-size is extents.
 */
func NewAabb2AroundPoint(center, extents Vec2) Aabb2 {
	return NewAabb2(center.Sub(extents), center.Add(extents))
}

/**
 * @brief Reports whether the box has zero or negative extent along either axis.
 * A degenerate box (a line or a single point) counts as empty even though its
 * corners would pass ContainsPoint.
 */
func (b Aabb2) IsEmpty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y
}

/**
 * @brief Multiplies both corners by factor. The box scales about the
 * coordinate origin, not about its own center.
 */
func (b Aabb2) Scale(factor float32) Aabb2 {
	return NewAabb2(b.Min.MulScalar(factor), b.Max.MulScalar(factor))
}

// ContainsPoint tests p against the closed range, so points on Max are inside.
func (b Aabb2) ContainsPoint(p Vec2) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// Size is Max - Min. It is negative on both axes for NewAabb2Empty.
func (b Aabb2) Size() Vec2 {
	return b.Max.Sub(b.Min)
}

/**
 * @brief Maps p from absolute coordinates into the box's local [0, 1] range.
 * A box with a zero size component yields infinity or NaN on that axis;
 * check IsEmpty first when the box may be degenerate.
 */
func (b Aabb2) MapToPercentage(p Vec2) Vec2 {
	return p.Sub(b.Min).Div(b.Size())
}

/**
 * @brief Maps p from the box's local [0, 1] range back into absolute coordinates.
 * Inverse of MapToPercentage.
 */
func (b Aabb2) MapFromPercentage(p Vec2) Vec2 {
	return p.Mul(b.Size()).Add(b.Min)
}

/**
 * @brief Returns the overlap of b and other. The result is not normalized,
 * so disjoint boxes give an inverted box that reports IsEmpty.
 */
func (b Aabb2) Intersect(other Aabb2) Aabb2 {
	return Aabb2{
		Min: b.Min.Max(other.Min),
		Max: b.Max.Min(other.Max),
	}
}

func (b Aabb2) Compare(other Aabb2, tolerance float32) bool {
	return b.Min.Compare(other.Min, tolerance) && b.Max.Compare(other.Max, tolerance)
}

/**
 * @brief Re-projects p from the frame of from into the frame of to.
 * This is how pixel, UV and widget coordinates are converted into each other.
 * from must not be degenerate.
 */
func Remap(p Vec2, from, to Aabb2) Vec2 {
	return to.MapFromPercentage(from.MapToPercentage(p))
}

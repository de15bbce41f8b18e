package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X float32 `toml:"x" json:"x"`
	Y float32 `toml:"y" json:"y"`
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X float32 `toml:"x" json:"x"`
	Y float32 `toml:"y" json:"y"`
	Z float32 `toml:"z" json:"z"`
}

// Vec4 represents a 4D vector. The editor uses it for RGBA colours.
type Vec4 struct {
	X float32 `toml:"x" json:"x"`
	Y float32 `toml:"y" json:"y"`
	Z float32 `toml:"z" json:"z"`
	W float32 `toml:"w" json:"w"`
}

// Vec2i represents a 2D integer vector
type Vec2i struct {
	X int32 `toml:"x" json:"x"`
	Y int32 `toml:"y" json:"y"`
}

// Vec3i represents a 3D integer vector
type Vec3i struct {
	X int32 `toml:"x" json:"x"`
	Y int32 `toml:"y" json:"y"`
	Z int32 `toml:"z" json:"z"`
}

/**
 * @brief A closed 2D range. Both Min and Max count as being inside the box.
 * Used for continuous regions such as UV ranges and widget rectangles.
 */
type Aabb2 struct {
	/** @brief The minimum corner. */
	Min Vec2 `toml:"min" json:"min"`
	/** @brief The maximum corner. */
	Max Vec2 `toml:"max" json:"max"`
}

/**
 * @brief A half open 2D range. Min is inclusive, Max is exclusive.
 * Used for discrete ranges such as atlas cells and pixels.
 * The zero value is empty.
 */
type Aabb2i struct {
	/** @brief The inclusive minimum corner. */
	Min Vec2i `toml:"min" json:"min"`
	/** @brief The exclusive maximum corner. */
	Max Vec2i `toml:"max" json:"max"`
}

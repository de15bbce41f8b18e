package ui

import "github.com/spaghettifunk/dungeon-sprites/engine/math"

// Colours are packed as 0xAABBGGRR.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorTransparent uint32 = 0x00000000

	ColorCursor    uint32 = 0xFF44FF44
	ColorHovered   uint32 = 0x88FFFFFF
	ColorSelection uint32 = 0xFF4444FF
)

func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// ColorFromVec4 packs an (r, g, b, a) colour with components in [0, 1].
func ColorFromVec4(c math.Vec4) uint32 {
	return RGBA(channel(c.X), channel(c.Y), channel(c.Z), channel(c.W))
}

func channel(v float32) uint8 {
	return uint8(math.Clamp(v, 0, 1)*255 + 0.5)
}

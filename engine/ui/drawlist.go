package ui

import (
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
)

type CommandKind uint8

const (
	CommandRect CommandKind = iota
	CommandCircle
	CommandImage
	CommandText
)

func (k CommandKind) String() string {
	switch k {
	case CommandRect:
		return "rect"
	case CommandCircle:
		return "circle"
	case CommandImage:
		return "image"
	case CommandText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawCommand is a single recorded primitive. Circles keep their centre in Min.
// Text keeps its top-left corner in Min and its measured extent in Max.
type DrawCommand struct {
	Kind     CommandKind
	Min      math.Vec2
	Max      math.Vec2
	Radius   float32
	Color    uint32
	Filled   bool
	Texture  uint32
	UVMin    math.Vec2
	UVMax    math.Vec2
	Text     string
	Font     Font
	ClipRect math.Aabb2
}

// DrawList records primitives for one frame. The backend decides how to draw them.
type DrawList struct {
	Commands  []DrawCommand
	clipStack []math.Aabb2
}

func NewDrawList(viewport math.Aabb2) *DrawList {
	return &DrawList{
		Commands:  make([]DrawCommand, 0, 64),
		clipStack: []math.Aabb2{viewport},
	}
}

// ClipRect is the clip rectangle applied to newly recorded commands.
func (dl *DrawList) ClipRect() math.Aabb2 {
	return dl.clipStack[len(dl.clipStack)-1]
}

// PushClipRect intersects r with the current clip rectangle and makes the result current.
func (dl *DrawList) PushClipRect(r math.Aabb2) {
	dl.clipStack = append(dl.clipStack, dl.ClipRect().Intersect(r))
}

func (dl *DrawList) PopClipRect() {
	if len(dl.clipStack) == 1 {
		core.LogWarn("PopClipRect called without a matching PushClipRect")
		return
	}
	dl.clipStack = dl.clipStack[:len(dl.clipStack)-1]
}

func (dl *DrawList) WithClipRectIntersect(r math.Aabb2, fn func()) {
	dl.PushClipRect(r)
	defer dl.PopClipRect()
	fn()
}

func (dl *DrawList) AddRect(pMin, pMax math.Vec2, color uint32, filled bool) {
	dl.Commands = append(dl.Commands, DrawCommand{
		Kind:     CommandRect,
		Min:      pMin,
		Max:      pMax,
		Color:    color,
		Filled:   filled,
		ClipRect: dl.ClipRect(),
	})
}

func (dl *DrawList) AddCircle(center math.Vec2, radius float32, color uint32) {
	dl.Commands = append(dl.Commands, DrawCommand{
		Kind:     CommandCircle,
		Min:      center,
		Max:      center,
		Radius:   radius,
		Color:    color,
		ClipRect: dl.ClipRect(),
	})
}

func (dl *DrawList) AddImage(texture uint32, pMin, pMax, uvMin, uvMax math.Vec2) {
	dl.Commands = append(dl.Commands, DrawCommand{
		Kind:     CommandImage,
		Min:      pMin,
		Max:      pMax,
		Color:    ColorWhite,
		Texture:  texture,
		UVMin:    uvMin,
		UVMax:    uvMax,
		ClipRect: dl.ClipRect(),
	})
}

func (dl *DrawList) AddText(fnt Font, pos math.Vec2, color uint32, text string) {
	dl.Commands = append(dl.Commands, DrawCommand{
		Kind:     CommandText,
		Min:      pos,
		Max:      pos.Add(fnt.Measure(text)),
		Color:    color,
		Text:     text,
		Font:     fnt,
		ClipRect: dl.ClipRect(),
	})
}

// CountByKind is used by backends for per-frame statistics.
func (dl *DrawList) CountByKind() map[CommandKind]int {
	counts := make(map[CommandKind]int, 4)
	for _, c := range dl.Commands {
		counts[c.Kind]++
	}
	return counts
}

// Reset clears recorded commands and resets the clip stack to viewport.
func (dl *DrawList) Reset(viewport math.Aabb2) {
	dl.Commands = dl.Commands[:0]
	dl.clipStack = append(dl.clipStack[:0], viewport)
}

package ui

import (
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
)

const (
	// Mouse travel, in pixels, before a held button counts as dragging.
	DragThreshold float32 = 6
)

type Style struct {
	WindowPadding math.Vec2
	ItemSpacing   math.Vec2
	Font          Font
	TextColor     uint32
}

func DefaultStyle() Style {
	return Style{
		WindowPadding: math.NewVec2(8, 8),
		ItemSpacing:   math.NewVec2(8, 4),
		Font:          DefaultFont(),
		TextColor:     ColorWhite,
	}
}

type itemState struct {
	id      string
	bounds  math.Aabb2
	hovered bool
	clicked bool
}

type lineState struct {
	// Left edge new lines start from; moves while inside a Group.
	indentX    float32
	cursor     math.Vec2
	lineHeight float32

	prevLineY      float32
	prevLineHeight float32
	prevItemEndX   float32
}

// Frame is the Context for one window for one frame. It lays items out top to
// bottom and reads mouse state from the core input system.
type Frame struct {
	style    Style
	viewport math.Aabb2
	drawList *DrawList

	layout    lineState
	lastItem  itemState
	groups    []math.Aabb2
	mousePos  math.Vec2
	mouseDown [core.BUTTON_MAX_BUTTONS]bool
	pressed   [core.BUTTON_MAX_BUTTONS]bool
	dragDelta [core.BUTTON_MAX_BUTTONS]math.Vec2
}

func NewFrame(viewport math.Aabb2, style Style) *Frame {
	if style.Font == nil {
		style.Font = DefaultFont()
	}
	f := &Frame{
		style:    style,
		viewport: viewport,
		drawList: NewDrawList(viewport),
	}
	start := viewport.Min.Add(style.WindowPadding)
	f.layout = lineState{
		indentX:      start.X,
		cursor:       start,
		prevLineY:    start.Y,
		prevItemEndX: start.X,
	}

	f.mousePos = core.InputGetMousePosition()
	for b := core.Button(0); b < core.BUTTON_MAX_BUTTONS; b++ {
		f.mouseDown[b] = core.InputIsButtonDown(b)
		f.pressed[b] = core.InputIsButtonPressed(b)
		f.dragDelta[b] = core.InputGetMouseDragDelta(b)
	}
	return f
}

func (f *Frame) Viewport() math.Aabb2 {
	return f.viewport
}

func (f *Frame) DrawList() *DrawList {
	return f.drawList
}

func (f *Frame) MousePos() math.Vec2 {
	return f.mousePos
}

func (f *Frame) CursorScreenPos() math.Vec2 {
	return f.layout.cursor
}

func (f *Frame) ContentRegionAvail() math.Vec2 {
	regionMax := f.viewport.Max.Sub(f.style.WindowPadding)
	return regionMax.Sub(f.layout.cursor).Max(math.NewVec2Zero())
}

func (f *Frame) InvisibleButton(id string, size math.Vec2) bool {
	bounds := math.NewAabb2(f.layout.cursor, f.layout.cursor.Add(size))
	f.itemAdd(id, bounds)

	// Items outside the clip rect can't be hovered.
	visible := f.drawList.ClipRect().Intersect(bounds)
	f.lastItem.hovered = bounds.ContainsPoint(f.mousePos) && visible.ContainsPoint(f.mousePos)
	f.lastItem.clicked = f.lastItem.hovered && f.pressed[core.BUTTON_LEFT]
	return f.lastItem.clicked
}

// Text submits a label as an item sized by the style font.
func (f *Frame) Text(label string) {
	pos := f.layout.cursor
	size := f.style.Font.Measure(label)
	f.drawList.AddText(f.style.Font, pos, f.style.TextColor, label)
	f.itemAdd("", math.NewAabb2(pos, pos.Add(size)))
	f.lastItem.hovered = f.lastItem.bounds.ContainsPoint(f.mousePos)
}

func (f *Frame) IsItemHovered() bool {
	return f.lastItem.hovered
}

func (f *Frame) IsItemClicked() bool {
	return f.lastItem.clicked
}

func (f *Frame) IsMouseDragging(button core.Button) bool {
	if button >= core.BUTTON_MAX_BUTTONS || !f.mouseDown[button] {
		return false
	}
	return f.dragDelta[button].Length() >= DragThreshold
}

func (f *Frame) SameLine() {
	f.layout.cursor = math.NewVec2(f.layout.prevItemEndX+f.style.ItemSpacing.X, f.layout.prevLineY)
	f.layout.lineHeight = f.layout.prevLineHeight
}

func (f *Frame) Group(fn func()) {
	start := f.layout.cursor
	saved := f.layout
	f.layout.indentX = start.X
	f.layout.lineHeight = 0
	f.groups = append(f.groups, math.Aabb2{Min: start, Max: start})

	fn()

	bounds := f.groups[len(f.groups)-1]
	f.groups = f.groups[:len(f.groups)-1]

	f.layout.indentX = saved.indentX
	f.layout.lineHeight = saved.lineHeight
	f.layout.cursor = start
	hovered := bounds.ContainsPoint(f.mousePos)
	f.itemAdd("", bounds)
	f.lastItem.hovered = hovered
}

// itemAdd advances the layout past bounds and makes it the last item.
func (f *Frame) itemAdd(id string, bounds math.Aabb2) {
	f.lastItem = itemState{id: id, bounds: bounds}

	height := bounds.Size().Y
	lineHeight := max(f.layout.lineHeight, height)

	f.layout.prevLineY = bounds.Min.Y
	f.layout.prevLineHeight = lineHeight
	f.layout.prevItemEndX = bounds.Max.X
	f.layout.cursor = math.NewVec2(f.layout.indentX, bounds.Min.Y+lineHeight+f.style.ItemSpacing.Y)
	f.layout.lineHeight = 0

	if n := len(f.groups); n > 0 {
		f.groups[n-1] = math.Aabb2{
			Min: f.groups[n-1].Min.Min(bounds.Min),
			Max: f.groups[n-1].Max.Max(bounds.Max),
		}
	}
}

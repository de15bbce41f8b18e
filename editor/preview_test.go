package editor

import (
	"testing"

	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
	"github.com/spaghettifunk/dungeon-sprites/engine/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContext is a ui.Context whose mouse and item state are set by the test.
type fakeContext struct {
	avail    math.Vec2
	cursor   math.Vec2
	mouse    math.Vec2
	hovered  bool
	clicked  bool
	dragging bool

	drawList *ui.DrawList
	buttons  map[string]math.Vec2
	labels   []string
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		avail:    math.NewVec2(400, 400),
		drawList: ui.NewDrawList(math.NewAabb2(math.NewVec2(-1000, -1000), math.NewVec2(1000, 1000))),
		buttons:  make(map[string]math.Vec2),
	}
}

func (c *fakeContext) ContentRegionAvail() math.Vec2 { return c.avail }
func (c *fakeContext) CursorScreenPos() math.Vec2    { return c.cursor }
func (c *fakeContext) InvisibleButton(id string, size math.Vec2) bool {
	c.buttons[id] = size
	return c.clicked
}
func (c *fakeContext) Text(label string)                       { c.labels = append(c.labels, label) }
func (c *fakeContext) IsItemHovered() bool                     { return c.hovered }
func (c *fakeContext) IsItemClicked() bool                     { return c.clicked }
func (c *fakeContext) IsMouseDragging(button core.Button) bool { return c.dragging }
func (c *fakeContext) MousePos() math.Vec2                     { return c.mouse }
func (c *fakeContext) SameLine()                               {}
func (c *fakeContext) Group(fn func())                         { fn() }
func (c *fakeContext) DrawList() *ui.DrawList                  { return c.drawList }

var _ ui.Context = (*fakeContext)(nil)

func TestSpritePreviewWholeAtlas(t *testing.T) {
	atlas := newTestAtlas(t, 32, 32, math.NewVec2iSplat(8))
	atlas.Texture = 3
	ctx := newFakeContext()
	ctx.cursor = math.NewVec2(10, 10)

	NewSpritePreview(atlas).
		WidgetSize(math.NewVec2Splat(100)).
		BackgroundColor(math.NewVec4(1, 0, 0, 1)).
		Build(ctx)

	cmds := ctx.drawList.Commands
	require.Len(t, cmds, 2)

	bg := cmds[0]
	assert.Equal(t, ui.CommandRect, bg.Kind)
	assert.True(t, bg.Filled)
	assert.Equal(t, uint32(0xFF0000FF), bg.Color)
	assert.Equal(t, math.NewVec2(10, 10), bg.Min)
	assert.Equal(t, math.NewVec2(110, 110), bg.Max)

	img := cmds[1]
	assert.Equal(t, ui.CommandImage, img.Kind)
	assert.Equal(t, uint32(3), img.Texture)
	// V is flipped for bottom-up texture rows.
	assert.Equal(t, math.NewVec2(0, 1), img.UVMin)
	assert.Equal(t, math.NewVec2(1, 0), img.UVMax)
}

func TestSpritePreviewEmptyDisplayRangeDrawsOnlyBackground(t *testing.T) {
	atlas := newTestAtlas(t, 32, 32, math.NewVec2iSplat(8))
	ctx := newFakeContext()

	NewSpritePreview(atlas).
		WidgetSize(math.NewVec2Splat(64)).
		DisplayRange(math.NewAabb2iEmpty()).
		SelectionRange(math.NewAabb2i(math.NewVec2i(1, 1), math.NewVec2i(2, 2))).
		Build(ctx)

	require.Len(t, ctx.drawList.Commands, 1)
	assert.Equal(t, ui.CommandRect, ctx.drawList.Commands[0].Kind)
}

func TestSpritePreviewSelection(t *testing.T) {
	atlas := newTestAtlas(t, 32, 32, math.NewVec2iSplat(8))
	ctx := newFakeContext()
	ctx.cursor = math.NewVec2(10, 10)

	NewSpritePreview(atlas).
		WidgetSize(math.NewVec2Splat(100)).
		SelectionRange(math.NewAabb2i(math.NewVec2i(2, 2), math.NewVec2i(4, 4))).
		Build(ctx)

	cmds := ctx.drawList.Commands
	require.Len(t, cmds, 3)
	sel := cmds[2]
	assert.Equal(t, ui.ColorSelection, sel.Color)
	assert.False(t, sel.Filled)
	assert.Equal(t, math.NewVec2(35, 35), sel.Min)
	assert.Equal(t, math.NewVec2(60, 60), sel.Max)
	assert.Equal(t, math.NewAabb2(math.NewVec2(10, 10), math.NewVec2(110, 110)), sel.ClipRect)

	// The clip rect is restored afterwards.
	assert.Equal(t, math.NewAabb2(math.NewVec2(-1000, -1000), math.NewVec2(1000, 1000)), ctx.drawList.ClipRect())
}

func TestSpritePreviewSelectionOutsideDisplayIsClipped(t *testing.T) {
	atlas := newTestAtlas(t, 32, 32, math.NewVec2iSplat(8))
	ctx := newFakeContext()
	ctx.cursor = math.NewVec2(10, 10)

	NewSpritePreview(atlas).
		WidgetSize(math.NewVec2Splat(100)).
		DisplayRange(math.NewAabb2i(math.NewVec2i(2, 2), math.NewVec2i(4, 4))).
		SelectionRange(math.NewAabb2i(math.NewVec2i(3, 3), math.NewVec2i(5, 5))).
		Build(ctx)

	cmds := ctx.drawList.Commands
	require.Len(t, cmds, 3)

	img := cmds[1]
	assert.Equal(t, math.NewVec2(0.25, 0.75), img.UVMin)
	assert.Equal(t, math.NewVec2(0.5, 0.5), img.UVMax)

	sel := cmds[2]
	assert.Equal(t, math.NewVec2(60, 60), sel.Min)
	assert.Equal(t, math.NewVec2(160, 160), sel.Max)
	assert.Equal(t, math.NewAabb2(math.NewVec2(10, 10), math.NewVec2(110, 110)), sel.ClipRect)
}

func TestSpritePreviewFillsAvailableSquare(t *testing.T) {
	atlas := newTestAtlas(t, 32, 32, math.NewVec2iSplat(8))
	ctx := newFakeContext()
	ctx.avail = math.NewVec2(300, 200)

	NewSpritePreview(atlas).Build(ctx)
	assert.Equal(t, math.NewVec2Splat(200), ctx.buttons["sprite_preview"])
}

func TestAtlasEditorNotHovered(t *testing.T) {
	atlas := newTestAtlas(t, 32, 32, math.NewVec2iSplat(8))
	state := NewSpriteEditorState(math.NewVec4(0, 0, 0, 1))
	state.HasHovered = true
	ctx := newFakeContext()

	AtlasEditor(ctx, atlas, state)

	assert.False(t, state.HasHovered)
	assert.Len(t, ctx.drawList.Commands, 2)
}

func TestAtlasEditorClickAndDrag(t *testing.T) {
	require.True(t, core.EventSystemInitialize())
	t.Cleanup(func() { _ = core.EventSystemShutdown() })
	changes := 0
	listener := &struct{ name string }{"atlas editor"}
	core.EventRegister(core.EVENT_CODE_SELECTION_CHANGED, listener, func(ctx core.EventContext) bool {
		changes++
		return true
	})

	atlas := newTestAtlas(t, 32, 32, math.NewVec2iSplat(8))
	state := NewSpriteEditorState(math.NewVec4(0, 0, 0, 1))

	// 80px widget: each cell is 10px.
	ctx := newFakeContext()
	ctx.avail = math.NewVec2(80, 100)
	ctx.mouse = math.NewVec2(25, 35)
	ctx.hovered = true
	ctx.clicked = true

	AtlasEditor(ctx, atlas, state)

	require.True(t, state.HasHovered)
	assert.Equal(t, math.NewVec2i(2, 3), state.Hovered)
	assert.Equal(t, math.NewAabb2i(math.NewVec2i(2, 3), math.NewVec2i(3, 4)), state.Selection)
	assert.Equal(t, 1, changes)

	cmds := ctx.drawList.Commands
	require.Len(t, cmds, 4)
	assert.Equal(t, ui.CommandCircle, cmds[2].Kind)
	assert.Equal(t, ctx.mouse, cmds[2].Min)
	hover := cmds[3]
	assert.Equal(t, ui.ColorHovered, hover.Color)
	assert.Equal(t, math.NewVec2(20, 30), hover.Min)
	assert.Equal(t, math.NewVec2(30, 40), hover.Max)

	// Drag up and to the right.
	ctx = newFakeContext()
	ctx.avail = math.NewVec2(80, 100)
	ctx.mouse = math.NewVec2(55, 15)
	ctx.hovered = true
	ctx.dragging = true

	AtlasEditor(ctx, atlas, state)
	assert.Equal(t, math.NewVec2i(5, 1), state.Hovered)
	assert.Equal(t, math.NewAabb2i(math.NewVec2i(2, 1), math.NewVec2i(6, 4)), state.Selection)
	assert.Equal(t, 2, changes)

	// Holding still doesn't fire again.
	AtlasEditor(ctx, atlas, state)
	assert.Equal(t, 2, changes)
}

func TestAtlasEditorClampsToGrid(t *testing.T) {
	atlas := newTestAtlas(t, 32, 32, math.NewVec2iSplat(8))
	state := NewSpriteEditorState(math.NewVec4(0, 0, 0, 1))

	ctx := newFakeContext()
	ctx.avail = math.NewVec2(80, 80)
	// Bottom-right corner of the closed widget box.
	ctx.mouse = math.NewVec2(80, 80)
	ctx.hovered = true
	ctx.clicked = true

	AtlasEditor(ctx, atlas, state)
	assert.Equal(t, math.NewVec2i(7, 7), state.Hovered)
	assert.Equal(t, math.NewAabb2i(math.NewVec2i(7, 7), math.NewVec2i(8, 8)), state.Selection)
}

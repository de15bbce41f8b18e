package editor

import (
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
	"github.com/spaghettifunk/dungeon-sprites/engine/ui"
)

// Display ranges thinner than this, in UV units, are not drawn.
const minDisplayExtent float32 = 0.01

// SpritePreview draws a range of atlas cells into a square widget, with an
// optional selection outline on top.
type SpritePreview struct {
	atlas *Atlas

	widgetSize     *math.Vec2
	displayRange   *math.Aabb2i
	selectionRange *math.Aabb2i

	bgColor math.Vec4
}

func NewSpritePreview(atlas *Atlas) *SpritePreview {
	return &SpritePreview{
		atlas:   atlas,
		bgColor: math.NewVec4(0, 0, 0, 1),
	}
}

// WidgetSize fixes the widget size. Without it the preview takes the largest
// square that fits the available region.
func (p *SpritePreview) WidgetSize(size math.Vec2) *SpritePreview {
	p.widgetSize = &size
	return p
}

// DisplayRange limits the preview to a cell range. The whole atlas is shown by default.
func (p *SpritePreview) DisplayRange(cells math.Aabb2i) *SpritePreview {
	p.displayRange = &cells
	return p
}

func (p *SpritePreview) SelectionRange(cells math.Aabb2i) *SpritePreview {
	p.selectionRange = &cells
	return p
}

func (p *SpritePreview) BackgroundColor(color math.Vec4) *SpritePreview {
	p.bgColor = color
	return p
}

func (p *SpritePreview) Build(ctx ui.Context) {
	display := math.NewAabb2(math.NewVec2Zero(), math.NewVec2One())
	if p.displayRange != nil {
		display = p.atlas.CellsToUV(*p.displayRange)
	}

	widgetSize := squareRegion(ctx)
	if p.widgetSize != nil {
		widgetSize = *p.widgetSize
	}

	widgetPos := ctx.CursorScreenPos()
	widget := math.NewAabb2(widgetPos, widgetPos.Add(widgetSize))

	ctx.InvisibleButton("sprite_preview", widgetSize)

	drawList := ctx.DrawList()

	// Background
	drawList.AddRect(widget.Min, widget.Max, ui.ColorFromVec4(p.bgColor), true)

	displaySize := display.Size()
	if math.Abs(displaySize.X) < minDisplayExtent || math.Abs(displaySize.Y) < minDisplayExtent {
		return
	}

	// Texture rows are stored bottom-up.
	drawList.AddImage(p.atlas.Texture, widget.Min, widget.Max, flipY(display.Min), flipY(display.Max))

	if p.selectionRange == nil || p.selectionRange.IsEmpty() {
		return
	}
	selection := p.atlas.CellsToUV(*p.selectionRange)
	selectionMin := math.Remap(selection.Min, display, widget)
	selectionMax := math.Remap(selection.Max, display, widget)

	drawList.WithClipRectIntersect(widget, func() {
		drawList.AddRect(selectionMin, selectionMax, ui.ColorSelection, false)
	})
}

func squareRegion(ctx ui.Context) math.Vec2 {
	avail := ctx.ContentRegionAvail()
	return math.NewVec2Splat(min(avail.X, avail.Y))
}

func flipY(uv math.Vec2) math.Vec2 {
	return math.NewVec2(uv.X, 1-uv.Y)
}

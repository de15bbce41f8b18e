package editor

import (
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
	"github.com/spaghettifunk/dungeon-sprites/engine/ui"
)

const cursorRadius float32 = 5

// AtlasEditor shows the whole atlas in the largest square that fits and lets
// the user pick a cell range with the left mouse button: click selects one
// cell, dragging stretches the selection from that cell.
func AtlasEditor(ctx ui.Context, atlas *Atlas, state *SpriteEditorState) {
	widgetSize := squareRegion(ctx)
	widgetPos := ctx.CursorScreenPos()
	widget := math.NewAabb2(widgetPos, widgetPos.Add(widgetSize))

	NewSpritePreview(atlas).
		WidgetSize(widgetSize).
		SelectionRange(state.Selection).
		BackgroundColor(state.PreviewBackground).
		Build(ctx)

	state.HasHovered = false
	if !ctx.IsItemHovered() || widget.IsEmpty() {
		return
	}

	drawList := ctx.DrawList()

	mousePos := ctx.MousePos()
	drawList.AddCircle(mousePos, cursorRadius, ui.ColorCursor)

	hoveredCell := atlas.CellAt(widget.MapToPercentage(mousePos))
	state.Hovered = hoveredCell
	state.HasHovered = true

	state.setSelection(func() {
		if ctx.IsItemClicked() {
			state.BeginSelection(hoveredCell)
		}
		if ctx.IsMouseDragging(core.BUTTON_LEFT) {
			state.DragSelection(hoveredCell)
		}
	})

	cell := atlas.CellsToUV(math.NewAabb2iFromMinPoint(hoveredCell, singleCell))
	drawList.AddRect(widget.MapFromPercentage(cell.Min), widget.MapFromPercentage(cell.Max), ui.ColorHovered, false)
}

package editor

import (
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
)

var singleCell = math.NewVec2iSplat(1)

type SpriteEditorState struct {
	// Selected cell range, empty when nothing is selected.
	Selection math.Aabb2i
	// Cell the current drag started on.
	DragStart math.Aabb2i
	// Cell under the mouse, valid while HasHovered is set.
	Hovered    math.Vec2i
	HasHovered bool

	PreviewBackground math.Vec4
}

func NewSpriteEditorState(background math.Vec4) *SpriteEditorState {
	return &SpriteEditorState{
		Selection:         math.NewAabb2iEmpty(),
		DragStart:         math.NewAabb2iEmpty(),
		PreviewBackground: background,
	}
}

// BeginSelection selects a single cell and anchors further drags on it.
func (s *SpriteEditorState) BeginSelection(cell math.Vec2i) {
	s.DragStart = math.NewAabb2iFromMinPoint(cell, singleCell)
	s.Selection = s.DragStart
}

// DragSelection stretches the selection from the anchor cell to cell, in any direction.
func (s *SpriteEditorState) DragSelection(cell math.Vec2i) {
	if s.DragStart.IsEmpty() {
		return
	}
	s.Selection = s.DragStart.Union(math.NewAabb2iFromMinPoint(cell, singleCell))
}

func (s *SpriteEditorState) ClearSelection() {
	s.Selection = math.NewAabb2iEmpty()
	s.DragStart = math.NewAabb2iEmpty()
}

// setSelection runs fn and fires EVENT_CODE_SELECTION_CHANGED if fn changed the selection.
func (s *SpriteEditorState) setSelection(fn func()) {
	previous := s.Selection
	fn()
	if previous == s.Selection {
		return
	}
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_SELECTION_CHANGED,
		Data: &core.SelectionEvent{
			Previous: previous,
			Current:  s.Selection,
		},
	})
}

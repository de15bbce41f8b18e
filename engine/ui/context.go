package ui

import (
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
)

// Context is the immediate-mode surface widgets are built against. Item
// queries (IsItemHovered, IsItemClicked) refer to the last submitted item.
type Context interface {
	// ContentRegionAvail is the space left from the cursor to the edge of the region.
	ContentRegionAvail() math.Vec2
	// CursorScreenPos is where the next item will be placed.
	CursorScreenPos() math.Vec2
	// InvisibleButton submits an item of the given size that only reacts to the mouse.
	// Returns true when it was clicked this frame.
	InvisibleButton(id string, size math.Vec2) bool
	// Text submits a non-interactive label.
	Text(label string)
	IsItemHovered() bool
	IsItemClicked() bool
	IsMouseDragging(button core.Button) bool
	MousePos() math.Vec2
	// SameLine places the next item to the right of the previous one.
	SameLine()
	// Group lays out everything submitted by fn as a single item.
	Group(fn func())
	DrawList() *DrawList
}

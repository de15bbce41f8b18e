package editor

import (
	"fmt"
	"image"

	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
)

// Atlas is a texture split into a regular grid of cells.
type Atlas struct {
	// Renderer texture id, 0 until uploaded.
	Texture uint32
	Path    string
	// Size in pixels.
	Size math.Vec2i
	// Number of cells along each axis.
	Grid math.Vec2i
	// Pixels as uploaded to the renderer, rows stored bottom-up.
	Image *image.NRGBA
}

func NewAtlas(path string, img *image.NRGBA, grid math.Vec2i) (*Atlas, error) {
	if grid.X <= 0 || grid.Y <= 0 {
		return nil, fmt.Errorf("grid %s: %w", grid, core.ErrInvalidGrid)
	}
	if img == nil {
		return nil, core.ErrAtlasNotLoaded
	}
	size := math.NewVec2i(int32(img.Bounds().Dx()), int32(img.Bounds().Dy()))
	if size.X < grid.X || size.Y < grid.Y {
		return nil, fmt.Errorf("atlas %s is smaller than its grid %s: %w", size, grid, core.ErrInvalidGrid)
	}
	return &Atlas{
		Path:  path,
		Size:  size,
		Grid:  grid,
		Image: img,
	}, nil
}

// CellSize is the pixel size of one cell. Leftover pixels on the right and
// bottom edges belong to no cell.
func (a *Atlas) CellSize() math.Vec2i {
	return a.Size.Div(a.Grid)
}

// GridBounds covers every cell of the atlas.
func (a *Atlas) GridBounds() math.Aabb2i {
	return math.NewAabb2i(math.NewVec2iZero(), a.Grid)
}

func (a *Atlas) CellToPixels(cells math.Aabb2i) math.Aabb2i {
	return cells.MulVec(a.CellSize())
}

// CellsToUV maps a cell range to normalized texture coordinates, top-left origin.
func (a *Atlas) CellsToUV(cells math.Aabb2i) math.Aabb2 {
	grid := a.GridBounds().ToAabb2()
	box := cells.ToAabb2()
	return math.Aabb2{
		Min: grid.MapToPercentage(box.Min),
		Max: grid.MapToPercentage(box.Max),
	}
}

// CellAt returns the cell under a normalized atlas position, clamped to the grid.
func (a *Atlas) CellAt(uv math.Vec2) math.Vec2i {
	cell := uv.Mul(a.Grid.ToVec2()).ToVec2i()
	return cell.Clamp(math.NewVec2iZero(), a.Grid.Sub(math.NewVec2iSplat(1)))
}

func (a *Atlas) PixelToCell(p math.Vec2) math.Vec2i {
	return a.CellAt(p.Div(a.Size.ToVec2()))
}

package editor

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
	"golang.org/x/image/draw"
)

// ExportSprite copies the pixels of cells out of the atlas, upright, scaled by
// an integer factor with nearest-neighbour sampling so pixel art stays crisp.
func ExportSprite(atlas *Atlas, cells math.Aabb2i, scale int) (*image.NRGBA, error) {
	if atlas == nil || atlas.Image == nil {
		return nil, core.ErrAtlasNotLoaded
	}
	if cells.IsEmpty() {
		return nil, core.ErrEmptySelection
	}
	if cells.Union(atlas.GridBounds()) != atlas.GridBounds() {
		return nil, fmt.Errorf("cells %s in grid %s: %w", cells, atlas.Grid, core.ErrOutOfBounds)
	}
	if scale < 1 {
		return nil, fmt.Errorf("export scale must be at least 1, got %d", scale)
	}

	pixels := atlas.CellToPixels(cells)
	// The atlas is stored bottom-up; find the same rows there.
	origin := atlas.Image.Bounds().Min
	src := image.Rect(
		int(pixels.Min.X), int(atlas.Size.Y-pixels.Max.Y),
		int(pixels.Max.X), int(atlas.Size.Y-pixels.Min.Y),
	).Add(origin)

	size := pixels.Size()
	flipped := image.NewNRGBA(image.Rect(0, 0, int(size.X), int(size.Y)))
	draw.Draw(flipped, flipped.Bounds(), atlas.Image, src.Min, draw.Src)
	upright := flipRows(flipped)

	if scale == 1 {
		return upright, nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, int(size.X)*scale, int(size.Y)*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), upright, upright.Bounds(), draw.Src, nil)
	return dst, nil
}

func flipRows(img *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	h := img.Bounds().Dy()
	for y := 0; y < h; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+out.Stride], img.Pix[(h-1-y)*img.Stride:(h-1-y)*img.Stride+img.Stride])
	}
	return out
}

// WritePNG encodes img to path, creating parent directories as needed.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

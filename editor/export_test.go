package editor

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSprite(t *testing.T) {
	// 16x16 pixels, 4x4 cells of 4 pixels each.
	atlas := newTestAtlas(t, 16, 16, math.NewVec2iSplat(4))

	img, err := ExportSprite(atlas, cells(1, 2, 2, 3), 1)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := color.NRGBA{R: uint8(4 + x), G: uint8(8 + y), A: 255}
			assert.Equal(t, want, img.NRGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestExportSpriteScaled(t *testing.T) {
	atlas := newTestAtlas(t, 16, 16, math.NewVec2iSplat(4))

	img, err := ExportSprite(atlas, cells(0, 0, 2, 1), 3)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 24, 12), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 0, G: 0, A: 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0, G: 0, A: 255}, img.NRGBAAt(2, 2))
	assert.Equal(t, color.NRGBA{R: 1, G: 0, A: 255}, img.NRGBAAt(3, 0))
	assert.Equal(t, color.NRGBA{R: 7, G: 3, A: 255}, img.NRGBAAt(23, 11))
}

func TestExportSpriteErrors(t *testing.T) {
	atlas := newTestAtlas(t, 16, 16, math.NewVec2iSplat(4))

	_, err := ExportSprite(nil, cells(0, 0, 1, 1), 1)
	require.ErrorIs(t, err, core.ErrAtlasNotLoaded)

	_, err = ExportSprite(atlas, math.NewAabb2iEmpty(), 1)
	require.ErrorIs(t, err, core.ErrEmptySelection)

	_, err = ExportSprite(atlas, cells(3, 3, 5, 4), 1)
	require.ErrorIs(t, err, core.ErrOutOfBounds)

	_, err = ExportSprite(atlas, cells(0, 0, 1, 1), 0)
	require.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	atlas := newTestAtlas(t, 16, 16, math.NewVec2iSplat(4))
	img, err := ExportSprite(atlas, cells(2, 1, 3, 2), 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "sprite.png")
	require.NoError(t, WritePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	r, g, _, _ := decoded.At(1, 2).RGBA()
	assert.Equal(t, uint32(9), r>>8)
	assert.Equal(t, uint32(6), g>>8)
}

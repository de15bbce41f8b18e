package loaders

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spaghettifunk/dungeon-sprites/engine/math"
	"github.com/spaghettifunk/dungeon-sprites/engine/resources"
)

type ImageLoader struct{}

// DecodeImage reads any registered image format and converts it to NRGBA.
func DecodeImage(path string, flipY bool) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	bounds := src.Bounds()
	img, ok := src.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		img = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)
	}

	if flipY {
		flipVertical(img)
	}
	return img, nil
}

func flipVertical(img *image.NRGBA) {
	h := img.Bounds().Dy()
	row := make([]uint8, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

func (il *ImageLoader) Load(path string, params interface{}) (*resources.Resource, error) {
	flipY := false
	if typedParams, ok := params.(*resources.ImageResourceParams); ok && typedParams != nil {
		flipY = typedParams.FlipY
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	img, err := DecodeImage(path, flipY)
	if err != nil {
		return nil, err
	}

	return &resources.Resource{
		LoaderID: resources.ResourceTypeImage,
		Name:     filepath.Base(path),
		FullPath: path,
		DataSize: uint64(info.Size()),
		Data: &resources.ImageResourceData{
			Size:  math.NewVec2i(int32(img.Bounds().Dx()), int32(img.Bounds().Dy())),
			Image: img,
		},
	}, nil
}

func (il *ImageLoader) Unload(r *resources.Resource) error {
	if r != nil {
		r.Data = nil
	}
	return nil
}

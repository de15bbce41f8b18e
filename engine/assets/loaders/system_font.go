package loaders

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/spaghettifunk/dungeon-sprites/engine/resources"
)

type SystemFontLoader struct{}

// ParseSystemFont picks font index out of data, which may hold a single font
// or a collection.
func ParseSystemFont(data []byte, index int) (*resources.SystemFontResourceData, error) {
	collection, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= collection.NumFonts() {
		return nil, fmt.Errorf("font index %d out of range, the file holds %d fonts", index, collection.NumFonts())
	}
	f, err := collection.Font(index)
	if err != nil {
		return nil, err
	}

	face, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		// Not every font carries a family name.
		face = ""
	}
	return &resources.SystemFontResourceData{
		Face: face,
		Font: f,
	}, nil
}

func (fl *SystemFontLoader) Load(path string, params interface{}) (*resources.Resource, error) {
	index := 0
	if typedParams, ok := params.(*resources.SystemFontResourceParams); ok && typedParams != nil {
		index = typedParams.Index
	}

	// Read the font data.
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rd, err := ParseSystemFont(fontBytes, index)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	if rd.Face == "" {
		rd.Face = filepath.Base(path)
	}

	return &resources.Resource{
		LoaderID: resources.ResourceTypeSystemFont,
		Name:     filepath.Base(path),
		FullPath: path,
		DataSize: uint64(len(fontBytes)),
		Data:     rd,
	}, nil
}

func (fl *SystemFontLoader) Unload(r *resources.Resource) error {
	if r != nil {
		r.Data = nil
	}
	return nil
}

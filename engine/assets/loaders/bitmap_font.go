package loaders

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/fzipp/bmfont"

	"github.com/spaghettifunk/dungeon-sprites/engine/resources"
)

// BitmapFontLoader reads AngelCode BMFont text descriptors (.fnt). The page
// images referenced by the descriptor must sit next to it.
type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string, params interface{}) (*resources.Resource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	rd, err := fl.importFNTFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load bitmap font %s: %w", path, err)
	}

	return &resources.Resource{
		LoaderID: resources.ResourceTypeBitmapFont,
		Name:     filepath.Base(path),
		FullPath: path,
		DataSize: uint64(info.Size()),
		Data:     rd,
	}, nil
}

func (fl *BitmapFontLoader) Unload(resource *resources.Resource) error {
	if resource != nil && resource.Data != nil {
		data := resource.Data.(*resources.BitmapFontResourceData)
		data.Glyphs = nil
		data.Kernings = nil
		data.Pages = nil
		resource.Data = nil
		resource.DataSize = 0
	}
	return nil
}

func (fl *BitmapFontLoader) importFNTFile(fntFileName string) (*resources.BitmapFontResourceData, error) {
	font, err := bmfont.Load(fntFileName)
	if err != nil {
		return nil, err
	}
	desc := font.Descriptor

	outData := &resources.BitmapFontResourceData{
		Face:       desc.Info.Face,
		Size:       int(desc.Info.Size),
		LineHeight: int(desc.Common.LineHeight),
		Baseline:   int(desc.Common.Base),
		Glyphs:     make([]resources.FontGlyph, 0, len(desc.Chars)),
		Kernings:   make([]resources.FontKerning, 0, len(desc.Kerning)),
		Pages:      make([]resources.BitmapFontPage, 0, len(desc.Pages)),
	}

	for _, p := range desc.Pages {
		outData.Pages = append(outData.Pages, resources.BitmapFontPage{
			ID:   int(p.ID),
			File: p.File,
		})
	}

	for _, g := range desc.Chars {
		outData.Glyphs = append(outData.Glyphs, resources.FontGlyph{
			Codepoint: rune(g.ID),
			X:         int(g.X),
			Y:         int(g.Y),
			Width:     int(g.Width),
			Height:    int(g.Height),
			XOffset:   int(g.XOffset),
			YOffset:   int(g.YOffset),
			XAdvance:  int(g.XAdvance),
			PageID:    int(g.Page),
		})
	}

	for p, k := range desc.Kerning {
		outData.Kernings = append(outData.Kernings, resources.FontKerning{
			Codepoint0: rune(p.First),
			Codepoint1: rune(p.Second),
			Amount:     int(k.Amount),
		})
	}

	// The descriptor keeps these in maps; sort for stable output.
	slices.SortFunc(outData.Glyphs, func(a, b resources.FontGlyph) int {
		return cmp.Compare(a.Codepoint, b.Codepoint)
	})
	slices.SortFunc(outData.Kernings, func(a, b resources.FontKerning) int {
		return cmp.Or(cmp.Compare(a.Codepoint0, b.Codepoint0), cmp.Compare(a.Codepoint1, b.Codepoint1))
	})
	slices.SortFunc(outData.Pages, func(a, b resources.BitmapFontPage) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return outData, nil
}

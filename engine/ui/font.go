package ui

import (
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/spaghettifunk/dungeon-sprites/engine/math"
	"github.com/spaghettifunk/dungeon-sprites/engine/resources"
)

// DefaultFontSize is the pixel size of the built-in font.
const DefaultFontSize float32 = 13

// Font measures text for layout. Turning glyphs into pixels is the renderer
// backend's job.
type Font interface {
	Name() string
	LineHeight() float32
	// Measure returns the box text occupies, one line per '\n'.
	Measure(text string) math.Vec2
}

// SystemFont measures with an OpenType face. Not safe for concurrent use.
type SystemFont struct {
	name       string
	face       font.Face
	lineHeight float32
}

func NewSystemFont(data *resources.SystemFontResourceData, size float32) (*SystemFont, error) {
	return newSystemFont(data.Face, data.Font, size)
}

func newSystemFont(name string, f *sfnt.Font, size float32) (*SystemFont, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return &SystemFont{
		name:       name,
		face:       face,
		lineHeight: fixedToFloat(face.Metrics().Height),
	}, nil
}

func (sf *SystemFont) Name() string        { return sf.name }
func (sf *SystemFont) LineHeight() float32 { return sf.lineHeight }

func (sf *SystemFont) Measure(text string) math.Vec2 {
	return measureLines(text, sf.lineHeight, func(line string) float32 {
		return fixedToFloat(font.MeasureString(sf.face, line))
	})
}

var (
	defaultFontOnce sync.Once
	defaultFont     *SystemFont
)

// NewGoRegular returns the Go Regular font, which ships with x/image, at size pixels.
func NewGoRegular(size float32) (*SystemFont, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return newSystemFont("Go Regular", f, size)
}

// DefaultFont is Go Regular at DefaultFontSize.
func DefaultFont() Font {
	defaultFontOnce.Do(func() {
		var err error
		defaultFont, err = NewGoRegular(DefaultFontSize)
		if err != nil {
			panic("ui: embedded Go Regular font: " + err.Error())
		}
	})
	return defaultFont
}

type kerningPair struct {
	first, second rune
}

// BitmapFont measures with the advances and kerning of a BMFont descriptor.
type BitmapFont struct {
	name       string
	lineHeight float32
	advances   map[rune]float32
	kernings   map[kerningPair]float32
	// Advance for runes the font has no glyph for.
	fallback float32
}

func NewBitmapFont(data *resources.BitmapFontResourceData) *BitmapFont {
	bf := &BitmapFont{
		name:       data.Face,
		lineHeight: float32(data.LineHeight),
		advances:   make(map[rune]float32, len(data.Glyphs)),
		kernings:   make(map[kerningPair]float32, len(data.Kernings)),
	}
	for _, g := range data.Glyphs {
		bf.advances[g.Codepoint] = float32(g.XAdvance)
	}
	for _, k := range data.Kernings {
		bf.kernings[kerningPair{k.Codepoint0, k.Codepoint1}] = float32(k.Amount)
	}

	switch {
	case bf.advances['?'] > 0:
		bf.fallback = bf.advances['?']
	case bf.advances[' '] > 0:
		bf.fallback = bf.advances[' ']
	default:
		bf.fallback = float32(data.Size) / 2
	}
	return bf
}

func (bf *BitmapFont) Name() string        { return bf.name }
func (bf *BitmapFont) LineHeight() float32 { return bf.lineHeight }

func (bf *BitmapFont) Measure(text string) math.Vec2 {
	return measureLines(text, bf.lineHeight, func(line string) float32 {
		var width float32
		prev := rune(-1)
		for _, r := range line {
			advance, ok := bf.advances[r]
			if !ok {
				advance = bf.fallback
			}
			width += advance + bf.kernings[kerningPair{prev, r}]
			prev = r
		}
		return width
	})
}

func measureLines(text string, lineHeight float32, width func(line string) float32) math.Vec2 {
	if text == "" {
		return math.NewVec2Zero()
	}
	lines := strings.Split(text, "\n")
	var w float32
	for _, line := range lines {
		w = max(w, width(line))
	}
	return math.NewVec2(w, lineHeight*float32(len(lines)))
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

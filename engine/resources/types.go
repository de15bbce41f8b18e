package resources

import (
	"image"

	"golang.org/x/image/font/sfnt"

	"github.com/spaghettifunk/dungeon-sprites/engine/math"
)

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	/** @brief Unknown file, not indexed. */
	ResourceTypeNone ResourceType = iota
	/** @brief Image resource type, e.g. a texture atlas. */
	ResourceTypeImage
	/** @brief Sprite sheet resource type (atlas grid + named cell ranges). */
	ResourceTypeSpriteSheet
	/** @brief OpenType or TrueType font file. */
	ResourceTypeSystemFont
	/** @brief AngelCode BMFont descriptor. */
	ResourceTypeBitmapFont
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeImage:
		return "image"
	case ResourceTypeSpriteSheet:
		return "sprite_sheet"
	case ResourceTypeSystemFont:
		return "system_font"
	case ResourceTypeBitmapFont:
		return "bitmap_font"
	default:
		return "none"
	}
}

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The type of the loader which handles this resource. */
	LoaderID ResourceType
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The size of the resource file in bytes. */
	DataSize uint64
	/** @brief The resource data. */
	Data interface{}
}

/**
 * @brief A structure to hold image resource data.
 */
type ImageResourceData struct {
	/** @brief The size of the image in pixels. */
	Size math.Vec2i
	/** @brief The decoded pixels, always 8-bit non-premultiplied RGBA. */
	Image *image.NRGBA
}

/** @brief Parameters used when loading an image. */
type ImageResourceParams struct {
	/** @brief Indicates if the image should be flipped on the y-axis when loaded. */
	FlipY bool
}

// SpriteConfig is one named cell range of the atlas.
type SpriteConfig struct {
	ID    string      `toml:"id"`
	Name  string      `toml:"name"`
	Cells math.Aabb2i `toml:"cells"`
}

// SpriteSheetConfig is the on-disk layout of a sprite sheet.
type SpriteSheetConfig struct {
	Atlas   string         `toml:"atlas"`
	Grid    math.Vec2i     `toml:"grid"`
	Sprites []SpriteConfig `toml:"sprites"`
}

/** @brief Parameters used when loading a system font. */
type SystemFontResourceParams struct {
	/** @brief Which font of a collection (.ttc/.otc) to use. 0 for single fonts. */
	Index int
}

type SystemFontResourceData struct {
	/** @brief The family name stored in the font. */
	Face string
	Font *sfnt.Font
}

type FontGlyph struct {
	Codepoint rune
	X         int
	Y         int
	Width     int
	Height    int
	XOffset   int
	YOffset   int
	XAdvance  int
	PageID    int
}

type FontKerning struct {
	Codepoint0 rune
	Codepoint1 rune
	Amount     int
}

type BitmapFontPage struct {
	ID   int
	File string
}

/**
 * @brief Glyph metrics of a bitmap font. The page images stay on disk; only
 * their file names are kept.
 */
type BitmapFontResourceData struct {
	Face       string
	Size       int
	LineHeight int
	Baseline   int
	Glyphs     []FontGlyph
	Kernings   []FontKerning
	Pages      []BitmapFontPage
}

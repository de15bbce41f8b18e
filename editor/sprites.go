package editor

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/spaghettifunk/dungeon-sprites/engine/assets/loaders"
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
	"github.com/spaghettifunk/dungeon-sprites/engine/resources"
)

// Sprite is a named cell range of the atlas.
type Sprite struct {
	ID    core.Identifier
	Name  string
	Cells math.Aabb2i
}

// SpriteSheet is the set of sprites defined on one atlas. Names are unique.
type SpriteSheet struct {
	Atlas   string
	Grid    math.Vec2i
	sprites map[core.Identifier]*Sprite
}

func NewSpriteSheet(atlasPath string, grid math.Vec2i) *SpriteSheet {
	return &SpriteSheet{
		Atlas:   atlasPath,
		Grid:    grid,
		sprites: make(map[core.Identifier]*Sprite),
	}
}

// SpriteSheetFromConfig builds a sheet from its on-disk form, checking every sprite.
func SpriteSheetFromConfig(config *resources.SpriteSheetConfig) (*SpriteSheet, error) {
	sheet := NewSpriteSheet(config.Atlas, config.Grid)
	for _, sc := range config.Sprites {
		id, err := core.ParseIdentifier(sc.ID)
		if err != nil {
			return nil, fmt.Errorf("sprite %q: invalid id: %w", sc.Name, err)
		}
		if _, err := sheet.add(id, sc.Name, sc.Cells); err != nil {
			return nil, fmt.Errorf("sprite %q: %w", sc.Name, err)
		}
	}
	return sheet, nil
}

func LoadSpriteSheet(path string) (*SpriteSheet, error) {
	loader := &loaders.SpriteSheetLoader{}
	res, err := loader.Load(path, nil)
	if err != nil {
		return nil, err
	}
	defer loader.Unload(res)
	return SpriteSheetFromConfig(res.Data.(*resources.SpriteSheetConfig))
}

func (ss *SpriteSheet) Len() int {
	return len(ss.sprites)
}

// Add defines a new sprite covering cells.
func (ss *SpriteSheet) Add(name string, cells math.Aabb2i) (Sprite, error) {
	return ss.add(core.NewIdentifier(), name, cells)
}

func (ss *SpriteSheet) add(id core.Identifier, name string, cells math.Aabb2i) (Sprite, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Sprite{}, fmt.Errorf("sprite name must not be blank")
	}
	if err := ss.checkCells(cells); err != nil {
		return Sprite{}, err
	}
	if ss.findByName(name) != nil {
		return Sprite{}, fmt.Errorf("%q: %w", name, core.ErrDuplicateSprite)
	}
	if _, exists := ss.sprites[id]; exists {
		return Sprite{}, fmt.Errorf("id %s: %w", id, core.ErrDuplicateSprite)
	}

	sprite := &Sprite{ID: id, Name: name, Cells: cells}
	ss.sprites[id] = sprite
	return *sprite, nil
}

func (ss *SpriteSheet) Remove(id core.Identifier) error {
	if _, exists := ss.sprites[id]; !exists {
		return fmt.Errorf("id %s: %w", id, core.ErrSpriteNotFound)
	}
	delete(ss.sprites, id)
	return nil
}

func (ss *SpriteSheet) Rename(id core.Identifier, name string) error {
	sprite, exists := ss.sprites[id]
	if !exists {
		return fmt.Errorf("id %s: %w", id, core.ErrSpriteNotFound)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("sprite name must not be blank")
	}
	if other := ss.findByName(name); other != nil && other.ID != id {
		return fmt.Errorf("%q: %w", name, core.ErrDuplicateSprite)
	}
	sprite.Name = name
	return nil
}

func (ss *SpriteSheet) Get(id core.Identifier) (Sprite, error) {
	sprite, exists := ss.sprites[id]
	if !exists {
		return Sprite{}, fmt.Errorf("id %s: %w", id, core.ErrSpriteNotFound)
	}
	return *sprite, nil
}

func (ss *SpriteSheet) GetByName(name string) (Sprite, error) {
	sprite := ss.findByName(name)
	if sprite == nil {
		return Sprite{}, fmt.Errorf("%q: %w", name, core.ErrSpriteNotFound)
	}
	return *sprite, nil
}

// Sprites returns a copy of every sprite, sorted by name.
func (ss *SpriteSheet) Sprites() []Sprite {
	sprites := make([]Sprite, 0, len(ss.sprites))
	for _, s := range ss.sprites {
		sprites = append(sprites, *s)
	}
	slices.SortFunc(sprites, func(a, b Sprite) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return sprites
}

// Bounds is the smallest cell range covering every sprite, empty for an empty sheet.
func (ss *SpriteSheet) Bounds() math.Aabb2i {
	boxes := make([]math.Aabb2i, 0, len(ss.sprites))
	for _, s := range ss.sprites {
		boxes = append(boxes, s.Cells)
	}
	return math.UnionAll(boxes...)
}

func (ss *SpriteSheet) Config() *resources.SpriteSheetConfig {
	sprites := ss.Sprites()
	config := &resources.SpriteSheetConfig{
		Atlas:   ss.Atlas,
		Grid:    ss.Grid,
		Sprites: make([]resources.SpriteConfig, 0, len(sprites)),
	}
	for _, s := range sprites {
		config.Sprites = append(config.Sprites, resources.SpriteConfig{
			ID:    s.ID.String(),
			Name:  s.Name,
			Cells: s.Cells,
		})
	}
	return config
}

// Save writes the sheet to path and fires EVENT_CODE_SPRITE_SHEET_SAVED.
func (ss *SpriteSheet) Save(path string) error {
	if err := loaders.SaveSpriteSheet(path, ss.Config()); err != nil {
		return fmt.Errorf("failed to save sprite sheet %s: %w", path, err)
	}
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_SPRITE_SHEET_SAVED,
		Data: &core.AssetEvent{Path: path},
	})
	return nil
}

func (ss *SpriteSheet) checkCells(cells math.Aabb2i) error {
	if cells.IsEmpty() {
		return core.ErrEmptySelection
	}
	grid := math.NewAabb2i(math.NewVec2iZero(), ss.Grid)
	if cells.Union(grid) != grid {
		return fmt.Errorf("cells %s in grid %s: %w", cells, ss.Grid, core.ErrOutOfBounds)
	}
	return nil
}

// NextName returns the first "<prefix>_<n>", counting from 1, that no sprite uses.
func (ss *SpriteSheet) NextName(prefix string) string {
	for n := 1; ; n++ {
		name := fmt.Sprintf("%s_%d", prefix, n)
		if ss.findByName(name) == nil {
			return name
		}
	}
}

func (ss *SpriteSheet) findByName(name string) *Sprite {
	for _, s := range ss.sprites {
		if s.Name == name {
			return s
		}
	}
	return nil
}

package editor

import (
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
	"github.com/spaghettifunk/dungeon-sprites/engine/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cells(minX, minY, maxX, maxY int32) math.Aabb2i {
	return math.NewAabb2i(math.NewVec2i(minX, minY), math.NewVec2i(maxX, maxY))
}

func TestSpriteSheetAdd(t *testing.T) {
	sheet := NewSpriteSheet("atlas.png", math.NewVec2iSplat(8))

	sword, err := sheet.Add("  sword ", cells(0, 0, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, "sword", sword.Name)
	assert.Equal(t, 1, sheet.Len())

	tests := []struct {
		name    string
		sprite  string
		cells   math.Aabb2i
		wantErr error
	}{
		{"empty selection", "shield", math.NewAabb2iEmpty(), core.ErrEmptySelection},
		{"degenerate selection", "shield", cells(2, 2, 2, 4), core.ErrEmptySelection},
		{"past the grid", "shield", cells(6, 6, 9, 8), core.ErrOutOfBounds},
		{"negative cells", "shield", cells(-1, 0, 1, 1), core.ErrOutOfBounds},
		{"duplicate name", "sword", cells(2, 2, 3, 3), core.ErrDuplicateSprite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sheet.Add(tt.sprite, tt.cells)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err = sheet.Add("   ", cells(2, 2, 3, 3))
	require.Error(t, err)
	assert.Equal(t, 1, sheet.Len())

	// The whole grid is a valid sprite.
	_, err = sheet.Add("everything", cells(0, 0, 8, 8))
	require.NoError(t, err)
}

func TestSpriteSheetLookupAndEdit(t *testing.T) {
	sheet := NewSpriteSheet("atlas.png", math.NewVec2iSplat(8))
	potion, err := sheet.Add("potion", cells(4, 4, 5, 5))
	require.NoError(t, err)
	axe, err := sheet.Add("axe", cells(1, 6, 3, 8))
	require.NoError(t, err)

	got, err := sheet.Get(potion.ID)
	require.NoError(t, err)
	assert.Equal(t, potion, got)

	got, err = sheet.GetByName("axe")
	require.NoError(t, err)
	assert.Equal(t, axe.ID, got.ID)

	_, err = sheet.GetByName("bow")
	require.ErrorIs(t, err, core.ErrSpriteNotFound)

	require.ErrorIs(t, sheet.Rename(potion.ID, "axe"), core.ErrDuplicateSprite)
	require.NoError(t, sheet.Rename(potion.ID, "potion"))
	require.NoError(t, sheet.Rename(potion.ID, "elixir"))
	got, err = sheet.Get(potion.ID)
	require.NoError(t, err)
	assert.Equal(t, "elixir", got.Name)

	names := []string{}
	for _, s := range sheet.Sprites() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"axe", "elixir"}, names)

	assert.Equal(t, cells(1, 4, 5, 8), sheet.Bounds())

	require.NoError(t, sheet.Remove(axe.ID))
	require.ErrorIs(t, sheet.Remove(axe.ID), core.ErrSpriteNotFound)
	require.ErrorIs(t, sheet.Rename(axe.ID, "axe"), core.ErrSpriteNotFound)
	_, err = sheet.Get(axe.ID)
	require.ErrorIs(t, err, core.ErrSpriteNotFound)

	assert.Equal(t, cells(4, 4, 5, 5), sheet.Bounds())
	require.NoError(t, sheet.Remove(potion.ID))
	assert.True(t, sheet.Bounds().IsEmpty())
}

func TestSpriteSheetNextName(t *testing.T) {
	sheet := NewSpriteSheet("atlas.png", math.NewVec2iSplat(8))
	assert.Equal(t, "sprite_1", sheet.NextName("sprite"))

	one, err := sheet.Add(sheet.NextName("sprite"), cells(0, 0, 1, 1))
	require.NoError(t, err)
	_, err = sheet.Add(sheet.NextName("sprite"), cells(1, 0, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, "sprite_3", sheet.NextName("sprite"))

	require.NoError(t, sheet.Remove(one.ID))
	assert.Equal(t, "sprite_1", sheet.NextName("sprite"))
	assert.Equal(t, "tile_1", sheet.NextName("tile"))
}

func TestSpriteSheetSaveAndLoad(t *testing.T) {
	require.True(t, core.EventSystemInitialize())
	t.Cleanup(func() { _ = core.EventSystemShutdown() })

	var saved string
	listener := &struct{ name string }{"saved"}
	core.EventRegister(core.EVENT_CODE_SPRITE_SHEET_SAVED, listener, func(ctx core.EventContext) bool {
		saved = ctx.Data.(*core.AssetEvent).Path
		return true
	})

	sheet := NewSpriteSheet("atlas.png", math.NewVec2i(16, 8))
	bow, err := sheet.Add("bow", cells(0, 0, 1, 3))
	require.NoError(t, err)
	_, err = sheet.Add("arrow", cells(1, 0, 2, 1))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "sprites.toml")
	require.NoError(t, sheet.Save(path))
	assert.Equal(t, path, saved)

	loaded, err := LoadSpriteSheet(path)
	require.NoError(t, err)
	assert.Equal(t, sheet.Atlas, loaded.Atlas)
	assert.Equal(t, sheet.Grid, loaded.Grid)
	assert.Equal(t, sheet.Sprites(), loaded.Sprites())

	got, err := loaded.Get(bow.ID)
	require.NoError(t, err)
	assert.Equal(t, bow, got)
}

func TestSpriteSheetFromConfigErrors(t *testing.T) {
	id := core.NewIdentifier().String()
	tests := []struct {
		name    string
		sprites []resources.SpriteConfig
		wantErr error
	}{
		{
			name:    "out of bounds",
			sprites: []resources.SpriteConfig{{ID: id, Name: "a", Cells: cells(0, 0, 5, 5)}},
			wantErr: core.ErrOutOfBounds,
		},
		{
			name: "duplicate names",
			sprites: []resources.SpriteConfig{
				{ID: id, Name: "a", Cells: cells(0, 0, 1, 1)},
				{ID: core.NewIdentifier().String(), Name: "a", Cells: cells(1, 1, 2, 2)},
			},
			wantErr: core.ErrDuplicateSprite,
		},
		{
			name: "duplicate ids",
			sprites: []resources.SpriteConfig{
				{ID: id, Name: "a", Cells: cells(0, 0, 1, 1)},
				{ID: id, Name: "b", Cells: cells(1, 1, 2, 2)},
			},
			wantErr: core.ErrDuplicateSprite,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SpriteSheetFromConfig(&resources.SpriteSheetConfig{
				Atlas:   "atlas.png",
				Grid:    math.NewVec2iSplat(4),
				Sprites: tt.sprites,
			})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := SpriteSheetFromConfig(&resources.SpriteSheetConfig{
		Grid:    math.NewVec2iSplat(4),
		Sprites: []resources.SpriteConfig{{ID: "not-a-uuid", Name: "a", Cells: cells(0, 0, 1, 1)}},
	})
	require.Error(t, err)
}

package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/spaghettifunk/dungeon-sprites/engine"
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
	"github.com/spaghettifunk/dungeon-sprites/engine/resources"
	"github.com/spaghettifunk/dungeon-sprites/engine/systems"
	"github.com/spaghettifunk/dungeon-sprites/engine/ui"
)

// Sprites are listed under the selection preview at this fraction of its size.
const thumbnailScale float32 = 0.25

const exportQueueSize = 64

type Editor struct {
	*engine.Game
}

type editorState struct {
	atlas     *Atlas
	sheet     *SpriteSheet
	selection *SpriteEditorState
	jobs      *systems.JobSystem

	width  uint32
	height uint32

	// Set from the asset watcher goroutine, consumed in Update.
	atlasChanged atomic.Bool
	sheetChanged atomic.Bool
	fontChanged  atomic.Bool
}

func NewEditor(config *engine.ApplicationConfig) *Editor {
	ed := &Editor{
		Game: &engine.Game{
			ApplicationConfig: config,
			State: &editorState{
				selection: NewSpriteEditorState(config.PreviewBackground),
			},
		},
	}

	ed.FnInitialize = ed.Initialize
	ed.FnUpdate = ed.Update
	ed.FnRender = ed.Render
	ed.FnOnResize = ed.OnResize
	ed.FnShutdown = ed.Shutdown

	return ed
}

func (ed *Editor) state() *editorState {
	return ed.State.(*editorState)
}

func (ed *Editor) Initialize() error {
	core.LogDebug("Editor Initialize fn....")

	if ed.AssetManager == nil || ed.Renderer == nil {
		return fmt.Errorf("the engine is not yet initialized with an asset manager and a renderer")
	}

	if err := ed.loadAtlas(); err != nil {
		return err
	}
	if err := ed.loadSpriteSheet(); err != nil {
		return err
	}
	if err := ed.loadFont(); err != nil {
		return err
	}

	jobs, err := systems.NewJobSystem(ed.ApplicationConfig.ExportWorkers, exportQueueSize)
	if err != nil {
		return err
	}
	ed.state().jobs = jobs

	core.EventRegister(core.EVENT_CODE_ASSET_RELOADED, ed, ed.onAssetReloaded)
	return nil
}

func (ed *Editor) Update(deltaTime float64) error {
	state := ed.state()

	if state.atlasChanged.Swap(false) {
		if err := ed.loadAtlas(); err != nil {
			core.LogError("failed to reload atlas: %s", err)
		}
	}
	if state.sheetChanged.Swap(false) {
		if err := ed.loadSpriteSheet(); err != nil {
			core.LogError("failed to reload sprite sheet: %s", err)
		}
	}
	if state.fontChanged.Swap(false) {
		if err := ed.loadFont(); err != nil {
			core.LogError("failed to reload font: %s", err)
		}
	}

	switch {
	case core.InputIsKeyPressed(core.KEY_ESCAPE):
		state.selection.setSelection(state.selection.ClearSelection)
	case core.InputIsKeyPressed(core.KEY_N):
		name := state.sheet.NextName("sprite")
		sprite, err := state.sheet.Add(name, state.selection.Selection)
		if err != nil {
			core.LogWarn("cannot add sprite: %s", err)
			break
		}
		core.LogInfo("added sprite %s covering %s", sprite.Name, sprite.Cells)
	case core.InputIsKeyPressed(core.KEY_S):
		if err := state.sheet.Save(ed.ApplicationConfig.SpriteSheetPath); err != nil {
			core.LogError("%s", err)
			break
		}
		core.LogInfo("saved %d sprites to %s", state.sheet.Len(), ed.ApplicationConfig.SpriteSheetPath)
	case core.InputIsKeyPressed(core.KEY_E):
		if err := ed.exportSprites(); err != nil {
			core.LogError("export failed: %s", err)
		}
	}
	return nil
}

func (ed *Editor) Render(ctx ui.Context, deltaTime float64) error {
	state := ed.state()
	if state.atlas == nil {
		return core.ErrAtlasNotLoaded
	}

	AtlasEditor(ctx, state.atlas, state.selection)

	ctx.SameLine()

	ctx.Group(func() {
		previewSize := ed.ApplicationConfig.PreviewSize
		NewSpritePreview(state.atlas).
			WidgetSize(math.NewVec2Splat(previewSize)).
			DisplayRange(state.selection.Selection).
			BackgroundColor(state.selection.PreviewBackground).
			Build(ctx)

		for _, sprite := range state.sheet.Sprites() {
			NewSpritePreview(state.atlas).
				WidgetSize(math.NewVec2Splat(previewSize * thumbnailScale)).
				DisplayRange(sprite.Cells).
				BackgroundColor(state.selection.PreviewBackground).
				Build(ctx)
			ctx.SameLine()
			ctx.Text(sprite.Name)
		}
	})
	return nil
}

func (ed *Editor) OnResize(width uint32, height uint32) error {
	state := ed.state()
	state.width = width
	state.height = height
	return nil
}

func (ed *Editor) Shutdown() error {
	core.EventUnregister(core.EVENT_CODE_ASSET_RELOADED, ed)
	state := ed.state()
	if state.jobs != nil {
		// Let queued exports finish before the atlas goes away.
		if err := state.jobs.Shutdown(); err != nil {
			return err
		}
	}
	if state.atlas != nil && state.atlas.Texture != 0 {
		return ed.Renderer.TextureDestroy(state.atlas.Texture)
	}
	return nil
}

func (ed *Editor) loadAtlas() error {
	state := ed.state()
	config := ed.ApplicationConfig

	res, err := ed.AssetManager.LoadAsset(config.AtlasPath, &resources.ImageResourceParams{FlipY: true})
	if err != nil {
		return err
	}
	defer ed.AssetManager.UnloadAsset(res)

	data := res.Data.(*resources.ImageResourceData)
	atlas, err := NewAtlas(config.AtlasPath, data.Image, config.Grid)
	if err != nil {
		return err
	}
	atlas.Texture, err = ed.Renderer.TextureCreate(atlas.Image)
	if err != nil {
		return err
	}

	if state.atlas != nil && state.atlas.Texture != 0 {
		if err := ed.Renderer.TextureDestroy(state.atlas.Texture); err != nil {
			core.LogWarn("failed to release previous atlas texture: %s", err)
		}
	}
	state.atlas = atlas
	core.LogInfo("atlas %s loaded: %s pixels, %s cells", atlas.Path, atlas.Size, atlas.Grid)
	return nil
}

// loadSpriteSheet reads the sprite sheet, starting an empty one if the file
// does not exist yet.
func (ed *Editor) loadSpriteSheet() error {
	state := ed.state()
	config := ed.ApplicationConfig

	res, err := ed.AssetManager.LoadAsset(config.SpriteSheetPath, nil)
	if errors.Is(err, core.ErrAssetNotFound) {
		state.sheet = NewSpriteSheet(config.AtlasPath, config.Grid)
		return nil
	}
	if err != nil {
		return err
	}
	defer ed.AssetManager.UnloadAsset(res)

	sheet, err := SpriteSheetFromConfig(res.Data.(*resources.SpriteSheetConfig))
	if err != nil {
		return fmt.Errorf("failed to load sprite sheet %s: %w", config.SpriteSheetPath, err)
	}
	if sheet.Grid != config.Grid {
		return fmt.Errorf("sprite sheet grid %s does not match atlas grid %s: %w", sheet.Grid, config.Grid, core.ErrInvalidGrid)
	}
	state.sheet = sheet
	return nil
}

// loadFont sets the label font. Without a configured file it is Go Regular at
// the configured size.
func (ed *Editor) loadFont() error {
	config := ed.ApplicationConfig
	style := ui.DefaultStyle()

	if config.FontPath == "" {
		if config.FontSize != ui.DefaultFontSize {
			f, err := ui.NewGoRegular(config.FontSize)
			if err != nil {
				return err
			}
			style.Font = f
		}
		ed.Style = &style
		return nil
	}

	res, err := ed.AssetManager.LoadAsset(config.FontPath, nil)
	if err != nil {
		return err
	}
	defer ed.AssetManager.UnloadAsset(res)

	switch data := res.Data.(type) {
	case *resources.SystemFontResourceData:
		f, err := ui.NewSystemFont(data, config.FontSize)
		if err != nil {
			return fmt.Errorf("font %s: %w", config.FontPath, err)
		}
		style.Font = f
	case *resources.BitmapFontResourceData:
		// Bitmap fonts come in one size only.
		style.Font = ui.NewBitmapFont(data)
	default:
		return fmt.Errorf("%s is not a font: %w", config.FontPath, core.ErrUnknownResourceType)
	}
	core.LogInfo("label font %s loaded", style.Font.Name())
	ed.Style = &style
	return nil
}

// exportSprites queues one PNG per sprite, or the selection when the sheet is
// empty. Cropping happens here; encoding and writing run on the job system.
func (ed *Editor) exportSprites() error {
	state := ed.state()
	dir := ed.ApplicationConfig.ExportDir

	sprites := state.sheet.Sprites()
	if len(sprites) == 0 {
		sprites = []Sprite{{Name: "selection", Cells: state.selection.Selection}}
	}
	for _, sprite := range sprites {
		img, err := ExportSprite(state.atlas, sprite.Cells, 1)
		if err != nil {
			return fmt.Errorf("sprite %s: %w", sprite.Name, err)
		}
		path := filepath.Join(dir, sprite.Name+".png")
		err = state.jobs.Submit(systems.JobTask{
			Name: "export " + sprite.Name,
			Run:  func() error { return WritePNG(path, img) },
			OnComplete: func() {
				core.LogInfo("exported %s", path)
			},
		})
		if err != nil {
			return err
		}
	}
	core.LogInfo("queued %d sprites for export to %s", len(sprites), dir)
	return nil
}

func (ed *Editor) onAssetReloaded(context core.EventContext) bool {
	ae, ok := context.Data.(*core.AssetEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	config := ed.ApplicationConfig
	switch {
	case samePath(ae.Path, config.AtlasPath):
		ed.state().atlasChanged.Store(true)
	case samePath(ae.Path, config.SpriteSheetPath):
		ed.state().sheetChanged.Store(true)
	case config.FontPath != "" && samePath(ae.Path, config.FontPath):
		ed.state().fontChanged.Store(true)
	}
	return false
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	if absA == absB {
		return true
	}
	infoA, errA := os.Stat(absA)
	infoB, errB := os.Stat(absB)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}

package engine

import (
	"github.com/spaghettifunk/dungeon-sprites/engine/assets"
	"github.com/spaghettifunk/dungeon-sprites/engine/renderer"
	"github.com/spaghettifunk/dungeon-sprites/engine/ui"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	// Set by the engine before FnInitialize is called.
	AssetManager *assets.AssetManager
	Renderer     *renderer.Renderer
	// Optional; frames use ui.DefaultStyle when nil.
	Style        *ui.Style
	State        interface{}
	FnInitialize Initialize
	FnUpdate     Update
	FnRender     Render
	FnOnResize   OnResize
	FnShutdown   Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type Render func(ctx ui.Context, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error

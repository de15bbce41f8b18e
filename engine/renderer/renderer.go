package renderer

import (
	"fmt"
	"image"

	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/ui"
)

type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(deltaTime float64) error
	EndFrame(deltaTime float64) error
	// TextureCreate uploads img and returns the id draw commands refer to it by.
	TextureCreate(img *image.NRGBA) (uint32, error)
	TextureDestroy(id uint32) error
	DrawList(drawList *ui.DrawList) error
}

type Renderer struct {
	backend     RendererBackend
	frameNumber uint64
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{
		backend: backend,
	}
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	return r.backend.Initialize(appName, appWidth, appHeight)
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint32) error {
	return r.backend.Resized(width, height)
}

func (r *Renderer) FrameNumber() uint64 {
	return r.frameNumber
}

func (r *Renderer) TextureCreate(img *image.NRGBA) (uint32, error) {
	if img == nil {
		return 0, fmt.Errorf("cannot create a texture from a nil image")
	}
	return r.backend.TextureCreate(img)
}

func (r *Renderer) TextureDestroy(id uint32) error {
	return r.backend.TextureDestroy(id)
}

// DrawFrame submits everything recorded in drawList as one frame.
func (r *Renderer) DrawFrame(drawList *ui.DrawList, deltaTime float64) error {
	if err := r.backend.BeginFrame(deltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}
	if err := r.backend.DrawList(drawList); err != nil {
		core.LogError("failed to draw frame %d: %s", r.frameNumber, err)
		return err
	}
	if err := r.backend.EndFrame(deltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	r.frameNumber++
	return nil
}

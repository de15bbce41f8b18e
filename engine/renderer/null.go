package renderer

import (
	"fmt"
	"image"
	"sync"

	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/ui"
)

// NullBackend draws nothing. It keeps textures in memory and logs what each
// frame would have drawn, which is enough to run the editor headless.
type NullBackend struct {
	mutex     sync.Mutex
	textures  map[uint32]*image.NRGBA
	nextID    uint32
	inFrame   bool
	width     uint32
	height    uint32
	LastFrame map[ui.CommandKind]int
}

func NewNullBackend() *NullBackend {
	return &NullBackend{
		textures: make(map[uint32]*image.NRGBA),
		// 0 means "no texture" in draw commands.
		nextID: 1,
	}
}

func (nb *NullBackend) Initialize(appName string, appWidth, appHeight uint32) error {
	nb.width, nb.height = appWidth, appHeight
	core.LogInfo("null renderer initialized for %s (%dx%d)", appName, appWidth, appHeight)
	return nil
}

func (nb *NullBackend) Shutdown() error {
	nb.mutex.Lock()
	defer nb.mutex.Unlock()
	clear(nb.textures)
	return nil
}

func (nb *NullBackend) Resized(width, height uint32) error {
	nb.width, nb.height = width, height
	return nil
}

func (nb *NullBackend) BeginFrame(deltaTime float64) error {
	if nb.inFrame {
		return fmt.Errorf("BeginFrame called twice without EndFrame")
	}
	nb.inFrame = true
	return nil
}

func (nb *NullBackend) EndFrame(deltaTime float64) error {
	if !nb.inFrame {
		return fmt.Errorf("EndFrame called without BeginFrame")
	}
	nb.inFrame = false
	return nil
}

func (nb *NullBackend) TextureCreate(img *image.NRGBA) (uint32, error) {
	nb.mutex.Lock()
	defer nb.mutex.Unlock()
	id := nb.nextID
	nb.nextID++
	nb.textures[id] = img
	core.LogDebug("texture %d created (%dx%d)", id, img.Bounds().Dx(), img.Bounds().Dy())
	return id, nil
}

func (nb *NullBackend) TextureDestroy(id uint32) error {
	nb.mutex.Lock()
	defer nb.mutex.Unlock()
	if _, ok := nb.textures[id]; !ok {
		return fmt.Errorf("texture %d does not exist", id)
	}
	delete(nb.textures, id)
	return nil
}

func (nb *NullBackend) Texture(id uint32) (*image.NRGBA, bool) {
	nb.mutex.Lock()
	defer nb.mutex.Unlock()
	img, ok := nb.textures[id]
	return img, ok
}

func (nb *NullBackend) DrawList(drawList *ui.DrawList) error {
	if !nb.inFrame {
		return fmt.Errorf("DrawList called outside of a frame")
	}
	for i, cmd := range drawList.Commands {
		if cmd.Kind != ui.CommandImage {
			continue
		}
		if _, ok := nb.Texture(cmd.Texture); !ok {
			return fmt.Errorf("command %d references unknown texture %d", i, cmd.Texture)
		}
	}
	nb.LastFrame = drawList.CountByKind()
	core.LogDebug("frame: %d rects, %d circles, %d images, %d labels",
		nb.LastFrame[ui.CommandRect], nb.LastFrame[ui.CommandCircle], nb.LastFrame[ui.CommandImage], nb.LastFrame[ui.CommandText])
	return nil
}

package platform

import (
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/dungeon-sprites/engine/containers"
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
)

// Number of window events buffered between two PumpMessages calls.
const eventQueueSize = 256

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type eventKind uint8

const (
	eventKey eventKind = iota
	eventButton
	eventMouseMove
	eventScroll
	eventResize
	eventClose
)

type windowEvent struct {
	kind    eventKind
	key     core.KeyCode
	button  core.Button
	pressed bool
	x, y    float32
	scroll  int8
	width   uint32
	height  uint32
}

type Platform struct {
	Window    *glfw.Window
	queue     *containers.RingQueue[windowEvent]
	startTime float64
}

func New() *Platform {
	return &Platform{
		Window: nil,
		queue:  containers.NewRingQueue[windowEvent](eventQueueSize),
	}
}

func (p *Platform) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	if err := glfw.Init(); err != nil {
		core.LogFatal("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	// The renderer backend owns the graphics API.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		core.LogFatal("failed to create window: %s", err)
		return err
	}
	p.Window = window

	p.Window.SetKeyCallback(p.keyCallback)
	p.Window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.Window.SetCursorPosCallback(p.cursorPosCallback)
	p.Window.SetScrollCallback(p.scrollCallback)
	p.Window.SetFramebufferSizeCallback(p.framebufferSizeCallback)
	p.Window.SetCloseCallback(p.closeCallback)
	p.Window.SetPos(int(x), int(y))
	p.Window.Show()

	p.startTime = glfw.GetTime()

	return nil
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

// PumpMessages polls the window and forwards buffered events to the input
// and event systems. Returns false once the window should close.
func (p *Platform) PumpMessages() bool {
	if p.Window == nil {
		return false
	}
	glfw.PollEvents()
	p.dispatch()
	return !p.Window.ShouldClose()
}

// GetAbsoluteTime returns seconds since the platform started.
func (p *Platform) GetAbsoluteTime() float64 {
	return glfw.GetTime() - p.startTime
}

func (p *Platform) Sleep(ms float64) {
	time.Sleep(time.Duration(ms * float64(time.Millisecond)))
}

func (p *Platform) FramebufferSize() (uint32, uint32) {
	if p.Window == nil {
		return 0, 0
	}
	w, h := p.Window.GetFramebufferSize()
	return uint32(w), uint32(h)
}

func (p *Platform) enqueue(e windowEvent) {
	if err := p.queue.Enqueue(e); err != nil {
		core.LogWarn("dropping window event %d: %s", e.kind, err)
	}
}

func (p *Platform) dispatch() {
	for !p.queue.IsEmpty() {
		e, err := p.queue.Dequeue()
		if err != nil {
			return
		}
		switch e.kind {
		case eventKey:
			core.InputProcessKey(e.key, e.pressed)
		case eventButton:
			core.InputProcessButton(e.button, e.pressed)
		case eventMouseMove:
			core.InputProcessMouseMove(e.x, e.y)
		case eventScroll:
			core.InputProcessMouseWheel(e.scroll)
		case eventResize:
			core.EventFire(core.EventContext{
				Type: core.EVENT_CODE_RESIZED,
				Data: &core.ResizeEvent{Width: e.width, Height: e.height},
			})
		case eventClose:
			core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
		}
	}
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	code, ok := translateKey(key)
	if !ok {
		return
	}
	p.enqueue(windowEvent{kind: eventKey, key: code, pressed: action == glfw.Press})
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := translateButton(button)
	if !ok {
		return
	}
	p.enqueue(windowEvent{kind: eventButton, button: b, pressed: action == glfw.Press})
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	p.enqueue(windowEvent{kind: eventMouseMove, x: float32(xpos), y: float32(ypos)})
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	scroll := int8(0)
	if yoff > 0 {
		scroll = 1
	} else if yoff < 0 {
		scroll = -1
	}
	p.enqueue(windowEvent{kind: eventScroll, scroll: scroll})
}

func (p *Platform) framebufferSizeCallback(w *glfw.Window, width, height int) {
	p.enqueue(windowEvent{kind: eventResize, width: uint32(width), height: uint32(height)})
}

func (p *Platform) closeCallback(w *glfw.Window) {
	p.enqueue(windowEvent{kind: eventClose})
}

func translateKey(key glfw.Key) (core.KeyCode, bool) {
	// Letters share their ASCII codes with glfw.
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return core.KeyCode(key), true
	}
	switch key {
	case glfw.KeyEscape:
		return core.KEY_ESCAPE, true
	case glfw.KeySpace:
		return core.KEY_SPACE, true
	case glfw.KeyEnter:
		return core.KEY_ENTER, true
	case glfw.KeyTab:
		return core.KEY_TAB, true
	case glfw.KeyBackspace:
		return core.KEY_BACKSPACE, true
	case glfw.KeyDelete:
		return core.KEY_DELETE, true
	case glfw.KeyLeft:
		return core.KEY_LEFT, true
	case glfw.KeyRight:
		return core.KEY_RIGHT, true
	case glfw.KeyUp:
		return core.KEY_UP, true
	case glfw.KeyDown:
		return core.KEY_DOWN, true
	case glfw.KeyLeftShift:
		return core.KEY_LSHIFT, true
	case glfw.KeyRightShift:
		return core.KEY_RSHIFT, true
	case glfw.KeyLeftControl:
		return core.KEY_LCONTROL, true
	case glfw.KeyRightControl:
		return core.KEY_RCONTROL, true
	case glfw.KeyF1:
		return core.KEY_F1, true
	case glfw.KeyF2:
		return core.KEY_F2, true
	case glfw.KeyF3:
		return core.KEY_F3, true
	case glfw.KeyF4:
		return core.KEY_F4, true
	default:
		return 0, false
	}
}

func translateButton(button glfw.MouseButton) (core.Button, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return core.BUTTON_LEFT, true
	case glfw.MouseButtonRight:
		return core.BUTTON_RIGHT, true
	case glfw.MouseButtonMiddle:
		return core.BUTTON_MIDDLE, true
	default:
		return 0, false
	}
}

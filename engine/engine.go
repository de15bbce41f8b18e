package engine

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/spaghettifunk/dungeon-sprites/engine/assets"
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
	"github.com/spaghettifunk/dungeon-sprites/engine/platform"
	"github.com/spaghettifunk/dungeon-sprites/engine/renderer"
	"github.com/spaghettifunk/dungeon-sprites/engine/ui"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine has released everything
	EngineStageShutdown
)

// Window is what the engine needs from the platform layer.
type Window interface {
	Startup(applicationName string, x, y, width, height uint32) error
	Shutdown() error
	// PumpMessages returns false once the window wants to close.
	PumpMessages() bool
	GetAbsoluteTime() float64
	Sleep(ms float64)
}

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    atomic.Bool
	isSuspended  bool
	window       Window
	assetManager *assets.AssetManager
	renderer     *renderer.Renderer
	width        uint32
	height       uint32
	clock        *core.Clock
	lastTime     float64
}

// New creates an engine with a glfw window and the null renderer backend.
func New(g *Game) (*Engine, error) {
	return NewWithBackends(g, platform.New(), renderer.NewNullBackend())
}

func NewWithBackends(g *Game, window Window, backend renderer.RendererBackend) (*Engine, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}
	if err := g.ApplicationConfig.Validate(); err != nil {
		return nil, err
	}

	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	e := &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		window:       window,
		assetManager: am,
		renderer:     renderer.New(backend),
		isSuspended:  false,
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
		lastTime:     0,
	}
	g.AssetManager = am
	g.Renderer = e.renderer
	return e, nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Initialize() error {
	config := e.gameInstance.ApplicationConfig
	e.currentStage = EngineStageInitializing
	core.LogSetLevel(config.Level())

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}
	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	core.EventRegister(core.EVENT_CODE_RESIZED, e, e.onResized)

	if err := e.window.Startup(config.Name,
		config.StartPosX,
		config.StartPosY,
		config.StartWidth,
		config.StartHeight); err != nil {
		return err
	}

	if err := e.renderer.Initialize(config.Name, config.StartWidth, config.StartHeight); err != nil {
		return err
	}

	// initialize subsystems
	if err := os.MkdirAll(config.AssetsDir, 0o755); err != nil {
		return err
	}
	if err := e.assetManager.Initialize(config.AssetsDir); err != nil {
		return err
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}

	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}
	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.isRunning.Store(true)

	e.clock.Start()
	e.clock.Update()

	e.lastTime = e.clock.Elapsed()

	var targetFrameSeconds float64 = 1.0 / 60.0
	var frameCount uint64 = 0

	for e.isRunning.Load() {
		if !e.window.PumpMessages() {
			e.isRunning.Store(false)
			break
		}

		if e.isSuspended {
			e.window.Sleep(targetFrameSeconds * 1000)
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()

		var currentTime float64 = e.clock.Elapsed()
		var delta float64 = (currentTime - e.lastTime)
		var frameStartTime float64 = e.window.GetAbsoluteTime()

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("Game update failed, shutting down: %s", err)
			e.isRunning.Store(false)
			return err
		}

		viewport := math.NewAabb2(math.NewVec2Zero(), math.NewVec2(float32(e.width), float32(e.height)))
		frame := ui.NewFrame(viewport, e.frameStyle())

		// Call the game's render routine.
		if err := e.gameInstance.FnRender(frame, delta); err != nil {
			core.LogError("Game render failed, shutting down: %s", err)
			e.isRunning.Store(false)
			return err
		}

		if err := e.renderer.DrawFrame(frame.DrawList(), delta); err != nil {
			e.isRunning.Store(false)
			return err
		}

		// Figure out how long the frame took and, if below
		var frameEndTime float64 = e.window.GetAbsoluteTime()
		var frameElapsedTime float64 = frameEndTime - frameStartTime
		core.MetricsUpdate(frameElapsedTime)
		var remainingSeconds float64 = targetFrameSeconds - frameElapsedTime

		if remainingSeconds > 0 && e.gameInstance.ApplicationConfig.LimitFrames {
			// If there is time left, give it back to the OS.
			e.window.Sleep(remainingSeconds*1000 - 1)
		}

		frameCount++
		if frameCount%600 == 0 {
			fps, frameMS := core.MetricsFrame()
			core.LogDebug("fps: %.1f, frame time: %.3fms", fps, frameMS)
		}

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		// As a safety, input is the last thing to be updated before
		// this frame ends.
		core.InputUpdate(delta)

		// Update last time
		e.lastTime = currentTime
	}

	return nil
}

func (e *Engine) frameStyle() ui.Style {
	if e.gameInstance.Style != nil {
		return *e.gameInstance.Style
	}
	return ui.DefaultStyle()
}

// Stop makes Run return after the current frame. Safe to call from any goroutine.
func (e *Engine) Stop() {
	e.isRunning.Store(false)
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShutdown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning.Store(false)
	e.clock.Stop()

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError("game shutdown failed: %s", err)
		}
	}
	if err := e.assetManager.Shutdown(); err != nil {
		return err
	}
	if err := e.renderer.Shutdown(); err != nil {
		return err
	}
	if err := e.window.Shutdown(); err != nil {
		return err
	}

	core.EventUnregister(core.EVENT_CODE_APPLICATION_QUIT, e)
	core.EventUnregister(core.EVENT_CODE_RESIZED, e)
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	e.currentStage = EngineStageShutdown
	return nil
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning.Store(false)
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	re, ok := context.Data.(*core.ResizeEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width := re.Width
	height := re.Height

	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height

	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	if err := e.renderer.OnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	return false
}

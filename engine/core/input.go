package core

import (
	"sync"

	"github.com/spaghettifunk/dungeon-sprites/engine/math"
)

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Key code definitions
type KeyCode uint16

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_SHIFT     KeyCode = 0x10
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_DELETE    KeyCode = 0x2E
	KEY_A         KeyCode = 0x41
	KEY_B         KeyCode = 0x42
	KEY_C         KeyCode = 0x43
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_F         KeyCode = 0x46
	KEY_G         KeyCode = 0x47
	KEY_H         KeyCode = 0x48
	KEY_I         KeyCode = 0x49
	KEY_J         KeyCode = 0x4A
	KEY_K         KeyCode = 0x4B
	KEY_L         KeyCode = 0x4C
	KEY_M         KeyCode = 0x4D
	KEY_N         KeyCode = 0x4E
	KEY_O         KeyCode = 0x4F
	KEY_P         KeyCode = 0x50
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_T         KeyCode = 0x54
	KEY_U         KeyCode = 0x55
	KEY_V         KeyCode = 0x56
	KEY_W         KeyCode = 0x57
	KEY_X         KeyCode = 0x58
	KEY_Y         KeyCode = 0x59
	KEY_Z         KeyCode = 0x5A
	KEY_F1        KeyCode = 0x70
	KEY_F2        KeyCode = 0x71
	KEY_F3        KeyCode = 0x72
	KEY_F4        KeyCode = 0x73
	KEY_LSHIFT    KeyCode = 0xA0
	KEY_RSHIFT    KeyCode = 0xA1
	KEY_LCONTROL  KeyCode = 0xA2
	KEY_RCONTROL  KeyCode = 0xA3
	KEYS_MAX_KEYS KeyCode = 0xFF
)

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button   Button
	Position math.Vec2
	Scroll   int8
}

// Mouse state structure
type MouseState struct {
	Position math.Vec2
	Buttons  [BUTTON_MAX_BUTTONS]bool // button states (pressed/released)
	// Position at which each button last went down.
	DragOrigin [BUTTON_MAX_BUTTONS]math.Vec2
}

// Keyboard state structure
type KeyboardState struct {
	Keys [256]bool
}

// Input state structure that holds current and previous states for keyboard and mouse
type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
	MouseCurrent     MouseState
	MousePrevious    MouseState
}

var inputMutex sync.RWMutex
var inputState *InputState = nil

func InputInitialize() error {
	inputMutex.Lock()
	inputState = &InputState{}
	inputMutex.Unlock()
	LogInfo("Input subsystem initialized.")
	return nil
}

func InputShutdown() error {
	inputMutex.Lock()
	defer inputMutex.Unlock()
	inputState = nil
	return nil
}

// InputUpdate ends the input frame. Must run after everything that reads
// pressed/released transitions for the frame.
func InputUpdate(deltaTime float64) error {
	inputMutex.Lock()
	defer inputMutex.Unlock()
	if inputState == nil {
		return nil
	}

	// Copy current states to previous states.
	inputState.KeyboardPrevious = inputState.KeyboardCurrent
	inputState.MousePrevious = inputState.MouseCurrent

	return nil
}

func readInput(fn func(s *InputState) bool) bool {
	inputMutex.RLock()
	defer inputMutex.RUnlock()
	if inputState == nil {
		return false
	}
	return fn(inputState)
}

// keyboard input
func InputIsKeyDown(key KeyCode) bool {
	return readInput(func(s *InputState) bool { return s.KeyboardCurrent.Keys[key] })
}

func InputIsKeyUp(key KeyCode) bool {
	return readInput(func(s *InputState) bool { return !s.KeyboardCurrent.Keys[key] })
}

func InputWasKeyDown(key KeyCode) bool {
	return readInput(func(s *InputState) bool { return s.KeyboardPrevious.Keys[key] })
}

// InputIsKeyPressed reports a key that went down during this frame.
func InputIsKeyPressed(key KeyCode) bool {
	return readInput(func(s *InputState) bool {
		return s.KeyboardCurrent.Keys[key] && !s.KeyboardPrevious.Keys[key]
	})
}

func InputProcessKey(key KeyCode, pressed bool) error {
	inputMutex.Lock()
	if inputState == nil || inputState.KeyboardCurrent.Keys[key] == pressed {
		inputMutex.Unlock()
		return nil
	}
	inputState.KeyboardCurrent.Keys[key] = pressed
	inputMutex.Unlock()

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}

	// Fire off an event for immediate processing.
	EventFire(EventContext{
		Type: code,
		Data: &KeyEvent{
			KeyCode: key,
		},
	})
	return nil
}

// mouse input
func InputIsButtonDown(button Button) bool {
	return readInput(func(s *InputState) bool { return s.MouseCurrent.Buttons[button] })
}

func InputIsButtonUp(button Button) bool {
	return readInput(func(s *InputState) bool { return !s.MouseCurrent.Buttons[button] })
}

func InputWasButtonDown(button Button) bool {
	return readInput(func(s *InputState) bool { return s.MousePrevious.Buttons[button] })
}

// InputIsButtonPressed reports a button that went down during this frame.
func InputIsButtonPressed(button Button) bool {
	return readInput(func(s *InputState) bool {
		return s.MouseCurrent.Buttons[button] && !s.MousePrevious.Buttons[button]
	})
}

func InputGetMousePosition() math.Vec2 {
	inputMutex.RLock()
	defer inputMutex.RUnlock()
	if inputState == nil {
		return math.NewVec2Zero()
	}
	return inputState.MouseCurrent.Position
}

func InputGetPreviousMousePosition() math.Vec2 {
	inputMutex.RLock()
	defer inputMutex.RUnlock()
	if inputState == nil {
		return math.NewVec2Zero()
	}
	return inputState.MousePrevious.Position
}

// InputGetMouseDragDelta returns how far the mouse travelled since button went
// down, or zero while the button is up.
func InputGetMouseDragDelta(button Button) math.Vec2 {
	inputMutex.RLock()
	defer inputMutex.RUnlock()
	if inputState == nil || !inputState.MouseCurrent.Buttons[button] {
		return math.NewVec2Zero()
	}
	return inputState.MouseCurrent.Position.Sub(inputState.MouseCurrent.DragOrigin[button])
}

func InputProcessButton(button Button, pressed bool) error {
	inputMutex.Lock()
	if inputState == nil || inputState.MouseCurrent.Buttons[button] == pressed {
		inputMutex.Unlock()
		return nil
	}
	inputState.MouseCurrent.Buttons[button] = pressed
	if pressed {
		inputState.MouseCurrent.DragOrigin[button] = inputState.MouseCurrent.Position
	}
	position := inputState.MouseCurrent.Position
	inputMutex.Unlock()

	code := EVENT_CODE_BUTTON_RELEASED
	if pressed {
		code = EVENT_CODE_BUTTON_PRESSED
	}
	EventFire(EventContext{
		Type: code,
		Data: &MouseEvent{
			Button:   button,
			Position: position,
		},
	})
	return nil
}

func InputProcessMouseMove(x, y float32) error {
	position := math.NewVec2(x, y)

	inputMutex.Lock()
	// Only process if actually different
	if inputState == nil || inputState.MouseCurrent.Position == position {
		inputMutex.Unlock()
		return nil
	}
	inputState.MouseCurrent.Position = position
	inputMutex.Unlock()

	EventFire(EventContext{
		Type: EVENT_CODE_MOUSE_MOVED,
		Data: &MouseEvent{
			Position: position,
		},
	})
	return nil
}

func InputProcessMouseWheel(zDelta int8) error {
	EventFire(EventContext{
		Type: EVENT_CODE_MOUSE_WHEEL,
		Data: &MouseEvent{
			Scroll: zDelta,
		},
	})
	return nil
}

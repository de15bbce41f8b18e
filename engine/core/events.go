package core

import (
	"sync"

	"github.com/spaghettifunk/dungeon-sprites/engine/math"
)

type EventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed. Data: *KeyEvent
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released. Data: *KeyEvent
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Mouse button pressed. Data: *MouseEvent
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04

	// Mouse button released. Data: *MouseEvent
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05

	// Mouse moved. Data: *MouseEvent
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06

	// Mouse wheel. Data: *MouseEvent
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07

	// Resized/resolution changed from the OS. Data: *ResizeEvent
	EVENT_CODE_RESIZED EventCode = 0x08

	// A watched asset changed on disk. Data: *AssetEvent
	EVENT_CODE_ASSET_RELOADED EventCode = 0x09

	// The atlas cell selection changed. Data: *SelectionEvent
	EVENT_CODE_SELECTION_CHANGED EventCode = 0x0A

	// The sprite sheet was written to disk. Data: *AssetEvent
	EVENT_CODE_SPRITE_SHEET_SAVED EventCode = 0x0B

	MAX_EVENT_CODE EventCode = 0xFF
)

type EventContext struct {
	Type EventCode
	Data interface{}
}

type ResizeEvent struct {
	Width  uint32
	Height uint32
}

type AssetEvent struct {
	Path string
}

type SelectionEvent struct {
	Previous math.Aabb2i
	Current  math.Aabb2i
}

// Should return true if handled.
type FnOnEvent func(data EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

// State structure.
type eventSystemState struct {
	mutex sync.RWMutex
	// Lookup table for event codes.
	registered map[EventCode][]*registeredEvent
}

var eventState *eventSystemState = nil
var eventStateMutex sync.Mutex

func currentEventState() *eventSystemState {
	eventStateMutex.Lock()
	defer eventStateMutex.Unlock()
	return eventState
}

// EventSystemInitialize prepares the event tables. Returns false if already initialized.
func EventSystemInitialize() bool {
	eventStateMutex.Lock()
	defer eventStateMutex.Unlock()
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{
		registered: make(map[EventCode][]*registeredEvent),
	}
	return true
}

func EventSystemShutdown() error {
	eventStateMutex.Lock()
	defer eventStateMutex.Unlock()
	eventState = nil
	return nil
}

/**
 * Register to listen for when events are sent with the provided code. A listener
 * may only be registered once per code; duplicates return false.
 * @param code The event code to listen for.
 * @param listener A pointer to a listener instance. Must be comparable.
 * @param onEvent The callback invoked when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func EventRegister(code EventCode, listener interface{}, onEvent FnOnEvent) bool {
	state := currentEventState()
	if state == nil || onEvent == nil {
		return false
	}
	state.mutex.Lock()
	defer state.mutex.Unlock()

	for _, e := range state.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	state.registered[code] = append(state.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister a listener from the provided code.
 * @returns true if the listener was found and removed; otherwise false.
 */
func EventUnregister(code EventCode, listener interface{}) bool {
	state := currentEventState()
	if state == nil {
		return false
	}
	state.mutex.Lock()
	defer state.mutex.Unlock()

	events := state.registered[code]
	for i, e := range events {
		if e.listener == listener {
			state.registered[code] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 * Handlers run on the calling goroutine.
 * @returns true if handled, otherwise false.
 */
func EventFire(context EventContext) bool {
	state := currentEventState()
	if state == nil {
		return false
	}
	state.mutex.RLock()
	events := make([]*registeredEvent, len(state.registered[context.Type]))
	copy(events, state.registered[context.Type])
	state.mutex.RUnlock()

	for _, e := range events {
		if e.callback(context) {
			return true
		}
	}
	return false
}

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setupEvents(t *testing.T) {
	t.Helper()
	require.NoError(t, EventSystemShutdown())
	require.True(t, EventSystemInitialize())
	t.Cleanup(func() { _ = EventSystemShutdown() })
}

type listener struct {
	name string
	seen []EventContext
}

func TestEventRegisterAndFire(t *testing.T) {
	setupEvents(t)

	l := &listener{name: "editor"}
	require.True(t, EventRegister(EVENT_CODE_ASSET_RELOADED, l, func(ctx EventContext) bool {
		l.seen = append(l.seen, ctx)
		return true
	}))

	handled := EventFire(EventContext{Type: EVENT_CODE_ASSET_RELOADED, Data: &AssetEvent{Path: "atlas.png"}})
	require.True(t, handled)
	require.Len(t, l.seen, 1)
	require.Equal(t, "atlas.png", l.seen[0].Data.(*AssetEvent).Path)

	require.False(t, EventFire(EventContext{Type: EVENT_CODE_RESIZED}))
}

func TestEventRegisterDuplicate(t *testing.T) {
	setupEvents(t)

	l := &listener{}
	fn := func(EventContext) bool { return false }
	require.True(t, EventRegister(EVENT_CODE_KEY_PRESSED, l, fn))
	require.False(t, EventRegister(EVENT_CODE_KEY_PRESSED, l, fn))
	require.True(t, EventRegister(EVENT_CODE_KEY_RELEASED, l, fn))
	require.False(t, EventRegister(EVENT_CODE_KEY_RELEASED, &listener{}, nil))
}

func TestEventHandledStopsPropagation(t *testing.T) {
	setupEvents(t)

	first, second := &listener{name: "first"}, &listener{name: "second"}
	calls := []string{}
	EventRegister(EVENT_CODE_SELECTION_CHANGED, first, func(EventContext) bool {
		calls = append(calls, first.name)
		return true
	})
	EventRegister(EVENT_CODE_SELECTION_CHANGED, second, func(EventContext) bool {
		calls = append(calls, second.name)
		return true
	})

	require.True(t, EventFire(EventContext{Type: EVENT_CODE_SELECTION_CHANGED}))
	require.Equal(t, []string{"first"}, calls)

	require.True(t, EventUnregister(EVENT_CODE_SELECTION_CHANGED, first))
	require.False(t, EventUnregister(EVENT_CODE_SELECTION_CHANGED, first))
	require.True(t, EventFire(EventContext{Type: EVENT_CODE_SELECTION_CHANGED}))
	require.Equal(t, []string{"first", "second"}, calls)
}

func TestEventSystemNotInitialized(t *testing.T) {
	require.NoError(t, EventSystemShutdown())
	require.False(t, EventRegister(EVENT_CODE_KEY_PRESSED, &listener{}, func(EventContext) bool { return true }))
	require.False(t, EventFire(EventContext{Type: EVENT_CODE_KEY_PRESSED}))
	require.False(t, EventUnregister(EVENT_CODE_KEY_PRESSED, &listener{}))

	require.True(t, EventSystemInitialize())
	require.False(t, EventSystemInitialize())
	require.NoError(t, EventSystemShutdown())
}

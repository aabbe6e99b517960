package tray

import (
	"testing"

	"pomodoro/internal/core/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateReflectsSnapshot(t *testing.T) {
	manager := New(nil, "Pomodoro", Callbacks{})

	manager.Update(timer.Snapshot{Mode: timer.ModeSession, Display: "24:59", Running: true})
	assert.Equal(t, "Status: Focus 24:59", manager.statusItem.Label)
	assert.Equal(t, "Stop", manager.toggleItem.Label)

	manager.Update(timer.Snapshot{Mode: timer.ModeBreak, Display: "04:12"})
	assert.Equal(t, "Status: Break 04:12 (paused)", manager.statusItem.Label)
	assert.Equal(t, "Start", manager.toggleItem.Label)
}

func TestMenuItemsInvokeCallbacks(t *testing.T) {
	var calls []string
	manager := New(nil, "Pomodoro", Callbacks{
		OnShow:   func() { calls = append(calls, "show") },
		OnToggle: func() { calls = append(calls, "toggle") },
		OnReset:  func() { calls = append(calls, "reset") },
		OnQuit:   func() { calls = append(calls, "quit") },
	})

	menu := manager.Menu()
	require.Len(t, menu.Items, 7)
	assert.Equal(t, "Pomodoro", menu.Label)
	assert.True(t, menu.Items[0].Disabled)

	for _, item := range menu.Items {
		if item.Action != nil {
			item.Action()
		}
	}
	assert.Equal(t, []string{"show", "toggle", "reset", "quit"}, calls)
}

func TestMissingCallbacksAreIgnored(t *testing.T) {
	manager := New(nil, "Pomodoro", Callbacks{})

	assert.NotPanics(t, func() {
		manager.toggleItem.Action()
		manager.quitItem.Action()
	})
}

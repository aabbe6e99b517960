package tray

import (
	"fmt"

	"pomodoro/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow   func()
	OnToggle func()
	OnReset  func()
	OnQuit   func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	title      string
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	showItem   *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
	status     string
	running    bool
}

// New creates a tray manager with the provided callbacks.
// A nil app builds the menu without installing it.
func New(app desktop.App, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.showItem = fyne.NewMenuItem("Show timer", invoke(&manager.callbacks.OnShow))
	manager.toggleItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnToggle))
	manager.resetItem = fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset))
	manager.quitItem = fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit))
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	return manager
}

// Update reflects an engine snapshot in the menu.
func (manager *Manager) Update(snapshot timer.Snapshot) {
	manager.status = fmt.Sprintf("%s %s", snapshot.Mode.ShortName(), snapshot.Display)
	manager.running = snapshot.Running
	if manager.running {
		manager.toggleItem.Label = "Stop"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.refreshStatus()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(manager.title,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.showItem,
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	)
}

func (manager *Manager) refreshStatus() {
	status := manager.status
	if !manager.running {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}

package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnOpenDashboard func()
	OnStartFocus    func()
	OnTogglePause   func()
	OnSkip          func()
	OnReset         func()
	OnPreferences   func()
	OnQuit          func()
}

// Manager owns the system tray menu and its status line.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	openItem    *fyne.MenuItem
	startItem   *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	skipItem    *fyne.MenuItem
	resetItem   *fyne.MenuItem
	prefsItem   *fyne.MenuItem
	quitItem    *fyne.MenuItem
	statusLabel string
	paused      bool
}

// New creates a tray manager and installs the initial menu.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{app: app, statusLabel: "Idle"}

	manager.statusItem = fyne.NewMenuItem("Idle", nil)
	manager.statusItem.Disabled = true

	manager.openItem = actionItem("Open dashboard", callbacks.OnOpenDashboard)
	manager.startItem = actionItem("Start focus", callbacks.OnStartFocus)
	manager.pauseItem = actionItem("Pause", callbacks.OnTogglePause)
	manager.skipItem = actionItem("Skip phase", callbacks.OnSkip)
	manager.resetItem = actionItem("Reset", callbacks.OnReset)
	manager.prefsItem = actionItem("Preferences", callbacks.OnPreferences)
	manager.quitItem = actionItem("Quit", callbacks.OnQuit)

	manager.pauseItem.Disabled = true
	manager.skipItem.Disabled = true
	manager.resetItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// actionItem builds a menu item that tolerates a nil handler.
func actionItem(label string, action func()) *fyne.MenuItem {
	return fyne.NewMenuItem(label, func() {
		if action != nil {
			action()
		}
	})
}

// SetStatus updates the disabled status line at the top of the menu.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshMenu()
}

// SetPaused relabels the pause item and marks the status line.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	if paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.refreshMenu()
}

// SetActive toggles the items that only make sense while a cycle runs.
func (manager *Manager) SetActive(active bool) {
	manager.pauseItem.Disabled = !active
	manager.skipItem.Disabled = !active
	manager.resetItem.Disabled = !active
	manager.refreshMenu()
}

// refreshMenu reinstalls the whole menu; mutating items in place does not
// repaint the tray everywhere.
func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = status

	manager.app.SetSystemTrayMenu(fyne.NewMenu("FocusDeck",
		manager.statusItem,
		manager.openItem,
		manager.startItem,
		manager.pauseItem,
		manager.skipItem,
		manager.resetItem,
		manager.prefsItem,
		manager.quitItem,
	))
}

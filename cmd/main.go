package main

import (
	"fmt"
	"log"
	"os"

	"focusdeck/internal/core/focustimer"
	"focusdeck/internal/core/vitality"
	"focusdeck/internal/platform"
	"focusdeck/internal/storage"
	"focusdeck/internal/ui/apptheme"
	"focusdeck/internal/ui/dashboard"
	"focusdeck/internal/ui/preferences"
	"focusdeck/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appName = "FocusDeck"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.focusdeck.app")

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	kv := storage.NewPrefs(fyneApp.Preferences())
	vitalityTracker := vitality.NewTracker(kv)
	installedTheme := apptheme.New(vitalityTracker.Band())
	fyneApp.Settings().SetTheme(installedTheme)

	engine := focustimer.New(storage.NewTimerStore(kv), focustimer.Config{
		OnComplete: func(phase focustimer.Phase) {
			switch phase {
			case focustimer.PhaseWork:
				vitalityTracker.RecordFocus()
			case focustimer.PhaseBreak:
				vitalityTracker.RecordBreak()
			}
		},
	})
	defer engine.Close()

	togglePause := func() {
		if engine.Snapshot().Paused {
			engine.Resume()
		} else {
			engine.Pause()
		}
	}

	var prefsWindow *preferences.Window
	board := dashboard.New(fyneApp, dashboard.Callbacks{
		OnStart: func() {
			engine.Start(settings.TimerConfig())
		},
		OnTogglePause: togglePause,
		OnSkip:        engine.Skip,
		OnReset:       engine.Reset,
		OnPreferences: func() {
			prefsWindow.Show()
		},
	})
	board.SetCloseIntercept(board.Hide)

	autostartService := platform.NewService()
	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		previous := settings
		settings = updated
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
		if updated.LaunchAtLogin != previous.LaunchAtLogin {
			applyAutostart(autostartService, updated.LaunchAtLogin)
		}
	})

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnOpenDashboard: board.Show,
			OnStartFocus: func() {
				engine.Start(settings.TimerConfig())
			},
			OnTogglePause: togglePause,
			OnSkip:        engine.Skip,
			OnReset:       engine.Reset,
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnQuit: func() {
				engine.Close()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(theme.MediaStopIcon())
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	renderTray := func(snapshot focustimer.Snapshot) {
		if trayManager == nil {
			return
		}
		trayManager.SetStatus(trayStatus(snapshot))
		trayManager.SetPaused(snapshot.Paused)
		trayManager.SetActive(snapshot.Active)
		desktopApp.SetSystemTrayIcon(trayIcon(snapshot))
	}

	initial := engine.Snapshot()
	board.Apply(initial, vitalityTracker.Score(), installedTheme.Band())
	renderTray(initial)

	events := engine.Subscribe(5)
	go func() {
		for event := range events {
			snapshot := event.State
			score := vitalityTracker.Score()
			band := vitality.BandFor(score)
			board.Apply(snapshot, score, band)
			fyne.Do(func() {
				renderTray(snapshot)
			})
			if band != installedTheme.Band() {
				next := apptheme.New(band)
				installedTheme = next
				fyne.Do(func() {
					fyneApp.Settings().SetTheme(next)
				})
			}
		}
	}()

	board.Show()
	fyneApp.Run()
}

func applyAutostart(service platform.Service, enabled bool) {
	if !enabled {
		if err := service.DisableAutostart(appName); err != nil {
			log.Printf("autostart: %v", err)
		}
		return
	}
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("autostart: resolve executable: %v", err)
		return
	}
	if err := service.EnableAutostart(appName, execPath); err != nil {
		log.Printf("autostart: %v", err)
	}
}

func trayStatus(snapshot focustimer.Snapshot) string {
	switch snapshot.Phase {
	case focustimer.PhaseWork:
		return "Focus " + formatRemaining(snapshot.RemainingSeconds)
	case focustimer.PhaseBreak:
		return "Break " + formatRemaining(snapshot.RemainingSeconds)
	default:
		return "Idle"
	}
}

func trayIcon(snapshot focustimer.Snapshot) fyne.Resource {
	switch {
	case !snapshot.Active:
		return theme.MediaStopIcon()
	case snapshot.Paused:
		return theme.MediaPauseIcon()
	default:
		return theme.MediaPlayIcon()
	}
}

func formatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

package dashboard

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"focusdeck/internal/core/focustimer"
	"focusdeck/internal/core/vitality"
	"focusdeck/internal/ui/apptheme"
)

// Callbacks defines dashboard action handlers.
type Callbacks struct {
	OnStart       func()
	OnTogglePause func()
	OnSkip        func()
	OnReset       func()
	OnPreferences func()
}

// Window is the main dashboard: the countdown, the phase progress bar and
// the controls.
type Window struct {
	window        fyne.Window
	timerText     *canvas.Text
	phaseLabel    *widget.Label
	vitalityLabel *widget.Label
	progress      *widget.ProgressBar
	startButton   *widget.Button
	pauseButton   *widget.Button
	skipButton    *widget.Button
	resetButton   *widget.Button
	callbacks     Callbacks
}

// New creates the dashboard window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("FocusDeck")

	timerText := canvas.NewText("--:--", apptheme.BandColor(vitality.BandSteady))
	timerText.Alignment = fyne.TextAlignCenter
	timerText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerText.TextSize = 48

	phaseLabel := widget.NewLabelWithStyle("Ready to focus", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	vitalityLabel := widget.NewLabel("")

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	startButton := widget.NewButton("Start focus", nil)
	pauseButton := widget.NewButton("Pause", nil)
	skipButton := widget.NewButton("Skip", nil)
	resetButton := widget.NewButton("Reset", nil)
	pauseButton.Disable()
	skipButton.Disable()
	resetButton.Disable()

	preferencesButton := widget.NewButton("Preferences", nil)

	header := container.NewHBox(phaseLabel, layout.NewSpacer(), vitalityLabel)
	controls := container.NewGridWithColumns(4, startButton, pauseButton, skipButton, resetButton)
	footer := container.NewHBox(layout.NewSpacer(), preferencesButton)

	content := container.NewVBox(
		header,
		container.NewCenter(timerText),
		progress,
		controls,
		footer,
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 260))
	window.CenterOnScreen()

	board := &Window{
		window:        window,
		timerText:     timerText,
		phaseLabel:    phaseLabel,
		vitalityLabel: vitalityLabel,
		progress:      progress,
		startButton:   startButton,
		pauseButton:   pauseButton,
		skipButton:    skipButton,
		resetButton:   resetButton,
		callbacks:     callbacks,
	}

	startButton.OnTapped = func() {
		if board.callbacks.OnStart != nil {
			board.callbacks.OnStart()
		}
	}
	pauseButton.OnTapped = func() {
		if board.callbacks.OnTogglePause != nil {
			board.callbacks.OnTogglePause()
		}
	}
	skipButton.OnTapped = func() {
		if board.callbacks.OnSkip != nil {
			board.callbacks.OnSkip()
		}
	}
	resetButton.OnTapped = func() {
		if board.callbacks.OnReset != nil {
			board.callbacks.OnReset()
		}
	}
	preferencesButton.OnTapped = func() {
		if board.callbacks.OnPreferences != nil {
			board.callbacks.OnPreferences()
		}
	}

	return board
}

// Show displays the dashboard.
func (board *Window) Show() {
	board.window.Show()
	board.window.RequestFocus()
}

// Hide conceals the dashboard; the app keeps running in the tray.
func (board *Window) Hide() {
	board.window.Hide()
}

// SetCloseIntercept forwards to the underlying window.
func (board *Window) SetCloseIntercept(handler func()) {
	board.window.SetCloseIntercept(handler)
}

// Apply renders an engine snapshot plus the current vitality reading. It
// is safe to call from any goroutine.
func (board *Window) Apply(snapshot focustimer.Snapshot, score int, band vitality.Band) {
	fyne.Do(func() {
		board.applyUnsafe(snapshot, score, band)
	})
}

func (board *Window) applyUnsafe(snapshot focustimer.Snapshot, score int, band vitality.Band) {
	board.timerText.Text = formatSeconds(displaySeconds(snapshot))
	board.timerText.Color = apptheme.BandColor(band)
	board.timerText.Refresh()

	board.phaseLabel.SetText(phaseDescription(snapshot))
	board.vitalityLabel.SetText(fmt.Sprintf("Vitality %d (%s)", score, band))

	board.progress.SetValue(phaseProgress(snapshot))

	if snapshot.Active {
		board.startButton.SetText("Restart focus")
		board.pauseButton.Enable()
		board.skipButton.Enable()
		board.resetButton.Enable()
	} else {
		board.startButton.SetText("Start focus")
		board.pauseButton.Disable()
		board.skipButton.Disable()
		board.resetButton.Disable()
	}
	if snapshot.Paused {
		board.pauseButton.SetText("Resume")
	} else {
		board.pauseButton.SetText("Pause")
	}
}

// displaySeconds picks what the big countdown shows: the remaining time
// while a cycle runs, otherwise the configured focus length.
func displaySeconds(snapshot focustimer.Snapshot) int {
	if snapshot.Active {
		return snapshot.RemainingSeconds
	}
	return snapshot.Config.WorkSeconds()
}

func phaseDescription(snapshot focustimer.Snapshot) string {
	var description string
	switch snapshot.Phase {
	case focustimer.PhaseWork:
		description = "Focus"
	case focustimer.PhaseBreak:
		description = "Break"
	default:
		return "Ready to focus"
	}
	if snapshot.Paused {
		description += " (paused)"
	}
	return description
}

func phaseProgress(snapshot focustimer.Snapshot) float64 {
	if !snapshot.Active || snapshot.TotalSeconds <= 0 {
		return 0
	}
	return float64(snapshot.TotalSeconds-snapshot.RemainingSeconds) / float64(snapshot.TotalSeconds)
}

func formatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	minutes := total / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

package preferences

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI. It owns input validation: whatever
// the user types, the settings handed to onSave are already clamped into
// the allowed ranges.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	workEntry   *widget.Entry
	breakEntry  *widget.Entry
	autoRepeat  *widget.Check
	launchLogin *widget.Check
}

// New creates the preferences window. onSave receives the clamped settings
// every time the user saves.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	prefs := &Window{
		window:      app.NewWindow("FocusDeck Settings"),
		settings:    settings,
		onSave:      onSave,
		workEntry:   minutesEntry(settings.WorkMinutes),
		breakEntry:  minutesEntry(settings.BreakMinutes),
		autoRepeat:  widget.NewCheck("Repeat cycle automatically", nil),
		launchLogin: widget.NewCheck("Launch at login", nil),
	}
	prefs.autoRepeat.SetChecked(settings.AutoRepeat)
	prefs.launchLogin.SetChecked(settings.LaunchAtLogin)

	form := container.NewVBox(
		sectionLabel("Intervals"),
		entryRow("Focus length", prefs.workEntry, "min (1-60)"),
		entryRow("Break length", prefs.breakEntry, "min (1-30)"),
		prefs.autoRepeat,
		sectionLabel("System"),
		prefs.launchLogin,
	)

	save := widget.NewButton("Save", prefs.submit)
	cancel := widget.NewButton("Cancel", prefs.window.Hide)
	prefs.window.SetContent(container.NewVBox(
		form,
		container.NewHBox(layout.NewSpacer(), cancel, save),
	))
	prefs.window.Resize(fyne.NewSize(380, 300))

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// submit folds the form into the settings, clamps, reflects what was
// accepted back into the entries, and hands the result to onSave.
func (prefs *Window) submit() {
	settings := prefs.settings
	if minutes, ok := parseMinutes(prefs.workEntry.Text); ok {
		settings.WorkMinutes = minutes
	}
	if minutes, ok := parseMinutes(prefs.breakEntry.Text); ok {
		settings.BreakMinutes = minutes
	}
	settings.AutoRepeat = prefs.autoRepeat.Checked
	settings.LaunchAtLogin = prefs.launchLogin.Checked

	config := settings.TimerConfig()
	settings.WorkMinutes = config.WorkMinutes
	settings.BreakMinutes = config.BreakMinutes
	prefs.workEntry.SetText(strconv.Itoa(settings.WorkMinutes))
	prefs.breakEntry.SetText(strconv.Itoa(settings.BreakMinutes))

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func minutesEntry(minutes int) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(minutes))
	return entry
}

func sectionLabel(title string) *widget.Label {
	return widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

func entryRow(label string, entry *widget.Entry, hint string) fyne.CanvasObject {
	return container.NewHBox(widget.NewLabel(label), entry, widget.NewLabel(hint))
}

// parseMinutes accepts a positive integer minute count.
func parseMinutes(text string) (int, bool) {
	minutes, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || minutes <= 0 {
		return 0, false
	}
	return minutes, true
}

package preferences

import "focusdeck/internal/core/model"

// Settings defines editable user preferences.
type Settings struct {
	WorkMinutes   int
	BreakMinutes  int
	AutoRepeat    bool
	LaunchAtLogin bool
}

// DefaultSettings returns default settings for FocusDeck.
func DefaultSettings() Settings {
	config := model.DefaultTimerConfig()
	return Settings{
		WorkMinutes:   config.WorkMinutes,
		BreakMinutes:  config.BreakMinutes,
		AutoRepeat:    config.AutoRepeat,
		LaunchAtLogin: false,
	}
}

// TimerConfig converts settings to the engine's config, clamped into the
// allowed ranges.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		WorkMinutes:  settings.WorkMinutes,
		BreakMinutes: settings.BreakMinutes,
		AutoRepeat:   settings.AutoRepeat,
	}.Clamp()
}

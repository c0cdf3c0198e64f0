package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"focusdeck/internal/core/model"
	"focusdeck/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes   int  `yaml:"work_minutes"`
	BreakMinutes  int  `yaml:"break_minutes"`
	AutoRepeat    bool `yaml:"auto_repeat"`
	LaunchAtLogin bool `yaml:"launch_at_login"`
}

// apply copies the file's values onto settings. Durations outside their
// allowed ranges are dropped in favor of what settings already holds;
// booleans are taken as-is.
func (fileData yamlSettings) apply(settings *preferences.Settings) {
	if fileData.WorkMinutes >= model.MinWorkMinutes && fileData.WorkMinutes <= model.MaxWorkMinutes {
		settings.WorkMinutes = fileData.WorkMinutes
	}
	if fileData.BreakMinutes >= model.MinBreakMinutes && fileData.BreakMinutes <= model.MaxBreakMinutes {
		settings.BreakMinutes = fileData.BreakMinutes
	}
	settings.AutoRepeat = fileData.AutoRepeat
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}

// LoadSettings reads user preferences from the app's YAML file. A missing
// file yields the defaults; a present but unreadable one yields the
// defaults alongside the error.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	path, err := settingsPath(appName)
	if err != nil {
		return settings, err
	}
	rawData, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("read %s: %w", settingsFileName, err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse %s: %w", settingsFileName, err)
	}
	fileData.apply(&settings)
	return settings, nil
}

// SaveSettings writes user preferences to the app's YAML file.
func SaveSettings(appName string, settings preferences.Settings) error {
	serialized, err := yaml.Marshal(yamlSettings{
		WorkMinutes:   settings.WorkMinutes,
		BreakMinutes:  settings.BreakMinutes,
		AutoRepeat:    settings.AutoRepeat,
		LaunchAtLogin: settings.LaunchAtLogin,
	})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", settingsFileName, err)
	}

	path, err := settingsPath(appName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", settingsFileName, err)
	}
	return nil
}

func settingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const desktopEntryTemplate = `[Desktop Entry]
Type=Application
Name=%s
Comment=Focus and break interval timer
Exec=%s
Terminal=false
X-GNOME-Autostart-enabled=true
`

func (service platformService) EnableAutostart(appName, execPath string) error {
	if execPath == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}
	entryPath, err := service.autostartEntryPath(appName)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(entryPath), 0o755); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := os.WriteFile(entryPath, []byte(desktopEntry(appName, execPath)), 0o644); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (service platformService) DisableAutostart(appName string) error {
	entryPath, err := service.autostartEntryPath(appName)
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := os.Remove(entryPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func (service platformService) autostartEntryPath(appName string) (string, error) {
	if strings.TrimSpace(appName) == "" {
		return "", fmt.Errorf("app name is empty")
	}
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", entryFileName(appName)), nil
}

// entryFileName slugs the app name into a .desktop file name.
func entryFileName(appName string) string {
	slug := strings.ToLower(strings.TrimSpace(appName))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "focusdeck"
	}
	return slug + ".desktop"
}

func desktopEntry(appName, execPath string) string {
	return fmt.Sprintf(desktopEntryTemplate, appName, quoteExecLine(execPath))
}

// quoteExecLine wraps paths containing spaces, as the Exec key requires.
func quoteExecLine(execPath string) string {
	if strings.Contains(execPath, " ") && !strings.HasPrefix(execPath, `"`) {
		return `"` + execPath + `"`
	}
	return execPath
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

//go:build darwin

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const launchAgentTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`

func (service platformService) EnableAutostart(appName, execPath string) error {
	if execPath == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}
	plistPath, err := agentPlistPath(appName)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(plistPath), 0o755); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	content := fmt.Sprintf(launchAgentTemplate, escapeXML(agentLabel(appName)), escapeXML(execPath))
	if err := os.WriteFile(plistPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (service platformService) DisableAutostart(appName string) error {
	plistPath, err := agentPlistPath(appName)
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := os.Remove(plistPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func agentPlistPath(appName string) (string, error) {
	if strings.TrimSpace(appName) == "" {
		return "", fmt.Errorf("app name is empty")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", agentLabel(appName)+".plist"), nil
}

// agentLabel slugs the app name into a reverse-DNS launchd label.
func agentLabel(appName string) string {
	slug := strings.ToLower(strings.TrimSpace(appName))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "focusdeck"
	}
	return "com.focusdeck." + slug
}

func escapeXML(value string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(value)
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}

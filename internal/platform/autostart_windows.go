//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service platformService) EnableAutostart(appName, execPath string) error {
	if strings.TrimSpace(appName) == "" {
		return fmt.Errorf("enable autostart: app name is empty")
	}
	if execPath == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}
	quoted := fmt.Sprintf(`"%s"`, strings.Trim(execPath, `"`))
	if err := runReg("add", registryRunKey, "/v", appName, "/t", "REG_SZ", "/d", quoted, "/f"); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (service platformService) DisableAutostart(appName string) error {
	if strings.TrimSpace(appName) == "" {
		return fmt.Errorf("disable autostart: app name is empty")
	}
	if err := runReg("delete", registryRunKey, "/v", appName, "/f"); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func runReg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s failed: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

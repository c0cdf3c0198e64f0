package platform

import (
	"fmt"
	"os"
)

// Service is the OS integration surface: config directory resolution and
// launch-at-login registration.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
}

// NewService returns the implementation for the current OS.
func NewService() Service {
	return platformService{}
}

type platformService struct{}

// GetConfigDir returns the OS-standard configuration directory, falling
// back to a conventional home-relative path when the OS lookup fails.
func (service platformService) GetConfigDir() (string, error) {
	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		return configDir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return fallbackConfigDir(homeDir), nil
}

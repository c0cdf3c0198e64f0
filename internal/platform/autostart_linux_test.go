//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEntryFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FocusDeck", "focusdeck.desktop"},
		{"Focus Deck", "focus-deck.desktop"},
		{"  FocusDeck  ", "focusdeck.desktop"},
		{"", "focusdeck.desktop"},
	}
	for _, tt := range tests {
		if got := entryFileName(tt.in); got != tt.want {
			t.Errorf("entryFileName(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDesktopEntryQuotesSpacedPaths(t *testing.T) {
	entry := desktopEntry("FocusDeck", "/opt/focus deck/focusdeck")
	if !strings.Contains(entry, `Exec="/opt/focus deck/focusdeck"`) {
		t.Fatalf("spaced path not quoted:\n%s", entry)
	}
	if !strings.Contains(entry, "Name=FocusDeck") {
		t.Fatalf("name missing:\n%s", entry)
	}

	plain := desktopEntry("FocusDeck", "/usr/bin/focusdeck")
	if !strings.Contains(plain, "Exec=/usr/bin/focusdeck\n") {
		t.Fatalf("plain path altered:\n%s", plain)
	}
}

func TestAutostartRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	service := NewService()

	if err := service.EnableAutostart("focusdeck-test", "/usr/bin/focusdeck"); err != nil {
		t.Fatalf("enable: %v", err)
	}

	configDir, err := service.GetConfigDir()
	if err != nil {
		t.Fatalf("config dir: %v", err)
	}
	entryPath := filepath.Join(configDir, "autostart", "focusdeck-test.desktop")
	if _, err := os.Stat(entryPath); err != nil {
		t.Fatalf("desktop entry not written: %v", err)
	}

	if err := service.DisableAutostart("focusdeck-test"); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if _, err := os.Stat(entryPath); !os.IsNotExist(err) {
		t.Fatalf("desktop entry still present after disable: %v", err)
	}

	// Disabling when nothing is installed is not an error.
	if err := service.DisableAutostart("focusdeck-test"); err != nil {
		t.Fatalf("double disable: %v", err)
	}

	if err := service.EnableAutostart("focusdeck-test", ""); err == nil {
		t.Fatal("empty exec path should be rejected")
	}
	if err := service.EnableAutostart("", "/usr/bin/focusdeck"); err == nil {
		t.Fatal("empty app name should be rejected")
	}
}

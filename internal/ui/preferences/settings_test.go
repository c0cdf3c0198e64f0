package preferences

import "testing"

func TestDefaultSettingsMatchDefaultConfig(t *testing.T) {
	settings := DefaultSettings()
	if settings.WorkMinutes != 25 || settings.BreakMinutes != 5 {
		t.Fatalf("defaults = %d/%d, want 25/5", settings.WorkMinutes, settings.BreakMinutes)
	}
	if settings.AutoRepeat || settings.LaunchAtLogin {
		t.Fatal("boolean defaults should be off")
	}
}

func TestTimerConfigClampsSettings(t *testing.T) {
	settings := Settings{WorkMinutes: 999, BreakMinutes: -3, AutoRepeat: true}
	config := settings.TimerConfig()
	if config.WorkMinutes != 60 || config.BreakMinutes != 1 {
		t.Fatalf("config = %d/%d, want clamped 60/1", config.WorkMinutes, config.BreakMinutes)
	}
	if !config.AutoRepeat {
		t.Fatal("auto-repeat lost in conversion")
	}
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"25", 25, true},
		{" 25 ", 25, true},
		{"1", 1, true},
		{"0", 0, false},
		{"-4", 0, false},
		{"", 0, false},
		{"ten", 0, false},
		{"2.5", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseMinutes(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseMinutes(%q) = %d/%v, want %d/%v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

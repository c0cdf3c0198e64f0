package model

import "time"

// Bounds for user-supplied interval lengths, in minutes.
const (
	MinWorkMinutes  = 1
	MaxWorkMinutes  = 60
	MinBreakMinutes = 1
	MaxBreakMinutes = 30
)

// TimerConfig defines one work/break cycle. A config is captured when a run
// starts and stays fixed for that run; starting again with a different
// config replaces it.
type TimerConfig struct {
	WorkMinutes  int  `json:"workDurationMinutes"`
	BreakMinutes int  `json:"breakDurationMinutes"`
	AutoRepeat   bool `json:"autoRepeat"`
}

// DefaultTimerConfig returns the stock 25/5 cycle without auto-repeat.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		WorkMinutes:  25,
		BreakMinutes: 5,
		AutoRepeat:   false,
	}
}

// Clamp forces both durations into their allowed ranges. Zero values (an
// unset config) clamp to the minimums, so callers that need defaults should
// start from DefaultTimerConfig instead.
func (config TimerConfig) Clamp() TimerConfig {
	config.WorkMinutes = clampInt(config.WorkMinutes, MinWorkMinutes, MaxWorkMinutes)
	config.BreakMinutes = clampInt(config.BreakMinutes, MinBreakMinutes, MaxBreakMinutes)
	return config
}

// Valid reports whether both durations are already inside their ranges.
func (config TimerConfig) Valid() bool {
	return config == config.Clamp()
}

// WorkSeconds returns the work phase length in whole seconds.
func (config TimerConfig) WorkSeconds() int {
	return config.WorkMinutes * 60
}

// BreakSeconds returns the break phase length in whole seconds.
func (config TimerConfig) BreakSeconds() int {
	return config.BreakMinutes * 60
}

// WorkDuration returns the work phase length as a time.Duration.
func (config TimerConfig) WorkDuration() time.Duration {
	return time.Duration(config.WorkMinutes) * time.Minute
}

// BreakDuration returns the break phase length as a time.Duration.
func (config TimerConfig) BreakDuration() time.Duration {
	return time.Duration(config.BreakMinutes) * time.Minute
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

package storage

import (
	"errors"
	"sync"

	"fyne.io/fyne/v2"
)

// ErrUnavailable reports a key/value store that cannot accept writes.
var ErrUnavailable = errors.New("key/value store is unavailable")

// KeyValue is the synchronous string store the timer persists through.
// Get reports absence via its second result.
type KeyValue interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string)
}

// Memory is an in-process KeyValue. It backs tests and serves as a
// fallback when no durable store is wired up.
type Memory struct {
	mu         sync.Mutex
	values     map[string]string
	failWrites bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// FailWrites toggles simulated write failures. While enabled every Set
// returns ErrUnavailable and stores nothing.
func (memory *Memory) FailWrites(fail bool) {
	memory.mu.Lock()
	defer memory.mu.Unlock()
	memory.failWrites = fail
}

func (memory *Memory) Get(key string) (string, bool) {
	memory.mu.Lock()
	defer memory.mu.Unlock()
	value, ok := memory.values[key]
	return value, ok
}

func (memory *Memory) Set(key, value string) error {
	memory.mu.Lock()
	defer memory.mu.Unlock()
	if memory.failWrites {
		return ErrUnavailable
	}
	memory.values[key] = value
	return nil
}

func (memory *Memory) Remove(key string) {
	memory.mu.Lock()
	defer memory.mu.Unlock()
	delete(memory.values, key)
}

// Len reports how many keys are stored.
func (memory *Memory) Len() int {
	memory.mu.Lock()
	defer memory.mu.Unlock()
	return len(memory.values)
}

// Prefs adapts the toolkit's per-app preferences store to KeyValue. Fyne
// reports a missing key as an empty string, so an empty value reads as
// absent; callers never store "".
type Prefs struct {
	preferences fyne.Preferences
}

// NewPrefs wraps a fyne preferences instance.
func NewPrefs(preferences fyne.Preferences) *Prefs {
	return &Prefs{preferences: preferences}
}

func (store *Prefs) Get(key string) (string, bool) {
	value := store.preferences.String(key)
	return value, value != ""
}

func (store *Prefs) Set(key, value string) error {
	store.preferences.SetString(key, value)
	return nil
}

func (store *Prefs) Remove(key string) {
	store.preferences.RemoveValue(key)
}

package storage

import (
	"encoding/json"
	"strconv"
	"time"

	"focusdeck/internal/core/model"
)

// Keys of the durable timer record. Each field is stored independently so
// a pause, which removes only the deadline, leaves a recognizable shape.
const (
	keyTimerConfig       = "timer.config"
	keyTimerEndTime      = "timer.endTime"
	keyTimerPhase        = "timer.phase"
	keyTimerTotalSeconds = "timer.totalSeconds"
)

// Record is the durable projection of a running timer: everything needed
// to reconstruct an interrupted countdown after a process restart.
type Record struct {
	Config       model.TimerConfig
	EndTime      time.Time
	Phase        string
	TotalSeconds int
}

// TimerStore persists timer state through a KeyValue substrate. A nil
// store, a nil substrate, or a substrate whose writes fail all degrade
// every method to a no-op: the timer keeps running in memory and simply
// loses durability.
type TimerStore struct {
	kv KeyValue
}

// NewTimerStore wraps a substrate. A nil substrate is allowed.
func NewTimerStore(kv KeyValue) *TimerStore {
	return &TimerStore{kv: kv}
}

// SaveRecord writes all four fields of an active run. The deadline is
// stored as epoch milliseconds, the config as JSON.
func (store *TimerStore) SaveRecord(record Record) {
	if store == nil || store.kv == nil {
		return
	}
	configJSON, _ := json.Marshal(record.Config)
	_ = store.kv.Set(keyTimerConfig, string(configJSON))
	_ = store.kv.Set(keyTimerEndTime, strconv.FormatInt(record.EndTime.UnixMilli(), 10))
	_ = store.kv.Set(keyTimerPhase, record.Phase)
	_ = store.kv.Set(keyTimerTotalSeconds, strconv.Itoa(record.TotalSeconds))
}

// RemoveEndTime drops only the deadline. The other fields stay behind, but
// recovery ignores a record without a deadline, so a paused run is not
// resumable across restarts.
func (store *TimerStore) RemoveEndTime() {
	if store == nil || store.kv == nil {
		return
	}
	store.kv.Remove(keyTimerEndTime)
}

// Clear removes the whole record.
func (store *TimerStore) Clear() {
	if store == nil || store.kv == nil {
		return
	}
	store.kv.Remove(keyTimerConfig)
	store.kv.Remove(keyTimerEndTime)
	store.kv.Remove(keyTimerPhase)
	store.kv.Remove(keyTimerTotalSeconds)
}

// LoadRecord reads the record back. The second result is false when the
// deadline is absent, any field fails to parse, or the stored config falls
// outside its allowed ranges.
func (store *TimerStore) LoadRecord() (Record, bool) {
	if store == nil || store.kv == nil {
		return Record{}, false
	}

	rawEndTime, ok := store.kv.Get(keyTimerEndTime)
	if !ok {
		return Record{}, false
	}
	endMillis, err := strconv.ParseInt(rawEndTime, 10, 64)
	if err != nil {
		return Record{}, false
	}

	rawPhase, ok := store.kv.Get(keyTimerPhase)
	if !ok || (rawPhase != "work" && rawPhase != "break") {
		return Record{}, false
	}

	rawTotal, ok := store.kv.Get(keyTimerTotalSeconds)
	if !ok {
		return Record{}, false
	}
	totalSeconds, err := strconv.Atoi(rawTotal)
	if err != nil || totalSeconds <= 0 {
		return Record{}, false
	}

	rawConfig, ok := store.kv.Get(keyTimerConfig)
	if !ok {
		return Record{}, false
	}
	var config model.TimerConfig
	if err := json.Unmarshal([]byte(rawConfig), &config); err != nil || !config.Valid() {
		return Record{}, false
	}

	return Record{
		Config:       config,
		EndTime:      time.UnixMilli(endMillis),
		Phase:        rawPhase,
		TotalSeconds: totalSeconds,
	}, true
}

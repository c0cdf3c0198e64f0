package storage

import (
	"testing"
	"time"

	"focusdeck/internal/core/model"
)

func sampleRecord() Record {
	return Record{
		Config:       model.TimerConfig{WorkMinutes: 25, BreakMinutes: 5, AutoRepeat: true},
		EndTime:      time.UnixMilli(1700000123456),
		Phase:        "work",
		TotalSeconds: 1500,
	}
}

func TestTimerStoreRoundTrip(t *testing.T) {
	kv := NewMemory()
	store := NewTimerStore(kv)

	want := sampleRecord()
	store.SaveRecord(want)

	got, ok := store.LoadRecord()
	if !ok {
		t.Fatal("LoadRecord reported absent after SaveRecord")
	}
	if got.Config != want.Config {
		t.Errorf("config = %+v, want %+v", got.Config, want.Config)
	}
	if !got.EndTime.Equal(want.EndTime) {
		t.Errorf("endTime = %v, want %v", got.EndTime, want.EndTime)
	}
	if got.Phase != want.Phase || got.TotalSeconds != want.TotalSeconds {
		t.Errorf("phase/total = %s/%d, want %s/%d",
			got.Phase, got.TotalSeconds, want.Phase, want.TotalSeconds)
	}
}

func TestTimerStoreRemoveEndTimeHidesRecord(t *testing.T) {
	kv := NewMemory()
	store := NewTimerStore(kv)
	store.SaveRecord(sampleRecord())

	store.RemoveEndTime()

	if _, ok := store.LoadRecord(); ok {
		t.Fatal("record without a deadline should load as absent")
	}
	if _, ok := kv.Get(keyTimerPhase); !ok {
		t.Error("RemoveEndTime should leave the phase field behind")
	}
	if _, ok := kv.Get(keyTimerTotalSeconds); !ok {
		t.Error("RemoveEndTime should leave the total field behind")
	}
}

func TestTimerStoreClear(t *testing.T) {
	kv := NewMemory()
	store := NewTimerStore(kv)
	store.SaveRecord(sampleRecord())

	store.Clear()

	if kv.Len() != 0 {
		t.Fatalf("store still holds %d keys after Clear", kv.Len())
	}
	if _, ok := store.LoadRecord(); ok {
		t.Fatal("LoadRecord reported a record after Clear")
	}
}

func TestTimerStoreMalformedFieldsLoadAsAbsent(t *testing.T) {
	base := sampleRecord()
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"endTime not numeric", keyTimerEndTime, "tomorrow"},
		{"phase unknown", keyTimerPhase, "lunch"},
		{"phase idle with deadline", keyTimerPhase, "idle"},
		{"total not numeric", keyTimerTotalSeconds, "many"},
		{"total zero", keyTimerTotalSeconds, "0"},
		{"total negative", keyTimerTotalSeconds, "-60"},
		{"config not json", keyTimerConfig, "{work:25"},
		{"config work minutes zero", keyTimerConfig, `{"workDurationMinutes":0,"breakDurationMinutes":5,"autoRepeat":true}`},
		{"config break minutes over range", keyTimerConfig, `{"workDurationMinutes":25,"breakDurationMinutes":90,"autoRepeat":false}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemory()
			store := NewTimerStore(kv)
			store.SaveRecord(base)
			if err := kv.Set(tt.key, tt.value); err != nil {
				t.Fatalf("seed corrupt field: %v", err)
			}
			if _, ok := store.LoadRecord(); ok {
				t.Error("corrupted record should load as absent")
			}
		})
	}
}

func TestTimerStoreMissingFieldLoadsAsAbsent(t *testing.T) {
	for _, key := range []string{keyTimerConfig, keyTimerPhase, keyTimerTotalSeconds} {
		kv := NewMemory()
		store := NewTimerStore(kv)
		store.SaveRecord(sampleRecord())
		kv.Remove(key)
		if _, ok := store.LoadRecord(); ok {
			t.Errorf("record missing %s should load as absent", key)
		}
	}
}

func TestTimerStoreDegradesSilently(t *testing.T) {
	var nilStore *TimerStore
	nilStore.SaveRecord(sampleRecord())
	nilStore.RemoveEndTime()
	nilStore.Clear()
	if _, ok := nilStore.LoadRecord(); ok {
		t.Error("nil store should report absence")
	}

	noSubstrate := NewTimerStore(nil)
	noSubstrate.SaveRecord(sampleRecord())
	noSubstrate.Clear()
	if _, ok := noSubstrate.LoadRecord(); ok {
		t.Error("store without a substrate should report absence")
	}

	kv := NewMemory()
	kv.FailWrites(true)
	failing := NewTimerStore(kv)
	failing.SaveRecord(sampleRecord())
	if kv.Len() != 0 {
		t.Errorf("failing substrate stored %d keys", kv.Len())
	}
	if _, ok := failing.LoadRecord(); ok {
		t.Error("nothing should be readable after failed writes")
	}
}

func TestMemoryFailWritesRecovers(t *testing.T) {
	kv := NewMemory()
	kv.FailWrites(true)
	if err := kv.Set("k", "v"); err == nil {
		t.Fatal("Set should fail while writes are disabled")
	}
	kv.FailWrites(false)
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set after re-enable: %v", err)
	}
	if value, ok := kv.Get("k"); !ok || value != "v" {
		t.Fatalf("Get = %q/%v, want v/true", value, ok)
	}
}

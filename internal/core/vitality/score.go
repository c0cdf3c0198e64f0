// Package vitality maintains the simulated energy score behind the
// dashboard's mood. Completed phases raise the score; inactivity drains
// it back toward depletion.
package vitality

import (
	"strconv"
	"sync"
	"time"

	"focusdeck/internal/storage"
)

// Band partitions the score range for display.
type Band string

const (
	BandDepleted Band = "depleted"
	BandStrained Band = "strained"
	BandSteady   Band = "steady"
	BandThriving Band = "thriving"
)

const (
	MinScore     = 0
	MaxScore     = 100
	DefaultScore = 50

	focusReward  = 8
	breakReward  = 3
	decayPerHour = 2
)

// Storage keys. The timestamp lets decay accumulate across restarts.
const (
	keyScore     = "vitality.score"
	keyUpdatedAt = "vitality.updatedAt"
)

// Tracker holds the persisted score. A nil or failing substrate degrades
// it to an in-memory score that starts at the default.
type Tracker struct {
	mu        sync.Mutex
	kv        storage.KeyValue
	score     int
	updatedAt time.Time
	now       func() time.Time
}

// NewTracker loads the persisted score, or starts at the default when the
// record is absent or unreadable.
func NewTracker(kv storage.KeyValue) *Tracker {
	tracker := &Tracker{
		kv:    kv,
		score: DefaultScore,
		now:   systemNow,
	}
	tracker.updatedAt = tracker.now()
	tracker.load()
	return tracker
}

// systemNow is the wall clock without the monotonic reading, which stops
// while the machine sleeps. Decay keeps accruing through a suspend.
func systemNow() time.Time { return time.Now().Round(0) }

func (tracker *Tracker) load() {
	if tracker.kv == nil {
		return
	}
	rawScore, ok := tracker.kv.Get(keyScore)
	if !ok {
		return
	}
	score, err := strconv.Atoi(rawScore)
	if err != nil || score < MinScore || score > MaxScore {
		return
	}
	rawUpdated, ok := tracker.kv.Get(keyUpdatedAt)
	if !ok {
		return
	}
	updatedMillis, err := strconv.ParseInt(rawUpdated, 10, 64)
	if err != nil {
		return
	}
	tracker.score = score
	tracker.updatedAt = time.UnixMilli(updatedMillis)
}

// Score returns the current value with the decay owed since the last
// reward applied. Reading never persists; decay is only materialized when
// a reward lands.
func (tracker *Tracker) Score() int {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.decayedLocked(tracker.now())
}

// Band returns the display band for the current score.
func (tracker *Tracker) Band() Band {
	return BandFor(tracker.Score())
}

// RecordFocus rewards a completed focus phase.
func (tracker *Tracker) RecordFocus() int {
	return tracker.reward(focusReward)
}

// RecordBreak rewards a completed break.
func (tracker *Tracker) RecordBreak() int {
	return tracker.reward(breakReward)
}

func (tracker *Tracker) reward(points int) int {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	now := tracker.now()
	tracker.score = clampScore(tracker.decayedLocked(now) + points)
	tracker.updatedAt = now
	tracker.persistLocked()
	return tracker.score
}

// decayedLocked applies the linear inactivity drain to the stored score.
func (tracker *Tracker) decayedLocked(now time.Time) int {
	elapsed := now.Sub(tracker.updatedAt)
	if elapsed <= 0 {
		return tracker.score
	}
	drained := int(elapsed.Hours() * decayPerHour)
	return clampScore(tracker.score - drained)
}

func (tracker *Tracker) persistLocked() {
	if tracker.kv == nil {
		return
	}
	_ = tracker.kv.Set(keyScore, strconv.Itoa(tracker.score))
	_ = tracker.kv.Set(keyUpdatedAt, strconv.FormatInt(tracker.updatedAt.UnixMilli(), 10))
}

// BandFor maps a score to its display band.
func BandFor(score int) Band {
	switch {
	case score < 25:
		return BandDepleted
	case score < 50:
		return BandStrained
	case score < 75:
		return BandSteady
	default:
		return BandThriving
	}
}

func clampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

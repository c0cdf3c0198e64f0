package focustimer

import (
	"sync"
	"time"

	"focusdeck/internal/core/model"
	"focusdeck/internal/storage"
)

// DefaultTickInterval is the scheduler granularity when none is configured.
const DefaultTickInterval = 100 * time.Millisecond

// Config contains runtime options for the Engine.
type Config struct {
	// TickInterval is how often the scheduler loop re-reads the clock.
	TickInterval time.Duration
	// Clock overrides the wall clock. Nil means the system clock.
	Clock Clock
	// OnComplete fires once per naturally completed phase, with the phase
	// that finished, before the switch into the next phase is applied. It
	// never fires for Skip, Pause or Reset, and it is called without the
	// engine lock held so the handler may query the engine.
	OnComplete func(Phase)
}

// Snapshot is a read-only view of the timer at one instant. EndTime is the
// zero time exactly when no deadline is armed (idle or paused); while the
// timer counts, RemainingSeconds is derived from EndTime rather than
// stored.
type Snapshot struct {
	Active           bool
	Paused           bool
	Phase            Phase
	TotalSeconds     int
	RemainingSeconds int
	EndTime          time.Time
	Config           model.TimerConfig
}

// Engine is the focus/break interval state machine. All methods are safe
// for concurrent use. The deadline is the single source of truth while
// counting: every read recomputes the remaining time from it.
type Engine struct {
	mu      sync.Mutex
	active  bool
	paused  bool
	phase   Phase
	total   int
	frozen  int
	endTime time.Time
	config  model.TimerConfig

	loop          *loopHandle
	lastRemaining int

	store   *storage.TimerStore
	options Config
	events  []chan Event
	closed  bool
}

// New creates an Engine and immediately attempts recovery: a persisted
// deadline still in the future reconstructs the interrupted countdown, an
// expired one is discarded and its record cleared, anything else (including
// the shape a paused timer leaves behind) starts idle.
func New(store *storage.TimerStore, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = DefaultTickInterval
	}
	if options.Clock == nil {
		options.Clock = SystemClock()
	}

	engine := &Engine{
		store:   store,
		options: options,
		phase:   PhaseIdle,
		config:  model.DefaultTimerConfig(),
	}
	engine.recover()
	return engine
}

func (engine *Engine) recover() {
	record, ok := engine.store.LoadRecord()
	if !ok {
		return
	}

	now := engine.options.Clock.Now()
	if !record.EndTime.After(now) {
		// The deadline passed while the process was down. The run is over;
		// no retroactive phase advance.
		engine.store.Clear()
		return
	}

	engine.mu.Lock()
	engine.active = true
	engine.paused = false
	engine.phase = Phase(record.Phase)
	engine.total = record.TotalSeconds
	engine.endTime = record.EndTime
	engine.config = record.Config
	engine.lastRemaining = engine.remainingLocked(now)
	engine.startLoopLocked()
	engine.mu.Unlock()
}

// Subscribe registers a new observer channel. Deliveries that would block
// are dropped; a slow consumer sees a thinner stream.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Start begins a fresh work phase under the supplied config, replacing any
// run already in progress. Validation belongs to the caller; whatever
// config arrives is used as-is.
func (engine *Engine) Start(config model.TimerConfig) {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.stopLoopLocked()

	now := engine.options.Clock.Now()
	engine.config = config
	engine.active = true
	engine.paused = false
	engine.phase = PhaseWork
	engine.total = config.WorkSeconds()
	engine.frozen = 0
	engine.endTime = now.Add(config.WorkDuration())
	engine.lastRemaining = engine.total
	engine.persistLocked()
	engine.startLoopLocked()
	event := engine.stateEventLocked(now)
	engine.mu.Unlock()

	engine.emit(event)
}

// Pause freezes the countdown. The remaining time is captured from the
// deadline, the deadline itself is dropped (in memory and in storage), and
// the scheduler stops. Pausing an idle or already paused timer is a no-op.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	if engine.closed || !engine.active || engine.paused {
		engine.mu.Unlock()
		return
	}
	now := engine.options.Clock.Now()
	engine.frozen = engine.remainingLocked(now)
	engine.paused = true
	engine.endTime = time.Time{}
	engine.stopLoopLocked()
	engine.store.RemoveEndTime()
	event := engine.stateEventLocked(now)
	engine.mu.Unlock()

	engine.emit(event)
}

// Resume re-arms the deadline from the frozen remainder, so exactly the
// time left at pause is left at resume. Resuming anything but a paused
// timer is a no-op.
func (engine *Engine) Resume() {
	engine.mu.Lock()
	if engine.closed || !engine.active || !engine.paused {
		engine.mu.Unlock()
		return
	}
	now := engine.options.Clock.Now()
	engine.paused = false
	engine.endTime = now.Add(time.Duration(engine.frozen) * time.Second)
	engine.lastRemaining = engine.frozen
	engine.frozen = 0
	engine.persistLocked()
	engine.startLoopLocked()
	event := engine.stateEventLocked(now)
	engine.mu.Unlock()

	engine.emit(event)
}

// Reset returns the timer to idle from any state and erases the durable
// record. Resetting an idle timer is a valid no-op.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	wasActive := engine.active
	engine.stopLoopLocked()
	engine.clearLocked()
	engine.store.Clear()
	if !wasActive {
		engine.mu.Unlock()
		return
	}
	event := engine.stateEventLocked(engine.options.Clock.Now())
	engine.mu.Unlock()

	engine.emit(event)
}

// Skip jumps to the next phase immediately, regardless of time left and of
// auto-repeat. The completion callback does not fire: skipping is not
// completing. A paused timer skips straight into the next phase unpaused.
// Skipping while idle is a no-op.
func (engine *Engine) Skip() {
	engine.mu.Lock()
	if engine.closed || !engine.active {
		engine.mu.Unlock()
		return
	}
	now := engine.options.Clock.Now()
	engine.advanceLocked(now)
	if engine.loop == nil {
		engine.startLoopLocked()
	}
	event := engine.stateEventLocked(now)
	engine.mu.Unlock()

	engine.emit(event)
}

// Snapshot returns the current state. The remaining time is recomputed
// from the deadline on every call.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked(engine.options.Clock.Now())
}

// Close stops the scheduler and closes every observer channel. The engine
// ignores all operations afterwards. The durable record is left untouched,
// so an active run at close time is recovered by the next New.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	engine.stopLoopLocked()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// completePhase applies the transition a naturally expired phase earned.
// The lock was released around the completion callback, so it re-verifies
// that the expired run it observed is still the installed one; a Start,
// Skip, Pause or Reset that won the race makes this a no-op.
func (engine *Engine) completePhase(handle *loopHandle, finished Phase) {
	engine.mu.Lock()
	if engine.closed || engine.loop != handle || !engine.active || engine.paused || engine.phase != finished {
		engine.mu.Unlock()
		return
	}
	now := engine.options.Clock.Now()
	if secondsUntil(now, engine.endTime) > 0 {
		engine.mu.Unlock()
		return
	}

	if !engine.config.AutoRepeat && finished == PhaseWork {
		// Single-shot session: the cycle ends here.
		engine.stopLoopLocked()
		engine.clearLocked()
		engine.store.Clear()
	} else {
		engine.advanceLocked(now)
	}
	event := engine.stateEventLocked(now)
	engine.mu.Unlock()

	engine.emit(event)
}

// advanceLocked flips work to break or break to work and arms the next
// deadline from the current instant.
func (engine *Engine) advanceLocked(now time.Time) {
	next := engine.phase.Next()
	total := engine.config.WorkSeconds()
	if next == PhaseBreak {
		total = engine.config.BreakSeconds()
	}
	engine.phase = next
	engine.total = total
	engine.paused = false
	engine.frozen = 0
	engine.endTime = now.Add(time.Duration(total) * time.Second)
	engine.lastRemaining = total
	engine.persistLocked()
}

func (engine *Engine) clearLocked() {
	engine.active = false
	engine.paused = false
	engine.phase = PhaseIdle
	engine.total = 0
	engine.frozen = 0
	engine.endTime = time.Time{}
	engine.lastRemaining = 0
}

func (engine *Engine) persistLocked() {
	engine.store.SaveRecord(storage.Record{
		Config:       engine.config,
		EndTime:      engine.endTime,
		Phase:        string(engine.phase),
		TotalSeconds: engine.total,
	})
}

func (engine *Engine) snapshotLocked(now time.Time) Snapshot {
	return Snapshot{
		Active:           engine.active,
		Paused:           engine.paused,
		Phase:            engine.phase,
		TotalSeconds:     engine.total,
		RemainingSeconds: engine.remainingLocked(now),
		EndTime:          engine.endTime,
		Config:           engine.config,
	}
}

// remainingLocked derives the remaining seconds for the current state:
// zero when idle, the frozen value when paused, otherwise the rounded-up
// distance to the deadline clamped into the phase length.
func (engine *Engine) remainingLocked(now time.Time) int {
	switch {
	case !engine.active:
		return 0
	case engine.paused:
		return engine.frozen
	default:
		remaining := secondsUntil(now, engine.endTime)
		if remaining > engine.total {
			remaining = engine.total
		}
		return remaining
	}
}

func (engine *Engine) stateEventLocked(now time.Time) Event {
	return Event{Type: EventStateChange, State: engine.snapshotLocked(now), At: now}
}

func (engine *Engine) emit(event Event) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.emitLocked(event)
}

func (engine *Engine) emitLocked(event Event) {
	events := append([]chan Event(nil), engine.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}

// secondsUntil converts a deadline into whole seconds, rounding up so a
// deadline one millisecond away still reads as a full second.
func secondsUntil(now, end time.Time) int {
	delta := end.Sub(now)
	if delta <= 0 {
		return 0
	}
	return int((delta + time.Second - 1) / time.Second)
}

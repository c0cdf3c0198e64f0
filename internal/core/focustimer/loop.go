package focustimer

import "time"

// loopHandle identifies one counting segment's scheduler goroutine. Every
// teardown replaces the handle, and a tick checks that its handle is still
// the installed one before touching state, so a tick that raced a stop can
// never mutate anything.
type loopHandle struct {
	stopCh chan struct{}
}

func (engine *Engine) startLoopLocked() {
	handle := &loopHandle{stopCh: make(chan struct{})}
	engine.loop = handle
	go engine.run(handle)
}

func (engine *Engine) stopLoopLocked() {
	if engine.loop == nil {
		return
	}
	close(engine.loop.stopCh)
	engine.loop = nil
}

func (engine *Engine) run(handle *loopHandle) {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-handle.stopCh:
			return
		case <-ticker.C:
			engine.tick(handle)
		}
	}
}

// tick is one scheduler pass: recompute the remaining time from the
// deadline, publish progress when the displayed value moved, and when the
// deadline has passed perform at most one completion transition. A tick
// never advances more than one phase, however late it is.
func (engine *Engine) tick(handle *loopHandle) {
	engine.mu.Lock()
	if engine.closed || engine.loop != handle || !engine.active || engine.paused {
		engine.mu.Unlock()
		return
	}

	now := engine.options.Clock.Now()
	remaining := secondsUntil(now, engine.endTime)
	if remaining > 0 {
		if remaining != engine.lastRemaining {
			engine.lastRemaining = remaining
			engine.emitLocked(Event{
				Type:  EventProgress,
				State: engine.snapshotLocked(now),
				At:    now,
			})
		}
		engine.mu.Unlock()
		return
	}

	finished := engine.phase
	onComplete := engine.options.OnComplete
	engine.mu.Unlock()

	// The callback observes the pre-transition state; the switch into the
	// next phase is applied afterwards.
	if onComplete != nil {
		onComplete(finished)
	}
	engine.completePhase(handle, finished)
}

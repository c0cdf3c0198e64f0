package focustimer

import "time"

// Clock supplies the engine's notion of now. Production code uses the
// system clock; tests substitute a manual one so countdowns are exact.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now returns the current time with the monotonic reading stripped.
// Deadlines are absolute wall-clock instants, and the monotonic clock
// stops while the machine sleeps; measuring against it would freeze the
// countdown across a suspend.
func (systemClock) Now() time.Time { return time.Now().Round(0) }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

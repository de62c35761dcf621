package keys

import "sync/atomic"

// Gate is the pressed/released signal shared between the listener and
// the audio callback: one atomic bit per control key, reduced with
// all-true. Each bit's zero value is released, so the gate reads as
// closed before the listener starts and keeps its last state after the
// listener stops.
type Gate struct {
	held []atomic.Bool
}

// NewGate returns a closed gate for n control keys.
func NewGate(n int) *Gate {
	return &Gate{held: make([]atomic.Bool, n)}
}

// Set records the press state of key i. Called from the listener
// thread only.
func (g *Gate) Set(i int, pressed bool) {
	g.held[i].Store(pressed)
}

// Open reports whether every control key is currently held. Safe to
// call from the audio callback: a handful of atomic loads, no locks.
func (g *Gate) Open() bool {
	for i := range g.held {
		if !g.held[i].Load() {
			return false
		}
	}
	return true
}

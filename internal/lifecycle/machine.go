package lifecycle

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrOutOfOrder is returned by Advance when the requested transition
// would repeat or rewind the lifecycle.
var ErrOutOfOrder = errors.New("lifecycle transition out of order")

// Hook observes successful state transitions.
type Hook func(from, to State)

// Machine tracks the lifecycle state of one application instance. The
// zero value is ready to use and starts at StateUninitialized.
//
// Advance is safe for concurrent use: for any target state exactly one
// caller wins the transition, which is how callers get run-once and
// cleanup-once semantics without additional locking.
type Machine struct {
	state atomic.Int32
	hook  Hook
}

// OnTransition registers a hook invoked after every successful Advance.
// Register before the machine is shared between goroutines.
func (m *Machine) OnTransition(hook Hook) {
	m.hook = hook
}

// State returns the current lifecycle state.
func (m *Machine) State() State {
	return State(m.state.Load())
}

// Advance moves the machine forward to the given state. Skipping
// intermediate states is allowed; staying put or moving backward is not.
func (m *Machine) Advance(to State) error {
	for {
		cur := m.state.Load()
		if State(cur) >= to {
			return fmt.Errorf("%w: cannot advance from %s to %s", ErrOutOfOrder, State(cur), to)
		}
		if m.state.CompareAndSwap(cur, int32(to)) {
			if m.hook != nil {
				m.hook(State(cur), to)
			}
			return nil
		}
	}
}

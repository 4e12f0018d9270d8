package lifecycle

import "fmt"

// State identifies a phase in the application lifecycle.
type State int32

const (
	// StateUninitialized is the zero value; no initialization has happened.
	StateUninitialized State = iota
	// StateInitialized means construction completed.
	StateInitialized
	// StateRunning means the run sequence is in progress.
	StateRunning
	// StateRan means the run sequence finished, successfully or not.
	StateRan
	// StateCleanedUp means cleanup has executed; the instance is spent.
	StateCleanedUp
)

// String returns the phase name used in log output.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateRan:
		return "ran"
	case StateCleanedUp:
		return "cleaned-up"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

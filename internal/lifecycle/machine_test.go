package lifecycle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_MachineAdvance(t *testing.T) {
	m := &Machine{}
	require.Equal(t, StateUninitialized, m.State())

	for _, next := range []State{StateInitialized, StateRunning, StateRan, StateCleanedUp} {
		require.NoError(t, m.Advance(next))
		require.Equal(t, next, m.State())
	}
}

func Test_MachineAdvance_SkipsStates(t *testing.T) {
	// Construct-then-close without running is a legal lifecycle.
	m := &Machine{}
	require.NoError(t, m.Advance(StateInitialized))
	require.NoError(t, m.Advance(StateCleanedUp))
	require.Equal(t, StateCleanedUp, m.State())
}

func Test_MachineAdvance_OutOfOrder(t *testing.T) {
	m := &Machine{}
	require.NoError(t, m.Advance(StateRunning))

	err := m.Advance(StateRunning)
	require.ErrorIs(t, err, ErrOutOfOrder, "repeating a state must fail")

	err = m.Advance(StateInitialized)
	require.ErrorIs(t, err, ErrOutOfOrder, "moving backward must fail")

	require.Equal(t, StateRunning, m.State(), "failed transitions must not change state")
}

func Test_MachineAdvance_CleanupWonOnce(t *testing.T) {
	m := &Machine{}
	require.NoError(t, m.Advance(StateInitialized))

	const callers = 16
	wins := make(chan struct{}, callers)

	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.Advance(StateCleanedUp) == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	require.Len(t, wins, 1, "exactly one caller may win the cleanup transition")
	require.Equal(t, StateCleanedUp, m.State())
}

func Test_MachineHook(t *testing.T) {
	type transition struct {
		from, to State
	}

	m := &Machine{}
	var seen []transition
	m.OnTransition(func(from, to State) {
		seen = append(seen, transition{from, to})
	})

	require.NoError(t, m.Advance(StateInitialized))
	require.NoError(t, m.Advance(StateRan))
	require.Error(t, m.Advance(StateRan))

	require.Equal(t, []transition{
		{StateUninitialized, StateInitialized},
		{StateInitialized, StateRan},
	}, seen, "hook must fire once per successful transition only")
}

func Test_StateString(t *testing.T) {
	cases := map[State]string{
		StateUninitialized: "uninitialized",
		StateInitialized:   "initialized",
		StateRunning:       "running",
		StateRan:           "ran",
		StateCleanedUp:     "cleaned-up",
		State(42):          "state(42)",
	}
	for state, want := range cases {
		require.Equal(t, want, state.String())
	}
}

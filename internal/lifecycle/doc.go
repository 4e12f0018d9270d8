// Package lifecycle enforces the linear phase ordering of a dockhand
// application instance: Uninitialized, Initialized, Running, Ran,
// CleanedUp.
//
// The Machine is a forward-only state machine. A transition may skip
// phases (an application constructed and immediately closed never enters
// Running) but can never repeat or move backward. That single rule is
// what guarantees cleanup executes exactly once per instance, however
// run and close interleave or fail.
package lifecycle

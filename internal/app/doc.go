// Package app implements the application lifecycle controller.
//
// An App is constructed in the Initialized state, runs a fixed demo
// sequence exactly once (two greetings, five numbered items, a
// completion message), and cleans up exactly once regardless of whether
// the run succeeded, failed, or never happened. Phase ordering is
// enforced by internal/lifecycle.
//
// The controller emits through two channels: a structured logger for
// the lifecycle narration and an io.Writer for the direct greeting
// output. Both are injectable, so tests can capture them byte for byte.
package app

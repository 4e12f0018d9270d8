package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/harborloft/dockhand/internal/lifecycle"
)

// demoItemCount is how many numbered items the demo sequence processes.
const demoItemCount = 5

// A Step is one unit of the demo sequence. Steps receive the owning App
// so they can use its greeting and logging capabilities.
type Step func(ctx context.Context, a *App) error

// Option configures an App at construction time.
type Option func(*App)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithOutput sets the direct output stream greetings are written to.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		if w != nil {
			a.out = w
		}
	}
}

// WithSteps replaces the demo sequence. The default sequence cannot
// fail; tests use this to inject failing or panicking steps.
func WithSteps(steps ...Step) Option {
	return func(a *App) {
		a.steps = steps
	}
}

// App owns the application lifecycle: it initializes on construction,
// runs the demo sequence once, and cleans up exactly once.
type App struct {
	logger *slog.Logger
	out    io.Writer
	steps  []Step
	state  lifecycle.Machine
}

// New constructs the controller and performs initialization. There are
// no failure modes; the returned App is in the Initialized state.
func New(opts ...Option) *App {
	a := &App{
		logger: slog.Default(),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.steps == nil {
		a.steps = defaultSteps()
	}

	a.state.OnTransition(func(from, to lifecycle.State) {
		a.logger.Debug("lifecycle transition", "from", from.String(), "to", to.String())
	})

	// The zero machine is Uninitialized, so this first advance cannot fail.
	_ = a.state.Advance(lifecycle.StateInitialized)
	a.logger.Info("Initializing application...")
	return a
}

// Run executes the demo sequence: the two fixed greetings, five
// numbered items, then a completion message. Run may be called once per
// instance; later attempts fail with lifecycle.ErrOutOfOrder.
func (a *App) Run(ctx context.Context) error {
	if err := a.state.Advance(lifecycle.StateRunning); err != nil {
		return err
	}
	// The run phase ends whether or not a step fails; only the
	// completion message is conditional on success.
	defer func() { _ = a.state.Advance(lifecycle.StateRan) }()

	a.logger.Info("Starting Go Docker application")

	for _, step := range a.steps {
		if err := step(ctx, a); err != nil {
			return err
		}
	}

	a.logger.Info("Application completed successfully")
	return nil
}

// Greet formats "Hello, {name}!" and emits it through both the logger
// and the direct output stream. The name is not validated; an empty
// string produces "Hello, !".
func (a *App) Greet(name string) {
	greeting := fmt.Sprintf("Hello, %s!", name)
	a.logger.Info(greeting)
	fmt.Fprintln(a.out, greeting)
}

// Close performs cleanup. It is safe to call multiple times and after a
// failed run; the cleanup work happens exactly once.
func (a *App) Close() error {
	if a.state.Advance(lifecycle.StateCleanedUp) != nil {
		// Already cleaned up; Close is idempotent.
		return nil
	}
	a.logger.Info("Cleaning up application...")
	return nil
}

// State reports the controller's current lifecycle state.
func (a *App) State() lifecycle.State {
	return a.state.State()
}

// defaultSteps returns the fixed demo sequence.
func defaultSteps() []Step {
	return []Step{
		func(_ context.Context, a *App) error {
			a.Greet("Docker World")
			a.Greet("Conan Package Manager")
			return nil
		},
		func(_ context.Context, a *App) error {
			return a.processItems(demoItemCount)
		},
	}
}

// processItems logs a numbered progress line for items 1 through count.
func (a *App) processItems(count int) error {
	for i := 1; i <= count; i++ {
		a.logger.Info(fmt.Sprintf("Processing item #%d", i))
	}
	return nil
}

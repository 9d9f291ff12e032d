// Package strata assembles applications from three kinds of parts:
// initializers that wire dependencies into the container, hosts that
// run until the application stops, and introspectors that observe the
// finished wiring.
//
// Components declare their needs through struct tags. A `resolve:""`
// field is satisfied from the dependency container by its type; a
// `config:"KEY"` field is satisfied from the global config provider,
// with an optional `default:"value"` fallback. Injection happens
// before Initialize or Run is called.
package strata

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/strataframe/strata/introspection"
	"golang.org/x/sync/errgroup"
)

// Initializer wires one concern during startup. Initialization is
// sequential in registration order; any error aborts the run before
// hosts start. An unresolvable contract or missing config key is a
// configuration error, surfaced here, never recovered at runtime.
type Initializer interface {
	Initialize(ctx context.Context) (context.Context, error)
}

// Host is a long-running component. Run blocks until the passed
// context is canceled or the host fails.
type Host interface {
	Run(ctx context.Context) error
}

// ReadinessChecker is optionally implemented by hosts that can report
// whether they are ready to serve.
type ReadinessChecker interface {
	IsReady(ctx context.Context) error
}

// Closer is optionally implemented by initializers holding resources
// that must be released on shutdown. Closers run after all hosts have
// returned, in reverse initialization order.
type Closer interface {
	Close()
}

// App is a buildable application: a sequence of initializers, a set of
// hosts, and introspectors observing the wiring.
type App struct {
	name          string
	initializers  []Initializer
	hosts         []Host
	introspectors []introspection.Introspector
	report        introspection.Report
}

// NewApp creates an empty application.
func NewApp() *App {
	return &App{}
}

// Named sets the application name used in introspection output.
func (a *App) Named(name string) *App {
	a.name = name
	return a
}

// Initialize appends initializers, run in order during startup.
func (a *App) Initialize(initializers ...Initializer) *App {
	a.initializers = append(a.initializers, initializers...)
	return a
}

// Host appends hosts, started after initialization completes.
func (a *App) Host(hosts ...Host) *App {
	a.hosts = append(a.hosts, hosts...)
	return a
}

// Introspect appends introspectors, invoked with the wiring report
// after all initializers have run.
func (a *App) Introspect(introspectors ...introspection.Introspector) *App {
	a.introspectors = append(a.introspectors, introspectors...)
	return a
}

// Run starts the application and blocks until all hosts return or the
// process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext is Run bound to an external context. Tests use it to
// drive the application lifecycle directly.
func (a *App) RunContext(ctx context.Context) error {
	a.report = introspection.Report{AppName: a.name}

	ctx, err := a.initialize(ctx)
	defer a.close()
	if err != nil {
		return err
	}

	// Hosts are injected before introspection so the report covers
	// the full wiring, but only started afterwards.
	for _, h := range a.hosts {
		component, err := injectFields(ctx, h)
		if err != nil {
			return fmt.Errorf("strata: host %s: %w", componentName(h), err)
		}
		component.Kind = introspection.ComponentKind_HOST
		a.report.Components = append(a.report.Components, component.Component)
		a.report.Configs = append(a.report.Configs, component.accesses...)
	}

	for _, in := range a.introspectors {
		if err := in.Introspect(ctx, a.report); err != nil {
			return fmt.Errorf("strata: introspection failed: %w", err)
		}
	}

	if len(a.hosts) == 0 {
		return nil
	}
	return a.runHosts(ctx)
}

// Report returns the wiring report of the last run.
func (a *App) Report() introspection.Report {
	return a.report
}

func (a *App) initialize(ctx context.Context) (context.Context, error) {
	for _, init := range a.initializers {
		component, err := injectFields(ctx, init)
		if err != nil {
			return ctx, fmt.Errorf("strata: initialize %s: %w", componentName(init), err)
		}
		component.Kind = introspection.ComponentKind_INITIALIZER
		a.report.Components = append(a.report.Components, component.Component)
		a.report.Configs = append(a.report.Configs, component.accesses...)

		ctx, err = init.Initialize(ctx)
		if err != nil {
			return ctx, fmt.Errorf("strata: initialize %s: %w", componentName(init), err)
		}
	}
	return ctx, nil
}

func (a *App) close() {
	for i := len(a.initializers) - 1; i >= 0; i-- {
		if closer, ok := a.initializers[i].(Closer); ok {
			closer.Close()
		}
	}
}

func (a *App) runHosts(parent context.Context) error {
	group, groupCtx := errgroup.WithContext(parent)
	for _, h := range a.hosts {
		h := h
		group.Go(func() error {
			return h.Run(groupCtx)
		})
	}
	return group.Wait()
}

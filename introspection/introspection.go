// Package introspection describes what happened while an application
// wired itself: which components ran, which contracts they resolved,
// and which configuration keys they read. Introspectors receive the
// report after initialization and may render or register it.
package introspection

import "context"

// ComponentKind distinguishes wiring components from hosted services.
type ComponentKind string

const (
	// ComponentKind_INITIALIZER marks a component that ran during startup wiring.
	ComponentKind_INITIALIZER ComponentKind = "INITIALIZER"
	// ComponentKind_HOST marks a long-running hosted component.
	ComponentKind_HOST ComponentKind = "HOST"
)

// ConfigAccess records a single configuration lookup.
type ConfigAccess struct {
	Key         string
	Value       string
	UsedDefault bool
}

// Component records one initializer or host and what it consumed.
type Component struct {
	Name       string
	Kind       ComponentKind
	Resolved   []string
	ConfigKeys []string
}

// Report is the full wiring record of an application run.
type Report struct {
	AppName    string
	Components []Component
	Configs    []ConfigAccess
}

// Introspector consumes a report after initialization completes.
type Introspector interface {
	Introspect(ctx context.Context, report Report) error
}

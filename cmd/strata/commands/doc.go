// Package commands defines the strata CLI.
//
// Commands
//
//   - feature  Generate the directory contract for a new feature
//   - check    Verify the layer discipline of a codebase
//
// The CLI is convention tooling: it owns the placement rules (where a
// feature's domain, usecases, data and presentation packages live) and
// the dependency-direction rules between them, so applications do not
// have to re-encode either.
package commands

// Package archcheck verifies the layer discipline of a codebase:
// presentation may depend on domain, data implements domain contracts,
// and domain depends on neither. Layers are recognized by path
// segment, matching the feature directory contract produced by the
// scaffolder.
package archcheck

import (
	"fmt"
	"sort"
	"strings"
)

// Layer names used by the default ruleset.
const (
	LayerDomain       = "domain"
	LayerUseCases     = "usecases"
	LayerData         = "data"
	LayerPresentation = "presentation"
)

// Ruleset binds path segments to layers and declares which cross-layer
// imports are allowed. Imports within the same layer are always
// allowed; packages not matching any segment are outside the rules.
type Ruleset struct {
	// Segments maps a package path segment to a layer name.
	Segments map[string]string
	// Allowed maps a layer to the layers it may import.
	Allowed map[string][]string
}

// Violation is one forbidden import edge.
type Violation struct {
	From      string
	FromLayer string
	To        string
	ToLayer   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s (%s) imports %s (%s)", v.From, v.FromLayer, v.To, v.ToLayer)
}

// Default returns the ruleset encoding the three-layer discipline:
// presentation -> usecases -> domain, data -> domain, and nothing
// points back up. The usecases layer is domain-owned and sits between
// presentation and domain.
func Default() Ruleset {
	return Ruleset{
		Segments: map[string]string{
			"domain":       LayerDomain,
			"usecases":     LayerUseCases,
			"data":         LayerData,
			"presentation": LayerPresentation,
		},
		Allowed: map[string][]string{
			LayerPresentation: {LayerUseCases, LayerDomain},
			LayerUseCases:     {LayerDomain},
			LayerData:         {LayerDomain},
			LayerDomain:       {},
		},
	}
}

// LayerOf returns the layer a package path belongs to. The last
// matching path segment wins, so "features/tasks/data" is data even if
// an ancestor directory matched another segment.
func (rs Ruleset) LayerOf(pkgPath string) (string, bool) {
	segments := strings.Split(pkgPath, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if layer, found := rs.Segments[segments[i]]; found {
			return layer, true
		}
	}
	return "", false
}

// Check walks an import graph (package path -> imported package paths)
// and returns every forbidden edge, sorted for stable output.
func (rs Ruleset) Check(graph map[string][]string) []Violation {
	var violations []Violation

	for from, imports := range graph {
		fromLayer, layered := rs.LayerOf(from)
		if !layered {
			continue
		}
		for _, to := range imports {
			toLayer, layered := rs.LayerOf(to)
			if !layered || toLayer == fromLayer {
				continue
			}
			if rs.allows(fromLayer, toLayer) {
				continue
			}
			violations = append(violations, Violation{
				From:      from,
				FromLayer: fromLayer,
				To:        to,
				ToLayer:   toLayer,
			})
		}
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].From != violations[j].From {
			return violations[i].From < violations[j].From
		}
		return violations[i].To < violations[j].To
	})
	return violations
}

func (rs Ruleset) allows(fromLayer, toLayer string) bool {
	for _, allowed := range rs.Allowed[fromLayer] {
		if allowed == toLayer {
			return true
		}
	}
	return false
}

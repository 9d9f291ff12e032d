package archcheck

import (
	"fmt"

	"golang.org/x/tools/go/packages"
)

// LoadGraph builds the import graph of the packages matching the given
// patterns (e.g. "./..."), rooted at dir. Only first-party imports are
// kept: edges into other modules carry no layering information.
func LoadGraph(dir string, patterns ...string) (map[string][]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedModule,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("archcheck: load packages: %w", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("archcheck: packages contained errors")
	}

	graph := map[string][]string{}
	for _, pkg := range pkgs {
		var modulePath string
		if pkg.Module != nil {
			modulePath = pkg.Module.Path
		}
		var imports []string
		for importPath := range pkg.Imports {
			if modulePath == "" || !hasPathPrefix(importPath, modulePath) {
				continue
			}
			imports = append(imports, importPath)
		}
		graph[pkg.PkgPath] = imports
	}
	return graph, nil
}

func hasPathPrefix(path, prefix string) bool {
	return path == prefix || (len(path) > len(prefix) && path[:len(prefix)] == prefix && path[len(prefix)] == '/')
}

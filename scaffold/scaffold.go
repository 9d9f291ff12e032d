// Package scaffold generates the feature directory contract: every
// feature lives under features/<name> with domain, usecases, data and
// presentation packages, so tooling (and archcheck) can rely on
// placement.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Feature describes one scaffolding request.
type Feature struct {
	// Root is the directory that holds (or will hold) the features tree,
	// usually <app>/internal.
	Root string
	// Name is the feature name in lower_snake_case.
	Name string
	// Entity is the primary entity name; defaults to the PascalCase
	// feature name.
	Entity string
	// Module is the import path of Root, used in generated imports.
	Module string
}

// Layer subdirectories generated for every feature.
var layerDirs = []string{"domain", "usecases", "data", "presentation"}

// Generate writes the feature skeleton and returns the created file
// paths. Existing files are never overwritten.
func Generate(feature Feature) ([]string, error) {
	if err := ValidateFeatureName(feature.Name); err != nil {
		return nil, err
	}
	if feature.Entity == "" {
		feature.Entity = PascalCase(feature.Name)
	}

	base := filepath.Join(feature.Root, "features", feature.Name)
	for _, dir := range layerDirs {
		if err := os.MkdirAll(filepath.Join(base, dir), 0o755); err != nil {
			return nil, fmt.Errorf("scaffold: create %s: %w", dir, err)
		}
	}

	data := templateData{
		Module:     feature.Module,
		Feature:    feature.Name,
		Entity:     feature.Entity,
		EntityFile: SnakeCase(feature.Entity),
		EntityVar:  CamelCase(feature.Entity),
	}

	var created []string
	for _, stub := range stubs {
		path := filepath.Join(base, stub.dir, stub.fileName(data))
		if _, err := os.Stat(path); err == nil {
			continue
		}
		content, err := render(stub.tmpl, data)
		if err != nil {
			return created, err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", path, err)
		}
		created = append(created, path)
	}
	return created, nil
}

type templateData struct {
	Module     string
	Feature    string
	Entity     string
	EntityFile string
	EntityVar  string
}

type stub struct {
	dir  string
	file string
	tmpl string
}

func (s stub) fileName(data templateData) string {
	return strings.ReplaceAll(s.file, "ENTITY", data.EntityFile)
}

func render(tmpl string, data templateData) (string, error) {
	t, err := template.New("stub").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("scaffold: parse template: %w", err)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("scaffold: render template: %w", err)
	}
	return b.String(), nil
}

var stubs = []stub{
	{
		dir:  "domain",
		file: "ENTITY.go",
		tmpl: `package domain

// {{.Entity}} is the core business entity of the {{.Feature}} feature.
// Entities are immutable values compared by structural equality and
// carry no serialization responsibility.
type {{.Entity}} struct {
	ID string
}

// Validate checks the entity's domain rules.
func ({{.EntityVar}} {{.Entity}}) Validate() error {
	return nil
}
`,
	},
	{
		dir:  "domain",
		file: "repository.go",
		tmpl: `package domain

import (
	"context"

	"github.com/strataframe/strata/result"
)

// {{.Entity}}Repository is the data-access contract of the {{.Feature}}
// feature. The data layer implements it; domain and presentation code
// depend only on this interface.
type {{.Entity}}Repository interface {
	Get{{.Entity}}(ctx context.Context, id string) result.Result[{{.Entity}}]
	List{{.Entity}}s(ctx context.Context) result.Result[[]{{.Entity}}]
	Save{{.Entity}}(ctx context.Context, {{.EntityVar}} {{.Entity}}) result.Result[{{.Entity}}]
	Delete{{.Entity}}(ctx context.Context, id string) result.Result[struct{}]
}
`,
	},
	{
		dir:  "usecases",
		file: "list_ENTITY.go",
		tmpl: `package usecases

import (
	"context"

	"github.com/strataframe/strata/depend"
	"github.com/strataframe/strata/result"

	"{{.Module}}/features/{{.Feature}}/domain"
)

// List{{.Entity}}s is the use case listing every {{.Entity}}.
type List{{.Entity}}s interface {
	Execute(ctx context.Context) result.Result[[]domain.{{.Entity}}]
}

// List{{.Entity}}sImpl is the implementation of the List{{.Entity}}s use case.
type List{{.Entity}}sImpl struct {
	repository domain.{{.Entity}}Repository
}

// NewList{{.Entity}}sImpl creates a new instance of List{{.Entity}}sImpl.
func NewList{{.Entity}}sImpl(repository domain.{{.Entity}}Repository) List{{.Entity}}sImpl {
	return List{{.Entity}}sImpl{repository: repository}
}

// Execute lists every {{.Entity}}.
func (uc List{{.Entity}}sImpl) Execute(ctx context.Context) result.Result[[]domain.{{.Entity}}] {
	return uc.repository.List{{.Entity}}s(ctx)
}

// InitList{{.Entity}}s registers the use case in the dependency container.
type InitList{{.Entity}}s struct {
	Repository domain.{{.Entity}}Repository ` + "`resolve:\"\"`" + `
}

// Initialize registers the List{{.Entity}}s use case.
func (i InitList{{.Entity}}s) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[List{{.Entity}}s](NewList{{.Entity}}sImpl(i.Repository))
	return ctx, nil
}
`,
	},
	{
		dir:  "data",
		file: "ENTITY_model.go",
		tmpl: `package data

import (
	"{{.Module}}/features/{{.Feature}}/domain"
)

// {{.Entity}}Model is the serializable shape of a {{.Entity}}, created
// when data crosses an external boundary and discarded once mapped to
// the entity.
type {{.Entity}}Model struct {
	ID string ` + "`json:\"id\"`" + `
}

// ToEntity maps the model to its domain entity.
func (m {{.Entity}}Model) ToEntity() domain.{{.Entity}} {
	return domain.{{.Entity}}{ID: m.ID}
}

// From{{.Entity}} maps a domain entity to its serializable model.
func From{{.Entity}}({{.EntityVar}} domain.{{.Entity}}) {{.Entity}}Model {
	return {{.Entity}}Model{ID: {{.EntityVar}}.ID}
}
`,
	},
	{
		dir:  "presentation",
		file: "ENTITY_controller.go",
		tmpl: `package presentation

import (
	"github.com/strataframe/strata/observe"
)

// {{.Entity}}State is the immutable view state rendered by the
// presentation layer. Both arms of every use-case result must be
// reflected here: either Items or ErrorMessage is populated.
type {{.Entity}}State struct {
	Loading      bool
	ErrorMessage string
}

// {{.Entity}}Controller exposes {{.Entity}}State as an observable
// value. Controllers are registered with the factory lifecycle: one
// instance per screen.
type {{.Entity}}Controller struct {
	State *observe.Value[{{.Entity}}State]
}

// New{{.Entity}}Controller creates a controller with empty state.
func New{{.Entity}}Controller() *{{.Entity}}Controller {
	return &{{.Entity}}Controller{State: observe.NewValue({{.Entity}}State{})}
}
`,
	},
}

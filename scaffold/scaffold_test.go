package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	root := t.TempDir()

	created, err := Generate(Feature{
		Root:   root,
		Name:   "packing_lists",
		Entity: "PackingList",
		Module: "example.com/app/internal",
	})
	require.NoError(t, err)

	base := filepath.Join(root, "features", "packing_lists")
	for _, dir := range []string{"domain", "usecases", "data", "presentation"} {
		info, err := os.Stat(filepath.Join(base, dir))
		require.NoError(t, err, "layer directory %s must exist", dir)
		assert.True(t, info.IsDir())
	}

	expectedFiles := []string{
		filepath.Join(base, "domain", "packing_list.go"),
		filepath.Join(base, "domain", "repository.go"),
		filepath.Join(base, "usecases", "list_packing_list.go"),
		filepath.Join(base, "data", "packing_list_model.go"),
		filepath.Join(base, "presentation", "packing_list_controller.go"),
	}
	assert.ElementsMatch(t, expectedFiles, created)

	entitySrc, err := os.ReadFile(filepath.Join(base, "domain", "packing_list.go"))
	require.NoError(t, err)
	assert.Contains(t, string(entitySrc), "type PackingList struct")

	usecaseSrc, err := os.ReadFile(filepath.Join(base, "usecases", "list_packing_list.go"))
	require.NoError(t, err)
	assert.Contains(t, string(usecaseSrc), `"example.com/app/internal/features/packing_lists/domain"`)
	assert.Contains(t, string(usecaseSrc), "depend.Register[ListPackingLists]")
}

func TestGenerate_DefaultEntity(t *testing.T) {
	root := t.TempDir()

	_, err := Generate(Feature{Root: root, Name: "tasks", Module: "example.com/app"})
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(root, "features", "tasks", "domain", "tasks.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "type Tasks struct")
}

func TestGenerate_NeverOverwrites(t *testing.T) {
	root := t.TempDir()
	feature := Feature{Root: root, Name: "tasks", Module: "example.com/app"}

	_, err := Generate(feature)
	require.NoError(t, err)

	entityPath := filepath.Join(root, "features", "tasks", "domain", "tasks.go")
	require.NoError(t, os.WriteFile(entityPath, []byte("// edited\n"), 0o644))

	created, err := Generate(feature)
	require.NoError(t, err)
	for _, path := range created {
		assert.NotEqual(t, entityPath, path)
	}

	src, err := os.ReadFile(entityPath)
	require.NoError(t, err)
	assert.Equal(t, "// edited\n", string(src))
}

func TestGenerate_RejectsBadNames(t *testing.T) {
	for _, name := range []string{"Tasks", "1tasks", "task-list", "task list", ""} {
		_, err := Generate(Feature{Root: t.TempDir(), Name: name})
		assert.Error(t, err, "name %q must be rejected", name)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"PackingList": "packing_list",
		"HTTPServer":  "http_server",
		"task":        "task",
		"TaskV2":      "task_v2",
		"sync-state":  "sync_state",
	}
	for in, expected := range tests {
		assert.Equal(t, expected, SnakeCase(in), "SnakeCase(%q)", in)
	}
}

func TestPascalCase(t *testing.T) {
	tests := map[string]string{
		"packing_list": "PackingList",
		"task":         "Task",
		"sync state":   "SyncState",
	}
	for in, expected := range tests {
		assert.Equal(t, expected, PascalCase(in), "PascalCase(%q)", in)
	}
}

func TestCamelCase(t *testing.T) {
	assert.Equal(t, "packingList", CamelCase("packing_list"))
	assert.Equal(t, "", CamelCase(""))
}

func TestValidateFeatureName(t *testing.T) {
	assert.NoError(t, ValidateFeatureName("packing_lists"))
	assert.NoError(t, ValidateFeatureName("tasks2"))
	assert.True(t, strings.Contains(ValidateFeatureName("BadName").Error(), "lower_snake_case"))
}

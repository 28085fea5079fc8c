package architecture_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const modulePath = "aihub-apidocs"

type layerRule struct {
	sourcePrefix string
	forbidden    []string
	hint         string
}

// Dependencies point inward: routers register into docsgen, docsgen drives
// the document model and renderers, commands sit on top, and pkg stays free
// of internal packages.
var rules = []layerRule{
	{
		sourcePrefix: modulePath + "/internal/docsgen/openapi",
		forbidden: []string{
			modulePath + "/internal/docsgen",
			modulePath + "/internal/routers",
			modulePath + "/cmd",
			modulePath + "/pkg",
		},
		hint: "the document model is a leaf",
	},
	{
		sourcePrefix: modulePath + "/internal/docsgen/markdown",
		forbidden: []string{
			modulePath + "/internal/docsgen",
			modulePath + "/internal/routers",
			modulePath + "/cmd",
		},
		hint: "renderers consume written artifacts, not the in-memory model",
	},
	{
		sourcePrefix: modulePath + "/internal/docsgen",
		forbidden: []string{
			modulePath + "/internal/routers",
			modulePath + "/cmd",
		},
		hint: "route tables register into docsgen, never the reverse",
	},
	{
		sourcePrefix: modulePath + "/internal/routers",
		forbidden: []string{
			modulePath + "/cmd",
			modulePath + "/pkg",
		},
		hint: "routers may depend on docsgen and the document model only",
	},
	{
		sourcePrefix: modulePath + "/pkg/apilint",
		forbidden: []string{
			modulePath + "/internal",
			modulePath + "/cmd",
		},
		hint: "pkg/apilint is importable by consumers and stays self-contained",
	},
}

func TestImportBoundaries(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	violations := make([]string, 0)
	fset := token.NewFileSet()

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if shouldSkipDir(d.Name()) && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		sourcePkg := packageImportPath(rel)
		rule, ok := findRule(sourcePkg)
		if !ok {
			return nil
		}

		parsed, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		require.NoErrorf(t, parseErr, "parse imports for %s", rel)

		for _, imp := range parsed.Imports {
			importPath := strings.Trim(imp.Path.Value, "\"")
			if !strings.HasPrefix(importPath, modulePath+"/") {
				continue
			}
			if violatesRule(importPath, rule.forbidden) {
				violations = append(violations,
					sourcePkg+" imports "+importPath+" via "+rel+"; allowed direction: "+rule.hint)
			}
		}
		return nil
	})
	require.NoError(t, err)

	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("%s", strings.Join(violations, "\n"))
	}
}

func shouldSkipDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata"
}

func packageImportPath(rel string) string {
	return modulePath + "/" + filepath.ToSlash(filepath.Dir(rel))
}

func findRule(sourcePkg string) (layerRule, bool) {
	for _, rule := range rules {
		if hasPathPrefix(sourcePkg, rule.sourcePrefix) {
			return rule, true
		}
	}
	return layerRule{}, false
}

func violatesRule(importPath string, forbidden []string) bool {
	for _, prefix := range forbidden {
		if hasPathPrefix(importPath, prefix) {
			return true
		}
	}
	return false
}

func hasPathPrefix(value, prefix string) bool {
	return value == prefix || strings.HasPrefix(value, prefix+"/")
}

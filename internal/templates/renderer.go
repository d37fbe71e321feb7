package templates

import (
	"bytes"
	"fmt"

	"github.com/opmodel/rcg/internal/output"
)

// componentData is the data passed to the component skeletons.
type componentData struct {
	Name       string
	Functional bool
	Native     bool
	TypeScript bool
	Props      bool
	Indent     string
}

// pathData is the data passed to the index and test skeletons.
type pathData struct {
	Name       string
	Path       string
	TypeScript bool
	Smoke      bool
}

// Render renders a component source file.
// The name is not validated; degenerate names yield malformed output.
func (c *Catalog) Render(req Request) string {
	sk, ok := skeletons[req.Kind]
	if !ok {
		sk = skeletons[Class]
	}

	data := componentData{
		Name:       Capitalize(req.Name),
		Functional: req.Kind == Functional,
		Native:     req.Platform == Native,
		TypeScript: req.Language == TypeScript,
		Props:      req.Props,
		Indent:     sk.indent,
	}

	output.Debug("rendering component",
		"name", data.Name,
		"skeleton", sk.template,
		"native", data.Native,
		"typescript", data.TypeScript,
		"props", data.Props)

	return c.execute(sk.template, data)
}

// RenderIndex renders a single re-export statement for a component.
// upperCase selects the capitalized name for the import path.
func (c *Catalog) RenderIndex(name string, upperCase bool) string {
	data := pathData{
		Name: Capitalize(name),
		Path: importPath(name, upperCase),
	}

	output.Debug("rendering index", "name", name, "path", data.Path)

	return c.execute("index", data)
}

// RenderFolderIndex renders one import per folder followed by a single
// aggregate export, both in input order.
func (c *Catalog) RenderFolderIndex(folders []string) string {
	output.Debug("rendering folder index", "folders", len(folders))

	return c.execute("folder-index", struct{ Folders []string }{Folders: folders})
}

// RenderTest renders a snapshot test stub for a component.
func (c *Catalog) RenderTest(req TestRequest) string {
	data := pathData{
		Name:       Capitalize(req.Name),
		Path:       importPath(req.Name, req.UpperCase),
		TypeScript: req.TypeScript,
		Smoke:      req.Smoke,
	}

	output.Debug("rendering test",
		"name", data.Name,
		"path", data.Path,
		"typescript", data.TypeScript,
		"smoke", data.Smoke)

	return c.execute("test", data)
}

// execute runs a named template that was verified at load time.
// The data types above cover every field the skeletons reference, so a
// failure here is a defect in the embedded skeletons.
func (c *Catalog) execute(name string, data any) string {
	var buf bytes.Buffer
	if err := c.set.ExecuteTemplate(&buf, name, data); err != nil {
		panic(fmt.Sprintf("templates: executing %s: %v", name, err))
	}
	return buf.String()
}

// importPath returns the path segment used to import a component.
func importPath(name string, upperCase bool) string {
	if upperCase {
		return Capitalize(name)
	}
	return name
}

// Render renders a component source file with the default catalog.
func Render(req Request) string {
	return defaultCatalog.Render(req)
}

// RenderIndex renders an index file with the default catalog.
func RenderIndex(name string, upperCase bool) string {
	return defaultCatalog.RenderIndex(name, upperCase)
}

// RenderFolderIndex renders a folder index with the default catalog.
func RenderFolderIndex(folders []string) string {
	return defaultCatalog.RenderFolderIndex(folders)
}

// RenderTest renders a test stub with the default catalog.
func RenderTest(req TestRequest) string {
	return defaultCatalog.RenderTest(req)
}

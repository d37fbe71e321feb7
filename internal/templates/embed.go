package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"text/template"
)

//go:embed skeletons/*.tmpl
var skeletonFS embed.FS

// skeleton is one entry of the component dispatch table.
type skeleton struct {
	// template is the named template holding the body.
	template string

	// indent prefixes every markup line inside the body.
	indent string
}

// skeletons maps a component kind to its body skeleton.
// Kinds missing from the table fall back to Class.
var skeletons = map[Kind]skeleton{
	Class:      {template: "class", indent: "      "},
	Functional: {template: "functional", indent: "    "},
}

// funcs are the helpers available to every skeleton.
var funcs = template.FuncMap{
	"join": strings.Join,
}

// Catalog holds the parsed skeleton set.
// It is immutable after construction and safe for concurrent use.
type Catalog struct {
	set *template.Template
}

// NewCatalog parses the embedded skeletons.
func NewCatalog() (*Catalog, error) {
	return loadCatalog(skeletonFS)
}

// loadCatalog parses every skeleton file found in fsys.
func loadCatalog(fsys fs.FS) (*Catalog, error) {
	set, err := template.New("catalog").
		Funcs(funcs).
		Option("missingkey=error").
		ParseFS(fsys, "skeletons/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing skeletons: %w", err)
	}

	for _, name := range requiredTemplates() {
		if set.Lookup(name) == nil {
			return nil, fmt.Errorf("skeleton %q not defined", name)
		}
	}

	return &Catalog{set: set}, nil
}

// requiredTemplates returns the named templates the renderer executes.
func requiredTemplates() []string {
	names := []string{"index", "folder-index", "test"}
	for _, s := range skeletons {
		names = append(names, s.template)
	}
	sort.Strings(names)
	return names
}

// defaultCatalog is parsed once at package init.
var defaultCatalog = mustCatalog()

func mustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the shared catalog built from the embedded skeletons.
func Default() *Catalog {
	return defaultCatalog
}

// ListSkeletons returns the defined template names, sorted.
func (c *Catalog) ListSkeletons() []string {
	var names []string
	for _, t := range c.set.Templates() {
		name := t.Name()
		// Skip file-level templates and the empty root.
		if name == "catalog" || strings.HasSuffix(name, ".tmpl") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

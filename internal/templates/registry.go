package templates

import "fmt"

// DefaultDocumentName is the document rendered when no kind is requested.
const DefaultDocumentName = "component"

// Document describes one kind of document the catalog can render.
type Document struct {
	// Name is the document identifier (component, index, folder-index, test).
	Name string

	// Description explains what the rendered file contains.
	Description string

	// Default marks the document rendered when none is named.
	Default bool

	// Variants lists the request fields that change the output.
	Variants []string
}

// documents is the internal registry of renderable documents.
var documents = map[string]Document{
	"component": {
		Name:        "component",
		Description: "Class or functional component source file",
		Default:     true,
		Variants:    []string{"kind", "platform", "language", "props"},
	},
	"index": {
		Name:        "index",
		Description: "Barrel file re-exporting a component's default export",
		Variants:    []string{"upperCase"},
	},
	"folder-index": {
		Name:        "folder-index",
		Description: "Barrel file importing and re-exporting a list of folders",
	},
	"test": {
		Name:        "test",
		Description: "Snapshot test stub, optionally with a smoke assertion",
		Variants:    []string{"upperCase", "typescript", "smoke"},
	},
}

// GetDocument returns a document by name.
// Returns an error if the document is not found.
func GetDocument(name string) (Document, error) {
	d, ok := documents[name]
	if !ok {
		return Document{}, fmt.Errorf("unknown document %q; valid documents: component, index, folder-index, test", name)
	}
	return d, nil
}

// Documents returns all renderable documents.
func Documents() []Document {
	return []Document{
		documents["component"],
		documents["index"],
		documents["folder-index"],
		documents["test"],
	}
}

// DefaultDocument returns the default document.
func DefaultDocument() Document {
	return documents[DefaultDocumentName]
}

// DocumentNames returns all document names.
func DocumentNames() []string {
	return []string{"component", "index", "folder-index", "test"}
}

package templates

import (
	"fmt"
	"regexp"
)

// identifierRegex matches an ASCII JavaScript identifier.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// ValidateComponentName checks that name yields a legal component symbol
// once capitalized. The renderer never calls it.
func ValidateComponentName(name string) error {
	if name == "" {
		return fmt.Errorf("component name cannot be empty")
	}

	symbol := Capitalize(name)
	if !identifierRegex.MatchString(symbol) {
		return fmt.Errorf("invalid component name %q: must start with a letter, underscore or $ and contain only letters, digits, underscores and $", name)
	}

	return nil
}

// ValidateIdentifier checks that name can be used verbatim as an import
// binding, as folder names are in a folder index.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier cannot be empty")
	}

	if !identifierRegex.MatchString(name) {
		return fmt.Errorf("invalid identifier %q: must start with a letter, underscore or $ and contain only letters, digits, underscores and $", name)
	}

	if isReservedWord(name) {
		return fmt.Errorf("invalid identifier %q: cannot use reserved word", name)
	}

	return nil
}

// isReservedWord checks if a name is a JavaScript reserved word.
func isReservedWord(name string) bool {
	reserved := map[string]bool{
		"await":      true,
		"break":      true,
		"case":       true,
		"catch":      true,
		"class":      true,
		"const":      true,
		"continue":   true,
		"debugger":   true,
		"default":    true,
		"delete":     true,
		"do":         true,
		"else":       true,
		"enum":       true,
		"export":     true,
		"extends":    true,
		"false":      true,
		"finally":    true,
		"for":        true,
		"function":   true,
		"if":         true,
		"implements": true,
		"import":     true,
		"in":         true,
		"instanceof": true,
		"interface":  true,
		"let":        true,
		"new":        true,
		"null":       true,
		"package":    true,
		"private":    true,
		"protected":  true,
		"public":     true,
		"return":     true,
		"static":     true,
		"super":      true,
		"switch":     true,
		"this":       true,
		"throw":      true,
		"true":       true,
		"try":        true,
		"typeof":     true,
		"var":        true,
		"void":       true,
		"while":      true,
		"with":       true,
		"yield":      true,
	}
	return reserved[name]
}

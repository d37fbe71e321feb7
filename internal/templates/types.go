// Package templates renders component boilerplate documents from embedded
// text templates.
package templates

import (
	"fmt"
	"strings"
)

// Kind selects the component body skeleton.
type Kind string

const (
	// Class renders a class extending the framework's base component.
	Class Kind = "class"

	// Functional renders a zero-argument arrow function component.
	Functional Kind = "functional"
)

// Platform selects the UI framework flavour.
type Platform string

const (
	// Web targets react-dom markup (<div>).
	Web Platform = "web"

	// Native targets react-native primitives (<View>, <Text>).
	Native Platform = "native"
)

// Language selects the source language of the rendered document.
type Language string

const (
	// JavaScript renders plain JSX with default imports.
	JavaScript Language = "js"

	// TypeScript renders TSX with namespace imports and typed generics.
	TypeScript Language = "ts"
)

// Request describes a component document.
// The zero value of each enum selects its default (class, web, js).
type Request struct {
	// Name is the raw component name. It is capitalized for symbols.
	Name string

	// Kind selects the class or functional skeleton.
	Kind Kind

	// Platform selects web or native markup and imports.
	Platform Platform

	// Language selects JavaScript or TypeScript output.
	Language Language

	// Props appends an empty prop-types block (JS) or props interface (TS).
	Props bool
}

// TestRequest describes a test stub document.
type TestRequest struct {
	// Name is the raw component name.
	Name string

	// UpperCase imports the component from the capitalized path.
	UpperCase bool

	// TypeScript switches React imports to namespace imports.
	TypeScript bool

	// Smoke appends a mount/unmount assertion.
	Smoke bool
}

// ValidKinds returns all valid kind names.
func ValidKinds() []string {
	return []string{string(Class), string(Functional)}
}

// ValidPlatforms returns all valid platform names.
func ValidPlatforms() []string {
	return []string{string(Web), string(Native)}
}

// ValidLanguages returns all valid language names.
func ValidLanguages() []string {
	return []string{string(JavaScript), string(TypeScript)}
}

// ParseKind parses a kind name. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "class":
		return Class, nil
	case "functional", "function", "fc":
		return Functional, nil
	default:
		return "", fmt.Errorf("unknown component kind %q; valid kinds: %s", s, strings.Join(ValidKinds(), ", "))
	}
}

// ParsePlatform parses a platform name. Matching is case-insensitive.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "web", "dom":
		return Web, nil
	case "native", "react-native":
		return Native, nil
	default:
		return "", fmt.Errorf("unknown platform %q; valid platforms: %s", s, strings.Join(ValidPlatforms(), ", "))
	}
}

// ParseLanguage parses a language name. Matching is case-insensitive.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "js", "javascript", "jsx":
		return JavaScript, nil
	case "ts", "typescript", "tsx":
		return TypeScript, nil
	default:
		return "", fmt.Errorf("unknown language %q; valid languages: %s", s, strings.Join(ValidLanguages(), ", "))
	}
}

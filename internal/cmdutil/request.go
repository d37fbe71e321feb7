package cmdutil

import (
	"fmt"
	"strings"

	"github.com/opmodel/rcg/internal/config"
	oerrors "github.com/opmodel/rcg/internal/errors"
	"github.com/opmodel/rcg/internal/output"
	"github.com/opmodel/rcg/internal/templates"
)

// ComponentRequest builds a component request from resolved settings.
// An unknown enum value returns an *ExitError with ExitValidationError.
func ComponentRequest(name string, r *config.ResolvedConfig) (templates.Request, error) {
	kind, err := templates.ParseKind(r.Kind.Value)
	if err != nil {
		return templates.Request{}, enumError(err, "kind", r.Kind, templates.ValidKinds())
	}

	platform, err := templates.ParsePlatform(r.Platform.Value)
	if err != nil {
		return templates.Request{}, enumError(err, "platform", r.Platform, templates.ValidPlatforms())
	}

	lang, err := templates.ParseLanguage(r.Language.Value)
	if err != nil {
		return templates.Request{}, enumError(err, "language", r.Language, templates.ValidLanguages())
	}

	return templates.Request{
		Name:     name,
		Kind:     kind,
		Platform: platform,
		Language: lang,
		Props:    r.Props.Value,
	}, nil
}

// TestRequest builds a test stub request from resolved settings.
// typeScript, when non-nil, overrides the resolved language.
func TestRequest(name string, typeScript *bool, r *config.ResolvedConfig) (templates.TestRequest, error) {
	var ts bool
	if typeScript != nil {
		ts = *typeScript
	} else {
		lang, err := templates.ParseLanguage(r.Language.Value)
		if err != nil {
			return templates.TestRequest{}, enumError(err, "language", r.Language, templates.ValidLanguages())
		}
		ts = lang == templates.TypeScript
	}

	return templates.TestRequest{
		Name:       name,
		UpperCase:  r.UpperCase.Value,
		TypeScript: ts,
		Smoke:      r.Smoke.Value,
	}, nil
}

// enumError reports an unknown enum value together with where it came from.
func enumError(err error, field string, v config.Resolved[string], valid []string) error {
	detail := &oerrors.DetailError{
		Type:    "validation failed",
		Message: err.Error(),
		Field:   field,
		Context: map[string]string{"source": string(v.Source)},
		Hint:    fmt.Sprintf("Valid values: %s.", strings.Join(valid, ", ")),
		Cause:   oerrors.ErrValidation,
	}
	return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: detail}
}

// CheckName runs check against name. A failure is logged as a warning, or
// returned as an *ExitError when strict is set.
func CheckName(name string, strict bool, check func(string) error) error {
	err := check(name)
	if err == nil {
		return nil
	}

	if strict {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: oerrors.NewValidationError(err.Error(), "", "name",
				"Rename it, or drop --strict to render it anyway."),
		}
	}

	output.Warn(output.StyleWarning.Render("rendering anyway"), "name", name, "reason", err)
	return nil
}

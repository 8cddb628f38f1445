package spec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NikitaCOEUR/termsuggest/internal/derrors"
)

// Validate checks the structural invariants of a spec.
// All violations are returned joined; each one is a *derrors.ValidationError.
func (s *Spec) Validate() error {
	var errs []error

	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, derrors.NewValidationError("name", "spec name is empty", nil))
	}

	for i, arg := range s.Args {
		errs = append(errs, validateArg(fmt.Sprintf("args[%d]", i), arg)...)
	}

	seen := make(map[string]string)
	for i, opt := range s.Options {
		field := fmt.Sprintf("options[%d]", i)

		if len(opt.Names) == 0 {
			errs = append(errs, derrors.NewValidationError(field+".name", "option has no tokens", nil))
		}
		for _, name := range opt.Names {
			if strings.TrimSpace(name) == "" {
				errs = append(errs, derrors.NewValidationError(field+".name", "option token is empty", nil))
				continue
			}
			if prev, dup := seen[name]; dup {
				errs = append(errs, derrors.NewValidationError(field+".name",
					fmt.Sprintf("token %q already declared by %s", name, prev), nil))
				continue
			}
			seen[name] = field
		}

		if strings.TrimSpace(opt.Description) == "" {
			errs = append(errs, derrors.NewValidationError(field+".description",
				fmt.Sprintf("option %s has no description", strings.Join(opt.Names, ", ")), nil))
		}

		for j, arg := range opt.Args {
			errs = append(errs, validateArg(fmt.Sprintf("%s.args[%d]", field, j), arg)...)
		}
	}

	return errors.Join(errs...)
}

func validateArg(field string, arg Arg) []error {
	var errs []error

	for i, s := range arg.Suggestions {
		if s.Name == "" {
			errs = append(errs, derrors.NewValidationError(
				fmt.Sprintf("%s.suggestions[%d]", field, i), "suggestion name is empty", nil))
		}
	}

	for i, g := range arg.Generators {
		genField := fmt.Sprintf("%s.generators[%d]", field, i)
		switch {
		case g.IsScript() && len(g.Template) > 0:
			errs = append(errs, derrors.NewValidationError(genField, "generator sets both script and template", nil))
		case g.IsScript():
			if g.Script[0] == "" {
				errs = append(errs, derrors.NewValidationError(genField+".script", "generator program name is empty", nil))
			}
			if g.PostProcess == nil {
				errs = append(errs, derrors.NewValidationError(genField, "script generator has no post-process function", nil))
			}
		case len(g.Template) == 0:
			errs = append(errs, derrors.NewValidationError(genField, "generator has neither script nor template", nil))
		}
	}

	return errs
}

package cli

import (
	"errors"
	"fmt"

	"github.com/NikitaCOEUR/termsuggest/internal/config"
	"github.com/NikitaCOEUR/termsuggest/internal/derrors"
	"github.com/NikitaCOEUR/termsuggest/internal/specs/code"
)

// ValidateParams contains parameters for the Validate command
type ValidateParams struct {
	CommonParams
}

// Validate checks a configuration file and the spec it produces
func Validate(params ValidateParams) error {
	out := params.stdout()

	configPath := params.ConfigPath
	if configPath == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return err
		}
		configPath = found
	}

	result := &config.ValidationResult{Valid: true}
	program := config.Defaults().Program

	if configPath == "" {
		_, _ = fmt.Fprintln(out, "No config file found, checking built-in defaults")
	} else {
		_, _ = fmt.Fprintf(out, "Validating: %s\n", configPath)

		var err error
		result, err = config.Validate(configPath)
		if err != nil {
			return err
		}
		if result.Valid {
			if cfg, err := config.New().Load(configPath); err == nil {
				program = cfg.Program
			}
		}
	}
	if params.Program != "" {
		program = params.Program
	}

	if err := code.NewSpec(program).Validate(); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, specErrors(err)...)
	}

	if result.Valid {
		_, _ = fmt.Fprintln(out, "✅ Configuration is valid!")
		return nil
	}

	_, _ = fmt.Fprintln(out, "❌ Configuration has errors:")
	for i, validationErr := range result.Errors {
		_, _ = fmt.Fprintf(out, "%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}
	_, _ = fmt.Fprintf(out, "\nFound %d error(s)\n", len(result.Errors))

	return fmt.Errorf("validation failed")
}

// specErrors flattens a joined spec validation error into result entries
func specErrors(err error) []config.ValidationError {
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}

	out := make([]config.ValidationError, 0, len(errs))
	for _, e := range errs {
		var vErr *derrors.ValidationError
		if errors.As(e, &vErr) {
			out = append(out, config.ValidationError{Field: "spec." + vErr.Field, Message: vErr.Error()})
			continue
		}
		out = append(out, config.ValidationError{Field: "spec", Message: e.Error()})
	}
	return out
}

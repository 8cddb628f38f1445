package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/NikitaCOEUR/termsuggest/internal/render"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) fail(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Validate validates a config file: syntax and schema first, then the loaded values
func Validate(path string) (*ValidationResult, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	result, err := ValidateWithSchema(path, content)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return result, nil
	}

	cfg, err := New().Load(path)
	if err != nil {
		result.fail("syntax", fmt.Sprintf("Failed to parse config: %v", err))
		return result, nil
	}

	for _, e := range cfg.Check() {
		result.fail(e.Field, e.Message)
	}
	return result, nil
}

// Check reports values that parse but cannot work
func (c *Config) Check() []ValidationError {
	var errs []ValidationError
	add := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(c.Program) == "" {
		add("program", "Program name is empty")
	}
	if c.Generator.Timeout < 0 {
		add("generator.timeout", "Timeout must not be negative (got %s)", c.Generator.Timeout)
	}
	if c.Generator.MaxOutput < 0 {
		add("generator.max_output", "Output cap must not be negative (got %d)", c.Generator.MaxOutput)
	}
	if c.Cache.TTL < 0 {
		add("cache.ttl", "Cache TTL must not be negative (got %s)", c.Cache.TTL)
	}
	if _, err := render.NewPrinter(c.Output.Format, c.Output.Template); err != nil {
		field := "output.format"
		if c.Output.Format == render.FormatTemplate {
			field = "output.template"
		}
		add(field, "%v", err)
	} else if c.Output.Template != "" {
		if _, err := render.NewTemplate(c.Output.Template); err != nil {
			add("output.template", "%v", err)
		}
	}

	return errs
}

// Package derrors provides typed errors for termsuggest.
// Each error carries a stable code so callers can branch without matching strings.
package derrors

import (
	"errors"
	"fmt"
	"strings"
)

// Error is implemented by every termsuggest error
type Error interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all termsuggest errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ConfigurationError represents errors in configuration files
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{code: "CONFIG_ERROR", message: message, cause: cause},
		Path:      path,
	}
}

// ExecutionError represents a generator command that could not produce output
type ExecutionError struct {
	baseError
	Argv []string
}

// NewExecutionError creates a new execution error
func NewExecutionError(argv []string, message string, cause error) *ExecutionError {
	return &ExecutionError{
		baseError: baseError{code: "EXEC_ERROR", message: message, cause: cause},
		Argv:      append([]string(nil), argv...),
	}
}

// Command returns the argument vector joined for display
func (e *ExecutionError) Command() string {
	return strings.Join(e.Argv, " ")
}

// ValidationError represents a spec or configuration field that breaks an invariant
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{code: "VALIDATION_ERROR", message: message, cause: cause},
		Field:     field,
	}
}

// CacheError represents errors in the captured-output cache
type CacheError struct {
	baseError
	Path string
}

// NewCacheError creates a new cache error
func NewCacheError(path string, message string, cause error) *CacheError {
	return &CacheError{
		baseError: baseError{code: "CACHE_ERROR", message: message, cause: cause},
		Path:      path,
	}
}

// NotFoundError represents errors when a resource is not found
type NotFoundError struct {
	baseError
	Resource string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, message string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{code: "NOT_FOUND", message: message},
		Resource:  resource,
	}
}

// CodeOf returns the code of the first termsuggest error in err's chain, or "" if there is none
func CodeOf(err error) string {
	var e Error
	if errors.As(err, &e) {
		return e.Code()
	}
	return ""
}

package schema

import (
	"fmt"
	"strings"
)

// MissingError reports a required variable that is unset or empty.
type MissingError struct {
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s is missing", e.Name)
}

// InvalidError reports a variable whose value cannot be coerced to its type.
type InvalidError struct {
	Name  string // Variable name
	Value string // Raw value as found in the environment
	Type  string // Name of the expected type
	Err   error  // Underlying coercion failure
}

func (e *InvalidError) Error() string {
	msg := fmt.Sprintf("%s with value %q is not a valid %s", e.Name, e.Value, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidError) Unwrap() error { return e.Err }

// ConfigurationError aggregates every failure of a validation run.
// It is only returned by Require and Result.Err.
type ConfigurationError struct {
	Groups []string
	Errors []error
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d variable(s) missing or invalid for group(s) %s:", len(e.Errors), strings.Join(e.Groups, ", "))
	for _, err := range e.Errors {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() []error { return e.Errors }

// Missing returns the names of variables that were not set.
func (e *ConfigurationError) Missing() []string {
	var names []string
	for _, err := range e.Errors {
		if m, ok := err.(*MissingError); ok {
			names = append(names, m.Name)
		}
	}
	return names
}

// Invalid returns the invalid-value failures.
func (e *ConfigurationError) Invalid() []*InvalidError {
	var out []*InvalidError
	for _, err := range e.Errors {
		if inv, ok := err.(*InvalidError); ok {
			out = append(out, inv)
		}
	}
	return out
}

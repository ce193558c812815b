package config

import (
	"fmt"
	"strings"

	"github.com/deppfellow/signup/internal/errs"
)

// ValidationError lists the config fields that failed struct-tag validation.
type ValidationError struct {
	Fields []errs.FieldError
	err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("config validation failed: %v", e.err)
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Error)
	}
	return "config validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

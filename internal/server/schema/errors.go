package schema

import "strings"

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects field errors in the order they were found.
// Error returns the first message, which is what a form shows inline.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError returns a ValidationError holding a single field error.
func NewValidationError(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

func (v *ValidationError) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

func (v *ValidationError) HasErrors() bool { return len(v.Fields) > 0 }

func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}
	return v.Fields[0].Message
}

// Map returns field -> message, keeping the first message per field.
func (v *ValidationError) Map() map[string]string {
	out := make(map[string]string, len(v.Fields))
	for _, f := range v.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}

// String lists every message, one per line.
func (v *ValidationError) String() string {
	msgs := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return strings.Join(msgs, "\n")
}

// OrNil returns v when it holds errors and nil otherwise, so callers can
// write `return verr.OrNil()` without leaking a typed nil.
func (v *ValidationError) OrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/adminpanel/internal/server/schema"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields under their json names so that errors line up
// with the form keys the client sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages overrides the generic message for a field and rule.
var fieldMessages = map[string]string{
	"full_name.required":       "Name is required",
	"full_name.min":            "Name must be at least 2 characters",
	"email.required":           "Invalid email address",
	"email.email":              "Invalid email address",
	"password.min":             "Password must be at least 6 characters",
	"new_password.min":         "Password must be at least 6 characters",
	"confirm_password.eqfield": "Passwords don't match",
	"title.required":           "Title is required",
	"path.required":            "Path is required",
	"display_order.gte":        "Display order must be 0 or greater",
}

// validateForm runs the validate tags of form and returns a
// *schema.ValidationError with one entry per failing field, in field order.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var failed validator.ValidationErrors
	if !errors.As(err, &failed) {
		return fmt.Errorf("validate form: %w", err)
	}
	verr := &schema.ValidationError{}
	for _, fe := range failed {
		verr.Add(fe.Field(), fieldMessage(fe))
	}
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return fmt.Sprintf("%s does not match", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// optional returns nil for a blank string and a pointer to the trimmed value
// otherwise.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

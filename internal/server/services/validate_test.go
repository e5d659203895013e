package services

import (
	"testing"

	"github.com/dmitrijs2005/adminpanel/internal/server/schema"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateForm_TranslatesFieldErrors(t *testing.T) {
	type form struct {
		Name    string `json:"name" validate:"required"`
		Code    string `json:"code" validate:"max=3"`
		Kind    string `json:"kind" validate:"oneof=a b"`
		Count   int    `json:"count" validate:"gte=1"`
		Ignored string `json:"-"`
	}

	err := validateForm(form{Code: "abcd", Kind: "c"})
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)

	want := []schema.FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "code", Message: "code must be at most 3 characters"},
		{Field: "kind", Message: "kind must be one of a, b"},
		{Field: "count", Message: "count must be 1 or greater"},
	}
	if diff := cmp.Diff(want, verr.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}

	assert.NoError(t, validateForm(form{Name: "x", Code: "ab", Kind: "b", Count: 2}))
}

func TestValidateForm_PasswordConfirmation(t *testing.T) {
	err := validateForm(passwordForm{NewPassword: "secret1", ConfirmPassword: "secret2"})
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"confirm_password": "Passwords don't match"}, verr.Map())

	assert.NoError(t, validateForm(passwordForm{NewPassword: "secret1", ConfirmPassword: "secret1"}))
}

func TestValidateForm_TrimsBeforeChecking(t *testing.T) {
	err := MenuItemInput{Title: "   ", Path: " /x "}.Validate()
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"title": "Title is required"}, verr.Map())

	err = EmployeeInput{FullName: " A ", Email: " ann@corp.io "}.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"full_name": "Name must be at least 2 characters"}, verr.Map())
}

func TestValidateForm_RejectsNonStruct(t *testing.T) {
	err := validateForm("not a form")
	require.Error(t, err)
	_, isForm := err.(*schema.ValidationError)
	assert.False(t, isForm)
}

package services

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func newEmployeeService(t *testing.T) (*EmployeeService, *fakeEmployees) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	return NewEmployeeService(db, rm), rm.employees
}

func TestFilterEmployees(t *testing.T) {
	list := []*models.Employee{
		{ID: "1", FullName: "Ann Lee", Email: "ann@corp.io", Department: strp("Sales")},
		{ID: "2", FullName: "Bob Stone", Email: "bob@corp.io"},
		{ID: "3", FullName: "Cy Twombly", Email: "cy@art.io", Department: strp("Design")},
	}

	ids := func(es []*models.Employee) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterEmployees(list, "")))
	assert.Equal(t, []string{"1"}, ids(FilterEmployees(list, "  ANN ")))
	assert.Equal(t, []string{"1", "2"}, ids(FilterEmployees(list, "corp")))
	assert.Equal(t, []string{"3"}, ids(FilterEmployees(list, "design")))
	assert.Empty(t, FilterEmployees(list, "zzz"))
}

func TestEmployeeInput_Validate(t *testing.T) {
	ok := EmployeeInput{FullName: "Ann Lee", Email: "ann@corp.io"}
	assert.NoError(t, ok.Validate())

	bad := EmployeeInput{
		FullName:   "A",
		Email:      "not-an-email",
		Position:   strings.Repeat("p", 101),
		Department: strings.Repeat("d", 101),
		Phone:      strings.Repeat("1", 21),
	}
	err := bad.Validate()
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	m := verr.Map()
	assert.Equal(t, "Name must be at least 2 characters", m["full_name"])
	assert.Equal(t, "Invalid email address", m["email"])
	assert.Contains(t, m, "position")
	assert.Contains(t, m, "department")
	assert.Contains(t, m, "phone")
	assert.Equal(t, "Name must be at least 2 characters", verr.Error())

	long := EmployeeInput{FullName: strings.Repeat("n", 101), Email: "a@b.io"}
	require.ErrorAs(t, long.Validate(), &verr)
	assert.Contains(t, verr.Map(), "full_name")
}

func TestEmployeeService_List(t *testing.T) {
	s, repo := newEmployeeService(t)
	repo.list = []*models.Employee{{ID: "1", FullName: "Ann"}, {ID: "2", FullName: "Bob"}}

	got, err := s.List(context.Background(), "bo")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	repo.err = errBoom
	_, err = s.List(context.Background(), "")
	assert.ErrorIs(t, err, errBoom)
}

func TestEmployeeService_CreateBlankOptionalsAreNull(t *testing.T) {
	s, repo := newEmployeeService(t)

	e, err := s.Create(context.Background(), EmployeeInput{FullName: " Ann Lee ", Email: "ann@corp.io", Position: " ", Phone: "123"})
	require.NoError(t, err)
	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, "Ann Lee", repo.created.FullName)
	assert.Nil(t, repo.created.Position)
	assert.Nil(t, repo.created.Department)
	assert.Equal(t, "123", *repo.created.Phone)
}

func TestEmployeeService_CreateInvalidSkipsStore(t *testing.T) {
	s, repo := newEmployeeService(t)

	_, err := s.Create(context.Background(), EmployeeInput{})
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Nil(t, repo.created)
}

func TestEmployeeService_Update(t *testing.T) {
	s, repo := newEmployeeService(t)

	_, err := s.Update(context.Background(), "7", EmployeeInput{FullName: "Ann Lee", Email: "ann@corp.io"})
	require.NoError(t, err)
	assert.Equal(t, "7", repo.updated.ID)

	repo.err = common.ErrorNotFound
	_, err = s.Update(context.Background(), "7", EmployeeInput{FullName: "Ann Lee", Email: "ann@corp.io"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestEmployeeService_DeleteRequiresConfirmation(t *testing.T) {
	s, repo := newEmployeeService(t)

	err := s.Delete(context.Background(), "7", false)
	assert.ErrorIs(t, err, common.ErrorConfirmationRequired)
	assert.Empty(t, repo.deleted)

	require.NoError(t, s.Delete(context.Background(), "7", true))
	assert.Equal(t, []string{"7"}, repo.deleted)

	repo.deleteErr = errBoom
	err = s.Delete(context.Background(), "8", true)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "error deleting employee")
}

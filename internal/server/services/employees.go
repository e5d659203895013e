package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/repomanager"
)

// EmployeeInput is the employee form.
type EmployeeInput struct {
	FullName   string `json:"full_name" validate:"min=2,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Position   string `json:"position" validate:"max=100"`
	Department string `json:"department" validate:"max=100"`
	Phone      string `json:"phone" validate:"max=20"`
}

// Validate checks the form and returns a *schema.ValidationError listing
// every failing field.
func (in EmployeeInput) Validate() error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	return validateForm(in)
}

func (in EmployeeInput) model(id string) *models.Employee {
	return &models.Employee{
		ID:         id,
		FullName:   strings.TrimSpace(in.FullName),
		Email:      strings.TrimSpace(in.Email),
		Position:   optional(in.Position),
		Department: optional(in.Department),
		Phone:      optional(in.Phone),
	}
}

// EmployeeService manages the employee directory.
type EmployeeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEmployeeService(db *sql.DB, m repomanager.RepositoryManager) *EmployeeService {
	return &EmployeeService{db: db, repomanager: m}
}

// List returns every employee, newest first, narrowed by search.
func (s *EmployeeService) List(ctx context.Context, search string) ([]*models.Employee, error) {
	list, err := s.repomanager.Employees(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading employees: %w", err)
	}
	return FilterEmployees(list, search), nil
}

// FilterEmployees keeps employees whose name, email or department contains
// query, ignoring case. An empty query keeps everything.
func FilterEmployees(list []*models.Employee, query string) []*models.Employee {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]*models.Employee, 0, len(list))
	for _, e := range list {
		if q == "" ||
			strings.Contains(strings.ToLower(e.FullName), q) ||
			strings.Contains(strings.ToLower(e.Email), q) ||
			strings.Contains(strings.ToLower(deref(e.Department)), q) {
			out = append(out, e)
		}
	}
	return out
}

func (s *EmployeeService) Create(ctx context.Context, in EmployeeInput) (*models.Employee, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	e, err := s.repomanager.Employees(s.db).Create(ctx, in.model(""))
	if err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}
	return e, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, in EmployeeInput) (*models.Employee, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	e, err := s.repomanager.Employees(s.db).Update(ctx, in.model(id))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating employee: %w", err)
	}
	return e, nil
}

// Delete removes employee id. Without confirmed nothing is sent to the
// database and common.ErrorConfirmationRequired is returned.
func (s *EmployeeService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return common.ErrorConfirmationRequired
	}
	if err := s.repomanager.Employees(s.db).Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting employee: %w", err)
	}
	return nil
}

// Package employees persists the employee directory.
package employees

import (
	"context"

	"github.com/dmitrijs2005/adminpanel/internal/server/models"
)

type Repository interface {
	// List returns all employees, newest first.
	List(ctx context.Context) ([]*models.Employee, error)
	Get(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, e *models.Employee) (*models.Employee, error)
	Update(ctx context.Context, e *models.Employee) (*models.Employee, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

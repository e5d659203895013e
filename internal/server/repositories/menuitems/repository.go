// Package menuitems persists configurable navigation entries.
package menuitems

import (
	"context"

	"github.com/dmitrijs2005/adminpanel/internal/server/models"
)

type Repository interface {
	// List returns all items ordered by display_order.
	List(ctx context.Context) ([]*models.MenuItem, error)
	// ListVisible returns active items whose visible_to_roles contains role.
	ListVisible(ctx context.Context, role string) ([]*models.MenuItem, error)
	Create(ctx context.Context, m *models.MenuItem) (*models.MenuItem, error)
	Update(ctx context.Context, m *models.MenuItem) (*models.MenuItem, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// Package profiles persists the public account data shown on the users and
// profile pages.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/adminpanel/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Profile) (*models.Profile, error)
	Get(ctx context.Context, id string) (*models.Profile, error)
	// List returns all profiles, newest first.
	List(ctx context.Context) ([]*models.Profile, error)
	Update(ctx context.Context, id string, fullName, email string) (*models.Profile, error)
	SetActive(ctx context.Context, id string, active bool) error
	SetAvatarURL(ctx context.Context, id string, url string) error
	Count(ctx context.Context) (int64, error)
}

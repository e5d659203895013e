package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/navigation"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/adminpanel/internal/server/session"
)

// MenuItemInput is the menu configuration form. The two visibility switches
// are folded into visible_to_roles on save.
type MenuItemInput struct {
	Title          string `json:"title" validate:"required,max=100"`
	Description    string `json:"description" validate:"max=200"`
	Icon           string `json:"icon" validate:"max=50"`
	Path           string `json:"path" validate:"required,max=100"`
	DisplayOrder   int    `json:"display_order" validate:"gte=0"`
	IsActive       bool   `json:"is_active"`
	VisibleToAdmin bool   `json:"visible_to_admin"`
	VisibleToUser  bool   `json:"visible_to_user"`
}

func (in MenuItemInput) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Path = strings.TrimSpace(in.Path)
	return validateForm(in)
}

// Roles returns the roles selected by the visibility switches.
func (in MenuItemInput) Roles() []string {
	out := []string{}
	if in.VisibleToAdmin {
		out = append(out, common.RoleAdmin)
	}
	if in.VisibleToUser {
		out = append(out, common.RoleUser)
	}
	return out
}

func (in MenuItemInput) model(id string) *models.MenuItem {
	return &models.MenuItem{
		ID:             id,
		Title:          strings.TrimSpace(in.Title),
		Description:    optional(in.Description),
		Icon:           optional(in.Icon),
		Path:           strings.TrimSpace(in.Path),
		DisplayOrder:   in.DisplayOrder,
		IsActive:       in.IsActive,
		VisibleToRoles: in.Roles(),
	}
}

// MenuService manages configurable menu entries and builds the sidebar.
type MenuService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMenuService(db *sql.DB, m repomanager.RepositoryManager) *MenuService {
	return &MenuService{db: db, repomanager: m}
}

// List returns every menu item ordered by display order.
func (s *MenuService) List(ctx context.Context) ([]*models.MenuItem, error) {
	items, err := s.repomanager.MenuItems(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading menu items: %w", err)
	}
	return items, nil
}

func (s *MenuService) Create(ctx context.Context, in MenuItemInput) (*models.MenuItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m, err := s.repomanager.MenuItems(s.db).Create(ctx, in.model(""))
	if err != nil {
		return nil, fmt.Errorf("error creating menu item: %w", err)
	}
	return m, nil
}

func (s *MenuService) Update(ctx context.Context, id string, in MenuItemInput) (*models.MenuItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m, err := s.repomanager.MenuItems(s.db).Update(ctx, in.model(id))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating menu item: %w", err)
	}
	return m, nil
}

// Delete removes menu item id once confirmed.
func (s *MenuService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return common.ErrorConfirmationRequired
	}
	if err := s.repomanager.MenuItems(s.db).Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting menu item: %w", err)
	}
	return nil
}

// Sidebar returns the navigation shown to sess while on currentPath.
func (s *MenuService) Sidebar(ctx context.Context, sess *session.Session, currentPath string) (*navigation.Sidebar, error) {
	return navigation.Build(ctx, s.repomanager.MenuItems(s.db), sess, currentPath)
}

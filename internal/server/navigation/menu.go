// Package navigation decides which pages a session may open and what the
// sidebar shows.
package navigation

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/session"
)

// Item is one sidebar entry.
type Item struct {
	Title     string `json:"title"`
	Path      string `json:"path"`
	Icon      string `json:"icon,omitempty"`
	AdminOnly bool   `json:"admin_only"`
	Active    bool   `json:"active"`
}

// StaticItems is the built-in sidebar in display order.
var StaticItems = []Item{
	{Title: "Dashboard", Path: "/dashboard", Icon: "layout-dashboard"},
	{Title: "Employees", Path: "/employees", Icon: "users", AdminOnly: true},
	{Title: "Users", Path: "/users", Icon: "user-cog", AdminOnly: true},
	{Title: "Menu Config", Path: "/menu-config", Icon: "settings", AdminOnly: true},
	{Title: "Area", Path: "/area", Icon: "map"},
	{Title: "Award", Path: "/award", Icon: "award"},
	{Title: "Profile", Path: "/profile", Icon: "user"},
}

// Menu returns the static items s may see. The item whose path equals
// currentPath exactly is marked active.
func Menu(s *session.Session, currentPath string) []Item {
	out := make([]Item, 0, len(StaticItems))
	for _, it := range StaticItems {
		if it.AdminOnly && !s.IsAdmin() {
			continue
		}
		it.Active = it.Path == currentPath
		out = append(out, it)
	}
	return out
}

// ConfiguredSource lists admin-managed menu entries visible to a role, ordered
// by display order.
type ConfiguredSource interface {
	ListVisible(ctx context.Context, role string) ([]*models.MenuItem, error)
}

// Sidebar is the full navigation payload for a session.
type Sidebar struct {
	Items      []Item `json:"items"`
	Configured []Item `json:"configured"`
}

// Build combines the static menu with the configured entries visible to the
// session's role.
func Build(ctx context.Context, src ConfiguredSource, s *session.Session, currentPath string) (*Sidebar, error) {
	sb := &Sidebar{Items: Menu(s, currentPath), Configured: []Item{}}
	if src == nil || s == nil {
		return sb, nil
	}

	items, err := src.ListVisible(ctx, s.Role)
	if err != nil {
		return nil, fmt.Errorf("error listing menu items: %w", err)
	}
	for _, m := range items {
		it := Item{Title: m.Title, Path: m.Path, Active: m.Path == currentPath}
		if m.Icon != nil {
			it.Icon = *m.Icon
		}
		sb.Configured = append(sb.Configured, it)
	}
	return sb, nil
}

package models

import (
	"slices"
	"time"
)

// MenuItem is a configurable navigation entry. VisibleToRoles lists the
// roles allowed to see it.
type MenuItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	Icon           *string   `json:"icon"`
	Path           string    `json:"path"`
	DisplayOrder   int       `json:"display_order"`
	IsActive       bool      `json:"is_active"`
	VisibleToRoles []string  `json:"visible_to_roles"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// VisibleTo reports whether role may see the item.
func (m *MenuItem) VisibleTo(role string) bool {
	return slices.Contains(m.VisibleToRoles, role)
}

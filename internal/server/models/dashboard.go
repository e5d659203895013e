package models

// DashboardStats holds row counts shown on the dashboard. Employees and
// Users are nil when the viewer is not an admin.
type DashboardStats struct {
	Employees *int64 `json:"employees,omitempty"`
	Users     *int64 `json:"users,omitempty"`
	MenuItems int64  `json:"menu_items"`
}

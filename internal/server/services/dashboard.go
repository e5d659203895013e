package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/adminpanel/internal/server/session"
)

// DashboardService computes the landing page counters.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

// Stats counts menu items for everyone and employees and users for admins.
func (s *DashboardService) Stats(ctx context.Context, sess *session.Session) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	n, err := s.repomanager.MenuItems(s.db).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting menu items: %w", err)
	}
	stats.MenuItems = n

	if !sess.IsAdmin() {
		return stats, nil
	}

	employees, err := s.repomanager.Employees(s.db).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting employees: %w", err)
	}
	users, err := s.repomanager.Profiles(s.db).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}
	stats.Employees = &employees
	stats.Users = &users
	return stats, nil
}

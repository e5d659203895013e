package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/dbx"
	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/roles"
)

// AccountInput is the "create user" form of the users page.
type AccountInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"min=6"`
	FullName string `json:"full_name" validate:"min=2,max=100"`
	Role     string `json:"role" validate:"oneof=admin user"`
}

func (in AccountInput) Validate() error {
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	return validateForm(in)
}

type roleForm struct {
	Role string `json:"role" validate:"oneof=admin user"`
}

// UserService backs the admin users page.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// List joins every profile, newest first, with its effective role and
// narrows the result by search.
func (s *UserService) List(ctx context.Context, search string) ([]*models.UserWithRole, error) {
	profiles, err := s.repomanager.Profiles(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading profiles: %w", err)
	}
	assigned, err := s.repomanager.Roles(s.db).ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading roles: %w", err)
	}

	out := make([]*models.UserWithRole, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, &models.UserWithRole{Profile: *p, Role: roles.Resolve(assigned[p.ID])})
	}
	return FilterUsers(out, search), nil
}

// FilterUsers keeps users whose name or email contains query, ignoring case.
func FilterUsers(list []*models.UserWithRole, query string) []*models.UserWithRole {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := make([]*models.UserWithRole, 0, len(list))
	for _, u := range list {
		if strings.Contains(strings.ToLower(deref(u.FullName)), q) ||
			strings.Contains(strings.ToLower(deref(u.Email)), q) {
			out = append(out, u)
		}
	}
	return out
}

// SetActive activates or deactivates an account. Deactivated accounts can no
// longer sign in or refresh their tokens.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.repomanager.Profiles(s.db).SetActive(ctx, id, active); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error updating account status: %w", err)
	}
	return nil
}

// UpdateRole makes role the only role of user id. The role row is upserted
// and every other role pruned; if that is rejected, the roles are replaced
// with a delete followed by an insert.
func (s *UserService) UpdateRole(ctx context.Context, id, role string) error {
	if err := validateForm(roleForm{Role: role}); err != nil {
		return err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Roles(tx)
		if err := repo.Upsert(ctx, id, role); err != nil {
			return err
		}
		return repo.DeleteOthers(ctx, id, role)
	})
	if err == nil {
		return nil
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Roles(tx)
		if err := repo.DeleteAll(ctx, id); err != nil {
			return err
		}
		return repo.Insert(ctx, id, role)
	})
	if err != nil {
		return fmt.Errorf("error updating role: %w", err)
	}
	return nil
}

// CreateAccount registers a new account on behalf of an admin. A role row is
// written only for admins; plain users rely on the implicit user role.
func (s *UserService) CreateAccount(ctx context.Context, in AccountInput) (*models.UserWithRole, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var out *models.UserWithRole
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, profile, err := createAccount(ctx, s.repomanager, tx, in.Email, in.Password, in.FullName)
		if err != nil {
			return err
		}
		if in.Role == common.RoleAdmin {
			if err := s.repomanager.Roles(tx).Insert(ctx, user.ID, common.RoleAdmin); err != nil {
				return fmt.Errorf("error assigning role: %w", err)
			}
		}
		out = &models.UserWithRole{Profile: *profile, Role: in.Role}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

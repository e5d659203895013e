package menuitems

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/dbx"
	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/lib/pq"
)

const columns = `id, title, description, icon, path, display_order, is_active, visible_to_roles, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*models.MenuItem, error) {
	m := &models.MenuItem{}
	var roles pq.StringArray
	err := s.Scan(&m.ID, &m.Title, &m.Description, &m.Icon, &m.Path, &m.DisplayOrder, &m.IsActive, &roles, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.VisibleToRoles = []string(roles)
	if m.VisibleToRoles == nil {
		m.VisibleToRoles = []string{}
	}
	return m, nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.MenuItem
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.MenuItem, error) {
	return r.query(ctx, `SELECT `+columns+` FROM menu_items ORDER BY display_order ASC`)
}

func (r *PostgresRepository) ListVisible(ctx context.Context, role string) ([]*models.MenuItem, error) {
	return r.query(ctx, `SELECT `+columns+` FROM menu_items
		WHERE is_active AND $1 = ANY(visible_to_roles)
		ORDER BY display_order ASC`, role)
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.MenuItem) (*models.MenuItem, error) {
	query := `
		INSERT INTO menu_items (title, description, icon, path, display_order, is_active, visible_to_roles)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + columns

	out, err := scanItem(r.db.QueryRowContext(ctx, query,
		m.Title, m.Description, m.Icon, m.Path, m.DisplayOrder, m.IsActive, pq.Array(m.VisibleToRoles)))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Update(ctx context.Context, m *models.MenuItem) (*models.MenuItem, error) {
	query := `
		UPDATE menu_items
		SET title = $2, description = $3, icon = $4, path = $5, display_order = $6,
		    is_active = $7, visible_to_roles = $8, updated_at = now()
		WHERE id = $1
		RETURNING ` + columns

	out, err := scanItem(r.db.QueryRowContext(ctx, query,
		m.ID, m.Title, m.Description, m.Icon, m.Path, m.DisplayOrder, m.IsActive, pq.Array(m.VisibleToRoles)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectAffected(res)
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM menu_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// Package records is the generic gateway behind the reference tables. Table
// and column names come from schema.Entity, never from the request.
package records

import (
	"context"

	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/schema"
)

type Repository interface {
	// List returns one page of rows, newest first, and the table's row count.
	List(ctx context.Context, e *schema.Entity, limit, offset int) ([]models.Record, int64, error)
	Create(ctx context.Context, e *schema.Entity, fields models.Record) (models.Record, error)
	// Update overwrites fields of row id and bumps updated_at.
	Update(ctx context.Context, e *schema.Entity, id string, fields models.Record) (models.Record, error)
	Delete(ctx context.Context, e *schema.Entity, id string) error
	// BulkInsert writes rows in a single statement; either all rows land or none.
	BulkInsert(ctx context.Context, e *schema.Entity, columns []string, rows [][]any) (int64, error)
}

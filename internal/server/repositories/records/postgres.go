package records

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/dbx"
	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/schema"
)

type PostgresRepository struct {
	db dbx.DBTX
	qb squirrel.StatementBuilderType
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{
		db: db,
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PostgresRepository) List(ctx context.Context, e *schema.Entity, limit, offset int) ([]models.Record, int64, error) {
	countSQL, countArgs, err := r.qb.Select("count(*)").From(e.Table).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	query, args, err := r.qb.Select(e.Keys()...).
		From(e.Table).
		OrderBy("created_at DESC").
		Limit(uint64(max(limit, 0))).
		Offset(uint64(max(offset, 0))).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out, err := scanRecords(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresRepository) Create(ctx context.Context, e *schema.Entity, fields models.Record) (models.Record, error) {
	cols, vals := split(e, fields)
	if len(cols) == 0 {
		return nil, fmt.Errorf("%s: nothing to insert", e.Name)
	}

	query, args, err := r.qb.Insert(e.Table).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING " + strings.Join(e.Keys(), ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return r.queryOne(ctx, query, args)
}

func (r *PostgresRepository) Update(ctx context.Context, e *schema.Entity, id string, fields models.Record) (models.Record, error) {
	cols, vals := split(e, fields)

	b := r.qb.Update(e.Table)
	for i, c := range cols {
		b = b.Set(c, vals[i])
	}
	query, args, err := b.Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(e.Keys(), ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return r.queryOne(ctx, query, args)
}

func (r *PostgresRepository) Delete(ctx context.Context, e *schema.Entity, id string) error {
	query, args, err := r.qb.Delete(e.Table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectAffected(res)
}

func (r *PostgresRepository) BulkInsert(ctx context.Context, e *schema.Entity, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	for _, c := range columns {
		if _, ok := e.Column(c); !ok {
			return 0, schema.NewValidationError(c, fmt.Sprintf("unknown column %q of %s", c, e.Name))
		}
	}

	b := r.qb.Insert(e.Table).Columns(columns...)
	for _, row := range rows {
		if len(row) != len(columns) {
			return 0, fmt.Errorf("row has %d values, want %d", len(row), len(columns))
		}
		b = b.Values(row...)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return int64(len(rows)), nil
	}
	return n, nil
}

func (r *PostgresRepository) queryOne(ctx context.Context, query string, args []any) (models.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, common.ErrorNotFound
	}
	return out[0], nil
}

// split returns the entity's columns present in fields, in declaration order,
// with their values.
func split(e *schema.Entity, fields models.Record) ([]string, []any) {
	var cols []string
	var vals []any
	for _, c := range e.Columns {
		if v, ok := fields[c.Key]; ok && c.Key != "id" {
			cols = append(cols, c.Key)
			vals = append(vals, v)
		}
	}
	return cols, vals
}

func scanRecords(rows *sql.Rows) ([]models.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	out := []models.Record{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}

		rec := make(models.Record, len(cols))
		for i, c := range cols {
			if b, ok := vals[i].([]byte); ok {
				rec[c] = string(b)
				continue
			}
			rec[c] = vals[i]
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

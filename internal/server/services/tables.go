package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/server/config"
	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/paging"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/adminpanel/internal/server/schema"
	"github.com/dmitrijs2005/adminpanel/internal/server/tabular"
)

// Content types of exported files.
const (
	WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	DocumentContentType = "application/pdf"
)

// TablePage is one page of a reference table.
type TablePage struct {
	Entity  *schema.Entity  `json:"entity"`
	Records []models.Record `json:"records"`
	Window  paging.Window   `json:"window"`
}

// ExportFile is a rendered download.
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// TableService implements the paginated CRUD table shared by every entity in
// the registry.
type TableService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	registry    *schema.Registry
	dateLayout  string
	now         func() time.Time
}

func NewTableService(db *sql.DB, m repomanager.RepositoryManager, reg *schema.Registry, cfg *config.Config) *TableService {
	return &TableService{
		db:          db,
		repomanager: m,
		registry:    reg,
		dateLayout:  cfg.DateLayout,
		now:         time.Now,
	}
}

// Entity returns the schema of the named table.
func (s *TableService) Entity(name string) (*schema.Entity, error) {
	return s.registry.Get(name)
}

// Page loads page of the named table together with its page window. A page
// past the end yields no records.
func (s *TableService) Page(ctx context.Context, name string, page int) (*TablePage, error) {
	e, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}

	w := paging.NewWindow(page, e.PageSizeOrDefault(), schema.DefaultPageSize, 0)
	recs, total, err := s.repomanager.Records(s.db).List(ctx, e, w.PageSize, w.Offset())
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", e.Title, err)
	}
	if recs == nil {
		recs = []models.Record{}
	}

	return &TablePage{
		Entity:  e,
		Records: recs,
		Window:  paging.NewWindow(w.Page, w.PageSize, schema.DefaultPageSize, total),
	}, nil
}

// Create validates values as a new row and stores it.
func (s *TableService) Create(ctx context.Context, name string, values map[string]any) (models.Record, error) {
	e, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}
	draft, err := e.Draft(values)
	if err != nil {
		return nil, err
	}
	rec, err := s.repomanager.Records(s.db).Create(ctx, e, draft)
	if err != nil {
		return nil, fmt.Errorf("error creating %s: %w", e.Title, err)
	}
	return rec, nil
}

// Update validates values and overwrites row id. Submitting unchanged values
// succeeds.
func (s *TableService) Update(ctx context.Context, name, id string, values map[string]any) (models.Record, error) {
	e, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}
	draft, err := e.Draft(values)
	if err != nil {
		return nil, err
	}
	rec, err := s.repomanager.Records(s.db).Update(ctx, e, id, draft)
	if err != nil {
		return nil, fmt.Errorf("error updating %s: %w", e.Title, err)
	}
	return rec, nil
}

// Delete removes row id immediately.
func (s *TableService) Delete(ctx context.Context, name, id string) error {
	e, err := s.registry.Get(name)
	if err != nil {
		return err
	}
	if err := s.repomanager.Records(s.db).Delete(ctx, e, id); err != nil {
		return fmt.Errorf("error deleting %s: %w", e.Title, err)
	}
	return nil
}

// ExportWorkbook renders the given page as an xlsx workbook.
func (s *TableService) ExportWorkbook(ctx context.Context, name string, page int) (*ExportFile, error) {
	p, err := s.Page(ctx, name, page)
	if err != nil {
		return nil, err
	}
	data, err := tabular.WriteWorkbook(toTable(p))
	if err != nil {
		return nil, fmt.Errorf("error exporting %s: %w", p.Entity.Title, err)
	}
	return &ExportFile{
		FileName:    tabular.FileName(p.Entity.Title, "xlsx", s.now()),
		ContentType: WorkbookContentType,
		Data:        data,
	}, nil
}

// ExportDocument renders the given page as a printable PDF.
func (s *TableService) ExportDocument(ctx context.Context, name string, page int) (*ExportFile, error) {
	p, err := s.Page(ctx, name, page)
	if err != nil {
		return nil, err
	}
	data, err := tabular.WriteDocument(toTable(p), s.dateLayout)
	if err != nil {
		return nil, fmt.Errorf("error exporting %s: %w", p.Entity.Title, err)
	}
	return &ExportFile{
		FileName:    tabular.FileName(p.Entity.Title, "pdf", s.now()),
		ContentType: DocumentContentType,
		Data:        data,
	}, nil
}

// Import reads the first sheet of a workbook and inserts every data row in a
// single statement. Headers are matched to editable columns by label or key;
// anything else, including the id column, is ignored. Blank cells are stored
// as NULL, so a row missing required data makes the whole batch fail.
func (s *TableService) Import(ctx context.Context, name string, r io.Reader) (int64, error) {
	e, err := s.registry.Get(name)
	if err != nil {
		return 0, err
	}

	headers, rows, err := tabular.ReadFirstSheet(r)
	if err != nil {
		if errors.Is(err, common.ErrorEmptyImport) {
			return 0, err
		}
		return 0, schema.NewValidationError("file", "could not read workbook: "+err.Error())
	}

	var (
		cols    []schema.Column
		indexes []int
	)
	seen := map[string]bool{}
	for i, h := range headers {
		c, ok := e.ColumnByHeader(h)
		if !ok || !c.Editable || seen[c.Key] {
			continue
		}
		seen[c.Key] = true
		cols = append(cols, c)
		indexes = append(indexes, i)
	}
	if len(cols) == 0 {
		return 0, schema.NewValidationError("file", "no importable columns found in "+e.Title+" workbook")
	}

	keys := make([]string, len(cols))
	for i, c := range cols {
		keys[i] = c.Key
	}

	values := make([][]any, 0, len(rows))
	for n, row := range rows {
		vals := make([]any, len(cols))
		for i, c := range cols {
			v, err := schema.CoerceCell(c, row[indexes[i]])
			if err != nil {
				return 0, schema.NewValidationError(c.Key, fmt.Sprintf("data row %d: %s", n+1, err.Error()))
			}
			vals[i] = v
		}
		values = append(values, vals)
	}

	count, err := s.repomanager.Records(s.db).BulkInsert(ctx, e, keys, values)
	if err != nil {
		return 0, fmt.Errorf("error importing %s: %w", e.Title, err)
	}
	return count, nil
}

func toTable(p *TablePage) tabular.Table {
	t := tabular.Table{
		Title:       p.Entity.Title,
		Headers:     make([]string, len(p.Entity.Columns)),
		DateColumns: map[int]bool{},
		Rows:        make([][]any, 0, len(p.Records)),
	}
	for i, c := range p.Entity.Columns {
		t.Headers[i] = c.Label
		if c.Type == schema.TypeDate {
			t.DateColumns[i] = true
		}
	}
	for _, rec := range p.Records {
		row := make([]any, len(p.Entity.Columns))
		for i, c := range p.Entity.Columns {
			row[i] = rec[c.Key]
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

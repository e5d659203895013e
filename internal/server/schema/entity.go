package schema

import (
	"strings"

	"github.com/dmitrijs2005/adminpanel/internal/server/models"
)

// DefaultPageSize is used when an Entity does not declare its own.
const DefaultPageSize = 10

// Entity binds a database table to its column layout.
type Entity struct {
	Name     string   `json:"name"`
	Table    string   `json:"-"`
	Title    string   `json:"title"`
	Columns  []Column `json:"columns"`
	PageSize int      `json:"page_size"`
}

// Keys returns all column keys in declaration order.
func (e *Entity) Keys() []string {
	keys := make([]string, 0, len(e.Columns))
	for _, c := range e.Columns {
		keys = append(keys, c.Key)
	}
	return keys
}

// EditableColumns returns the columns a user may write.
func (e *Entity) EditableColumns() []Column {
	var out []Column
	for _, c := range e.Columns {
		if c.Editable {
			out = append(out, c)
		}
	}
	return out
}

// Column looks a column up by key.
func (e *Entity) Column(key string) (Column, bool) {
	for _, c := range e.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnByHeader resolves a spreadsheet header to a column. Labels are tried
// before keys; both comparisons ignore case and surrounding blanks.
func (e *Entity) ColumnByHeader(header string) (Column, bool) {
	h := strings.TrimSpace(header)
	if h == "" {
		return Column{}, false
	}
	for _, c := range e.Columns {
		if strings.EqualFold(c.Label, h) {
			return c, true
		}
	}
	for _, c := range e.Columns {
		if strings.EqualFold(c.Key, h) {
			return c, true
		}
	}
	return Column{}, false
}

// PageSizeOrDefault returns PageSize, or DefaultPageSize when unset.
func (e *Entity) PageSizeOrDefault() int {
	if e.PageSize < 1 {
		return DefaultPageSize
	}
	return e.PageSize
}

// Draft validates values as a create or edit form for e. Only editable
// columns are kept; each one must be present and non-blank and must coerce to
// the column type. Unknown and read-only keys are dropped silently.
func (e *Entity) Draft(values map[string]any) (models.Record, error) {
	draft := models.Record{}
	verr := &ValidationError{}

	for _, c := range e.EditableColumns() {
		raw, ok := values[c.Key]
		if !ok || isBlank(raw) {
			verr.Add(c.Key, c.Label+" is required")
			continue
		}
		v, err := Coerce(c, raw)
		if err != nil {
			verr.Add(c.Key, err.Error())
			continue
		}
		draft[c.Key] = v
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return draft, nil
}

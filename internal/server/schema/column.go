// Package schema declares the column layout of the generic reference tables
// and turns raw form or spreadsheet values into typed field maps.
package schema

// ColumnType selects how a raw value is coerced before it is stored.
type ColumnType string

const (
	TypeText   ColumnType = "text"
	TypeNumber ColumnType = "number"
	TypeDate   ColumnType = "date"
)

// Column describes one column of an Entity. Columns are declared in code and
// never change at runtime.
type Column struct {
	Key      string     `json:"key"`
	Label    string     `json:"label"`
	Editable bool       `json:"editable"`
	Type     ColumnType `json:"type"`
}

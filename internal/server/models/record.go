package models

import "fmt"

// Record is one row of a generic reference table keyed by column name.
// Values are string, int64, float64, bool, time.Time or nil.
type Record map[string]any

// ID returns the record's id column rendered as a string, or "" if absent.
func (r Record) ID() string {
	v, ok := r["id"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayouts are tried in order when a date column receives a string.
var DateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04",
	"02.01.2006",
	"01-02-06",
	"1/2/06 15:04",
}

// Coerce converts raw to the Go type of c: string for text, float64 for
// number and time.Time for date.
func Coerce(c Column, raw any) (any, error) {
	switch c.Type {
	case TypeNumber:
		return toNumber(c, raw)
	case TypeDate:
		return toDate(c, raw)
	default:
		switch v := raw.(type) {
		case string:
			return v, nil
		case fmt.Stringer:
			return v.String(), nil
		default:
			return fmt.Sprint(v), nil
		}
	}
}

// CoerceCell is Coerce for spreadsheet cells: a blank cell becomes nil.
func CoerceCell(c Column, cell string) (any, error) {
	if strings.TrimSpace(cell) == "" {
		return nil, nil
	}
	return Coerce(c, cell)
}

func toNumber(c Column, raw any) (any, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", c.Label)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", c.Label)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%s must be a number", c.Label)
}

func toDate(c Column, raw any) (any, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range DateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
	}
	return nil, fmt.Errorf("%s must be a date", c.Label)
}

func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	}
	return false
}

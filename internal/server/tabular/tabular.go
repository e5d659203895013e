// Package tabular renders table pages as xlsx workbooks and printable PDF
// documents and reads workbooks back for import.
package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the suffix format of exported file names.
const TimestampLayout = "20060102_150405"

// Placeholder is printed for missing values.
const Placeholder = "-"

// Table is one page of data ready to be rendered.
type Table struct {
	Title   string
	Headers []string
	// DateColumns marks which columns hold dates, by index.
	DateColumns map[int]bool
	Rows        [][]any
}

// FileName returns "{title}_{timestamp}.{ext}".
func FileName(title, ext string, now time.Time) string {
	return title + "_" + now.Format(TimestampLayout) + "." + strings.TrimPrefix(ext, ".")
}

// FormatValue renders v for print. Dates use dateLayout and nil becomes
// Placeholder.
func FormatValue(v any, dateLayout string) string {
	switch x := v.(type) {
	case nil:
		return Placeholder
	case string:
		return x
	case time.Time:
		return x.Format(dateLayout)
	case *time.Time:
		if x == nil {
			return Placeholder
		}
		return x.Format(dateLayout)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case []byte:
		return string(x)
	}
	return fmt.Sprint(v)
}

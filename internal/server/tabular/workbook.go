package tabular

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/xuri/excelize/v2"
)

const maxSheetNameLen = 31

// WorkbookDateLayout is how dates are written to workbook cells. Dates are
// stored as text so that reading them back yields the same instant.
const WorkbookDateLayout = time.RFC3339Nano

// SheetName makes title usable as a worksheet name.
func SheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	name = strings.Trim(name, "'")
	if r := []rune(name); len(r) > maxSheetNameLen {
		name = string(r[:maxSheetNameLen])
	}
	if name == "" {
		return "Sheet1"
	}
	return name
}

// WriteWorkbook renders t as a single-sheet xlsx workbook: a bold header row
// followed by one row per record.
func WriteWorkbook(t Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(t.Title)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}

	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}

	if len(t.Headers) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("xlsx: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return nil, fmt.Errorf("xlsx: %w", err)
		}
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: %w", err)
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = cellValue(v)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValue converts v to what is written to a cell.
func cellValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.Format(WorkbookDateLayout)
	case *time.Time:
		if x == nil {
			return nil
		}
		return x.Format(WorkbookDateLayout)
	}
	return v
}

// ReadFirstSheet reads the first worksheet of an xlsx workbook. The first
// row is returned as headers; every following non-empty row is padded to the
// header width. A sheet without data rows yields common.ErrorEmptyImport.
func ReadFirstSheet(r io.Reader) ([]string, [][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read workbook: %w", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, common.ErrorEmptyImport
	}

	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(all) < 2 {
		return nil, nil, common.ErrorEmptyImport
	}

	headers := all[0]
	var rows [][]string
	for _, raw := range all[1:] {
		if blankRow(raw) {
			continue
		}
		row := make([]string, len(headers))
		copy(row, raw)
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, nil, common.ErrorEmptyImport
	}
	return headers, rows, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// metadataHeaders are the fixed leading columns of every export
var metadataHeaders = []string{"ID", "Title", "Subtitle", "Status", "Created", "Updated"}

const dateLayout = "2006-01-02 15:04"

// Spreadsheet renders one sheet named after the template: the fixed
// metadata columns first, then one column per exported field. Any cell
// write failure aborts the whole export.
func Spreadsheet(templateTitle string, columns []Column, rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if templateTitle != "" {
		if err := f.SetSheetName(sheet, sheetName(templateTitle)); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
		sheet = sheetName(templateTitle)
	}

	headers := make([]string, 0, len(metadataHeaders)+len(columns))
	headers = append(headers, metadataHeaders...)
	for _, c := range columns {
		headers = append(headers, c.Name)
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header %q: %w", h, err)
		}
	}

	for rowIdx, row := range rows {
		cells := make([]string, 0, len(headers))
		cells = append(cells, row.ID, row.Title, row.Subtitle, row.Status,
			row.CreatedAt.Format(dateLayout), row.UpdatedAt.Format(dateLayout))
		for _, c := range columns {
			cells = append(cells, row.Values[c.ID])
		}
		for colIdx, value := range cells {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write row %s: %w", row.ID, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetName strips the characters Excel forbids in sheet names and
// truncates to the 31-character limit
func sheetName(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, title)
	runes := []rune(cleaned)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}

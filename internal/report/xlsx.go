// Package report renders split results into spreadsheet form.
package report

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"logsift/internal/errors"
	"logsift/internal/filter"
)

// maximum sheet name length imposed by the xlsx format
const maxSheetName = 31

// WriteWorkbook writes one worksheet per group to an xlsx file at path.
// Each log line becomes a row: the bracketed leading timestamp goes to
// column A, the remaining whitespace-separated fields fill the columns
// after it. Lines without a ']' separator land whole in column A.
func WriteWorkbook(path string, groups []filter.Group) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, g := range groups {
		name := sheetName(g.Keyword)
		if i == 0 {
			// reuse the default sheet rather than leaving it empty
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return errors.IoError("cannot create worksheet", path, err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return errors.IoError("cannot create worksheet", path, err)
			}
		}

		for row, line := range g.Lines {
			if err := writeRow(f, name, row+1, line); err != nil {
				return errors.IoError("cannot write worksheet row", path, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.IoError("cannot save workbook", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, line string) error {
	timestamp, rest, found := strings.Cut(line, "]")
	if !found {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetCellStr(sheet, cell, line)
	}

	timestamp = strings.TrimPrefix(timestamp, "[")
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetCellStr(sheet, cell, timestamp); err != nil {
		return err
	}

	for col, field := range strings.Fields(rest) {
		cell, err := excelize.CoordinatesToCellName(col+2, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, field); err != nil {
			return err
		}
	}
	return nil
}

func sheetName(keyword string) string {
	name := filter.Slug(keyword)
	if name == "" {
		name = "group"
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}

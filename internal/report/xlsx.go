package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	SheetDepartments = "Chamados por Departamento"
	SheetProblems    = "Problemas Frequentes"
)

// XLSXContentType is the media type of WriteXLSX output.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteXLSX exports the summary as a workbook with one sheet for the
// department table and one for the problem ranking.
func WriteXLSX(w io.Writer, summary Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetDepartments); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetProblems); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	deptRows := make([][]any, 0, len(summary.Departments)+1)
	deptRows = append(deptRows, headerRow(departmentHeader))
	for _, dept := range summary.Departments {
		row := []any{string(dept.Department)}
		for _, n := range dept.counts() {
			row = append(row, n)
		}
		deptRows = append(deptRows, row)
	}
	if err := writeRows(f, SheetDepartments, deptRows); err != nil {
		return err
	}

	problemRows := make([][]any, 0, len(summary.TopProblems)+1)
	problemRows = append(problemRows, headerRow(problemHeader))
	for _, problem := range summary.TopProblems {
		problemRows = append(problemRows, []any{problem.Title, problem.Count})
	}
	if err := writeRows(f, SheetProblems, problemRows); err != nil {
		return err
	}

	if err := f.SetColWidth(SheetDepartments, "A", "F", 24); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(SheetProblems, "A", "A", 40); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func headerRow(names []string) []any {
	row := make([]any, len(names))
	for i, name := range names {
		row[i] = name
	}
	return row
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// Package report renders instructor progress data as spreadsheet files.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/learnhub-io/learnhub-cli/internal/progress"
)

const (
	sheetStudents = "Students"
	sheetSummary  = "Summary"
)

var studentHeaders = []string{
	"Student ID", "First Name", "Last Name", "Username", "Email",
	"Course", "Enrolled At", "Progress %", "Completed", "Lessons Done", "Total Lessons",
}

// ExportStudents writes an XLSX workbook with one row per enrollment
// and a summary sheet, in the order the aggregates were built.
func ExportStudents(aggregates []progress.StudentAggregate, stats progress.Stats, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetStudents); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}

	if err := writeStudents(f, aggregates); err != nil {
		return err
	}
	if err := writeSummary(f, stats); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeStudents(f *excelize.File, aggregates []progress.StudentAggregate) error {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for col, name := range studentHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetStudents, cell, name); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		if err := f.SetCellStyle(sheetStudents, cell, cell, header); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}

	row := 2
	for _, agg := range aggregates {
		for _, e := range agg.Enrollments {
			enrolled := ""
			if !e.EnrolledAt.IsZero() {
				enrolled = e.EnrolledAt.Format("2006-01-02")
			}
			values := []any{
				agg.StudentID, agg.FirstName, agg.LastName, agg.Username, agg.Email,
				e.CourseName, enrolled, e.Progress, e.Completed, e.CompletedLessons, e.TotalLessons,
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return fmt.Errorf("cell name: %w", err)
				}
				if err := f.SetCellValue(sheetStudents, cell, v); err != nil {
					return fmt.Errorf("write row %d: %w", row, err)
				}
			}
			row++
		}
	}
	return nil
}

func writeSummary(f *excelize.File, stats progress.Stats) error {
	lines := []struct {
		label string
		value int
	}{
		{"Total Students", stats.TotalStudents},
		{"Total Enrollments", stats.TotalEnrollments},
		{"Unique Courses", stats.UniqueCourses},
		{"Active Students", stats.ActiveStudents},
	}
	for i, line := range lines {
		row := i + 1
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), line.label); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), line.value); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}

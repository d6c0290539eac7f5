package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/learnhub-io/learnhub-cli/internal/progress"
)

func TestExportStudents(t *testing.T) {
	aggregates := []progress.StudentAggregate{
		{
			StudentID: 1, FirstName: "Ann", LastName: "Lee", Username: "ann.lee", Email: "ann@example.com",
			Enrollments: []progress.CourseEntry{
				{
					CourseID: 10, CourseName: "Go Fundamentals",
					EnrolledAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
					Progress:   50, TotalLessons: 10, CompletedLessons: 5,
				},
				{CourseID: 11, CourseName: "Databases", Progress: 100, Completed: true, TotalLessons: 4, CompletedLessons: 4},
			},
		},
		{
			StudentID: 2, FirstName: "Bob", LastName: "Ray", Username: "bob", Email: "bob@example.com",
			Enrollments: []progress.CourseEntry{
				{CourseID: 10, CourseName: "Go Fundamentals", Progress: 0, TotalLessons: 10},
			},
		},
	}
	stats := progress.SummarizeStats(aggregates)

	var buf bytes.Buffer
	if err := ExportStudents(aggregates, stats, &buf); err != nil {
		t.Fatalf("ExportStudents() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetStudents)
	if err != nil {
		t.Fatalf("GetRows(%s) error = %v", sheetStudents, err)
	}
	// header plus one row per enrollment
	if len(rows) != 4 {
		t.Fatalf("len(rows) = %d, want 4", len(rows))
	}
	if rows[0][0] != "Student ID" || rows[0][5] != "Course" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][1] != "Ann" || rows[1][5] != "Go Fundamentals" || rows[1][6] != "2026-03-01" {
		t.Errorf("first data row = %v", rows[1])
	}
	if rows[3][3] != "bob" {
		t.Errorf("last data row = %v", rows[3])
	}

	summary, err := f.GetRows(sheetSummary)
	if err != nil {
		t.Fatalf("GetRows(%s) error = %v", sheetSummary, err)
	}
	if len(summary) != 4 {
		t.Fatalf("len(summary rows) = %d, want 4", len(summary))
	}
	if summary[0][0] != "Total Students" || summary[0][1] != "2" {
		t.Errorf("summary row 0 = %v", summary[0])
	}
	if summary[1][1] != "3" {
		t.Errorf("total enrollments = %v, want 3", summary[1])
	}
}

func TestExportStudents_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportStudents(nil, progress.Stats{}, &buf); err != nil {
		t.Fatalf("ExportStudents() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetStudents)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want header only", len(rows))
	}
}

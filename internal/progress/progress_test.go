package progress

import (
	"testing"
	"time"

	"github.com/learnhub-io/learnhub-cli/internal/api"
)

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"zero lessons", 0, 0, 0},
		{"half", 5, 10, 50},
		{"full", 10, 10, 100},
		{"thirty", 3, 10, 30},
		{"round half up", 1, 8, 13}, // 12.5 rounds up
		{"round down", 1, 3, 33},
		{"zero lessons with completions", 4, 0, 0},
		{"over-reported completions saturate", 12, 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionPercentage(tt.completed, tt.total); got != tt.want {
				t.Errorf("CompletionPercentage(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}

func TestAggregateStudentProgress_GroupsByStudent(t *testing.T) {
	enrolledAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	enrollments := []api.Enrollment{
		{StudentID: 7, StudentFirstName: "Ann", StudentLastName: "Lee", CourseID: 1, CourseTitle: "Go Basics", CompletedLessons: 5, TotalLessons: 10, EnrolledAt: enrolledAt},
		{StudentID: 7, StudentFirstName: "Ann", StudentLastName: "Lee", CourseID: 2, CourseTitle: "Advanced Go", CompletedLessons: 0, TotalLessons: 8},
	}

	aggs := AggregateStudentProgress(enrollments)
	if len(aggs) != 1 {
		t.Fatalf("len(aggs) = %d, want 1", len(aggs))
	}

	agg := aggs[0]
	if agg.StudentID != 7 || agg.FirstName != "Ann" || agg.LastName != "Lee" {
		t.Errorf("aggregate identity = %+v", agg)
	}
	if len(agg.Enrollments) != 2 {
		t.Fatalf("len(enrollments) = %d, want 2", len(agg.Enrollments))
	}
	// input order preserved
	if agg.Enrollments[0].CourseID != 1 || agg.Enrollments[1].CourseID != 2 {
		t.Errorf("course order = %d, %d", agg.Enrollments[0].CourseID, agg.Enrollments[1].CourseID)
	}
	if agg.Enrollments[0].Progress != 50 || agg.Enrollments[0].Completed {
		t.Errorf("entry 0 = %+v", agg.Enrollments[0])
	}
	if !agg.Enrollments[0].EnrolledAt.Equal(enrolledAt) {
		t.Errorf("EnrolledAt = %v", agg.Enrollments[0].EnrolledAt)
	}
}

func TestAggregateStudentProgress_FirstSeenOrder(t *testing.T) {
	enrollments := []api.Enrollment{
		{StudentID: 2, StudentName: "Bea Cruz", CourseID: 1},
		{StudentID: 1, StudentName: "Ann Lee", CourseID: 1},
		{StudentID: 2, StudentName: "Renamed Later", CourseID: 3},
	}

	aggs := AggregateStudentProgress(enrollments)
	if len(aggs) != 2 {
		t.Fatalf("len(aggs) = %d, want 2", len(aggs))
	}
	if aggs[0].StudentID != 2 || aggs[1].StudentID != 1 {
		t.Errorf("order = %d, %d; want first-seen order 2, 1", aggs[0].StudentID, aggs[1].StudentID)
	}
	// first-seen name fields win
	if aggs[0].FirstName != "Bea" {
		t.Errorf("FirstName = %q, want first-seen %q", aggs[0].FirstName, "Bea")
	}
}

func TestAggregateStudentProgress_NameResolution(t *testing.T) {
	tests := []struct {
		name      string
		in        api.Enrollment
		wantFirst string
		wantLast  string
	}{
		{"separate fields", api.Enrollment{StudentFirstName: "Ann", StudentLastName: "Lee"}, "Ann", "Lee"},
		{"full name splits", api.Enrollment{StudentName: "Ann Marie Lee"}, "Ann", "Marie Lee"},
		{"single token", api.Enrollment{StudentName: "Ann"}, "Ann", "Student"},
		{"neither", api.Enrollment{}, "Unknown", "Student"},
		{"separate fields win", api.Enrollment{StudentFirstName: "Ann", StudentLastName: "Lee", StudentName: "Someone Else"}, "Ann", "Lee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggs := AggregateStudentProgress([]api.Enrollment{tt.in})
			if len(aggs) != 1 {
				t.Fatalf("len(aggs) = %d", len(aggs))
			}
			if aggs[0].FirstName != tt.wantFirst || aggs[0].LastName != tt.wantLast {
				t.Errorf("name = %q %q, want %q %q", aggs[0].FirstName, aggs[0].LastName, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestAggregateStudentProgress_UsernameEmailFallback(t *testing.T) {
	aggs := AggregateStudentProgress([]api.Enrollment{{StudentID: 42}})
	if aggs[0].Username != "student42" {
		t.Errorf("Username = %q, want %q", aggs[0].Username, "student42")
	}
	if aggs[0].Email != "student42@example.com" {
		t.Errorf("Email = %q, want %q", aggs[0].Email, "student42@example.com")
	}
}

func TestAggregateStudentProgress_ZeroLessonCourseNeverCompleted(t *testing.T) {
	aggs := AggregateStudentProgress([]api.Enrollment{
		{StudentID: 1, CourseID: 9, CompletedLessons: 3, TotalLessons: 0, ProgressPercentage: 100},
	})
	entry := aggs[0].Enrollments[0]
	if entry.Progress != 0 {
		t.Errorf("Progress = %d, want 0 for zero-lesson course", entry.Progress)
	}
	if entry.Completed {
		t.Error("zero-lesson course reported completed")
	}
}

func TestSummarizeStats(t *testing.T) {
	enrollments := []api.Enrollment{
		{StudentID: 1, CourseID: 1, CompletedLessons: 10, TotalLessons: 10},
		{StudentID: 1, CourseID: 2, CompletedLessons: 2, TotalLessons: 10},
		{StudentID: 2, CourseID: 1, CompletedLessons: 10, TotalLessons: 10},
		{StudentID: 3, CourseID: 3, CompletedLessons: 0, TotalLessons: 5},
	}

	stats := SummarizeStats(AggregateStudentProgress(enrollments))
	if stats.TotalStudents != 3 {
		t.Errorf("TotalStudents = %d, want 3", stats.TotalStudents)
	}
	if stats.TotalEnrollments != len(enrollments) {
		t.Errorf("TotalEnrollments = %d, want %d", stats.TotalEnrollments, len(enrollments))
	}
	if stats.UniqueCourses != 3 {
		t.Errorf("UniqueCourses = %d, want 3", stats.UniqueCourses)
	}
	// student 2 finished everything; students 1 and 3 are active
	if stats.ActiveStudents != 2 {
		t.Errorf("ActiveStudents = %d, want 2", stats.ActiveStudents)
	}
}

func TestSummarizeStats_TotalEnrollmentsMatchesInputLength(t *testing.T) {
	// property: totalEnrollments always equals the input record count
	for _, n := range []int{0, 1, 5, 20} {
		enrollments := make([]api.Enrollment, n)
		for i := range enrollments {
			enrollments[i] = api.Enrollment{StudentID: int64(i % 3), CourseID: int64(i)}
		}
		stats := SummarizeStats(AggregateStudentProgress(enrollments))
		if stats.TotalEnrollments != n {
			t.Errorf("n=%d: TotalEnrollments = %d", n, stats.TotalEnrollments)
		}
	}
}

func TestFilterStudents(t *testing.T) {
	aggs := AggregateStudentProgress([]api.Enrollment{
		{StudentID: 1, StudentFirstName: "Ann", StudentLastName: "Lee", StudentUsername: "alee", StudentEmail: "ann@example.com", CourseID: 1, CourseTitle: "Go Basics"},
		{StudentID: 2, StudentFirstName: "Bea", StudentLastName: "Cruz", StudentUsername: "bcruz", StudentEmail: "bea@example.com", CourseID: 2, CourseTitle: "Rust Basics"},
	})

	tests := []struct {
		name    string
		search  string
		course  string
		wantIDs []int64
	}{
		{"no filters", "", "", []int64{1, 2}},
		{"search by last name, caseless", "LEE", "", []int64{1}},
		{"search by email", "bea@", "", []int64{2}},
		{"course filter", "", "go", []int64{1}},
		{"both filters conflict", "Ann", "Rust", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterStudents(aggs, tt.search, tt.course)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].StudentID != id {
					t.Errorf("got[%d].StudentID = %d, want %d", i, got[i].StudentID, id)
				}
			}
		})
	}
}

func TestCourseNames(t *testing.T) {
	aggs := AggregateStudentProgress([]api.Enrollment{
		{StudentID: 1, CourseID: 2, CourseTitle: "Rust Basics"},
		{StudentID: 2, CourseID: 1, CourseTitle: "Go Basics"},
		{StudentID: 3, CourseID: 2, CourseTitle: "Rust Basics"},
	})

	names := CourseNames(aggs)
	if len(names) != 2 || names[0] != "Go Basics" || names[1] != "Rust Basics" {
		t.Errorf("CourseNames() = %v", names)
	}
}

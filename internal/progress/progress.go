// Package progress derives per-student progress views from raw enrollment
// records. Everything here is pure: no network, no mutation of inputs.
package progress

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/learnhub-io/learnhub-cli/internal/api"
)

// CourseEntry is one course inside a student aggregate.
type CourseEntry struct {
	CourseID         int64
	CourseName       string
	EnrolledAt       time.Time
	Progress         int // 0..100
	Completed        bool
	TotalLessons     int
	CompletedLessons int
}

// StudentAggregate groups a student's enrollments. It is derived, never
// persisted.
type StudentAggregate struct {
	StudentID   int64
	FirstName   string
	LastName    string
	Username    string
	Email       string
	Enrollments []CourseEntry
}

// Stats summarizes a set of student aggregates.
type Stats struct {
	TotalStudents    int
	TotalEnrollments int
	UniqueCourses    int
	ActiveStudents   int // students with at least one uncompleted enrollment
}

// CompletionPercentage computes the completion percentage for a course,
// rounding half up. A course with zero lessons is pinned at 0 regardless of
// completed count: it can never report a vacuous 100%.
func CompletionPercentage(completedLessons, totalLessons int) int {
	if totalLessons <= 0 {
		return 0
	}
	pct := int(math.Floor(100*float64(completedLessons)/float64(totalLessons) + 0.5))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// studentName is the resolved naming of an enrollment record. The server
// sends either separate first/last fields or a single full-name string;
// resolution happens exactly once, at ingestion.
type studentName struct {
	first string
	last  string
}

// resolveName prefers separate fields, then splits a full name on
// whitespace (first token / remaining tokens), then falls back to the
// placeholder.
func resolveName(e api.Enrollment) studentName {
	if e.StudentFirstName != "" && e.StudentLastName != "" {
		return studentName{first: e.StudentFirstName, last: e.StudentLastName}
	}
	if parts := strings.Fields(e.StudentName); len(parts) > 0 {
		n := studentName{first: parts[0], last: strings.Join(parts[1:], " ")}
		if n.last == "" {
			n.last = "Student"
		}
		return n
	}
	return studentName{first: "Unknown", last: "Student"}
}

// AggregateStudentProgress groups enrollment records by student. Output
// order is the insertion order of first-seen studentId; per-student course
// entries keep input order. Identity fields are taken from the first record
// seen for a student.
func AggregateStudentProgress(enrollments []api.Enrollment) []StudentAggregate {
	index := make(map[int64]int)
	aggregates := make([]StudentAggregate, 0, len(enrollments))

	for _, e := range enrollments {
		i, seen := index[e.StudentID]
		if !seen {
			name := resolveName(e)
			agg := StudentAggregate{
				StudentID: e.StudentID,
				FirstName: name.first,
				LastName:  name.last,
				Username:  e.StudentUsername,
				Email:     e.StudentEmail,
			}
			if agg.Username == "" {
				agg.Username = fmt.Sprintf("student%d", e.StudentID)
			}
			if agg.Email == "" {
				agg.Email = fmt.Sprintf("student%d@example.com", e.StudentID)
			}
			i = len(aggregates)
			index[e.StudentID] = i
			aggregates = append(aggregates, agg)
		}

		pct := CompletionPercentage(e.CompletedLessons, e.TotalLessons)
		aggregates[i].Enrollments = append(aggregates[i].Enrollments, CourseEntry{
			CourseID:         e.CourseID,
			CourseName:       e.CourseTitle,
			EnrolledAt:       e.EnrolledAt,
			Progress:         pct,
			Completed:        pct >= 100,
			TotalLessons:     e.TotalLessons,
			CompletedLessons: e.CompletedLessons,
		})
	}

	return aggregates
}

// SummarizeStats computes the dashboard counters over aggregates.
func SummarizeStats(aggregates []StudentAggregate) Stats {
	stats := Stats{TotalStudents: len(aggregates)}

	courses := make(map[int64]struct{})
	for _, agg := range aggregates {
		stats.TotalEnrollments += len(agg.Enrollments)
		active := false
		for _, e := range agg.Enrollments {
			courses[e.CourseID] = struct{}{}
			if !e.Completed {
				active = true
			}
		}
		if active {
			stats.ActiveStudents++
		}
	}
	stats.UniqueCourses = len(courses)
	return stats
}

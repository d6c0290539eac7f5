package views

import (
	"context"
	"fmt"
	"sort"

	"github.com/learnhub-io/learnhub-cli/internal/api"
	"github.com/learnhub-io/learnhub-cli/internal/progress"
)

// StudentDashboard summarizes the caller's own enrollments.
type StudentDashboard struct {
	Enrollments []api.Enrollment
	Total       int
	Completed   int
	InProgress  int
	NotStarted  int
	// Recent holds up to three enrollments, most recent first.
	Recent   []api.Enrollment
	Problems []error
}

// LoadStudentDashboard fetches every enrollment page and derives the
// completion breakdown. Percentages are recomputed from lesson counts
// rather than trusted from the server.
func (l *Loader) LoadStudentDashboard(ctx context.Context) StudentDashboard {
	var dash StudentDashboard
	var g group

	g.Go(func() error {
		enrollments, err := allPages(ctx, l.client.MyEnrollments)
		if err != nil {
			return fmt.Errorf("enrollments: %w", err)
		}
		dash.Enrollments = enrollments
		return nil
	})
	dash.Problems = g.Wait()

	dash.Total = len(dash.Enrollments)
	for _, e := range dash.Enrollments {
		switch pct := progress.CompletionPercentage(e.CompletedLessons, e.TotalLessons); {
		case pct >= 100:
			dash.Completed++
		case pct > 0:
			dash.InProgress++
		default:
			dash.NotStarted++
		}
	}

	recent := make([]api.Enrollment, len(dash.Enrollments))
	copy(recent, dash.Enrollments)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].EnrolledAt.After(recent[j].EnrolledAt)
	})
	if len(recent) > 3 {
		recent = recent[:3]
	}
	dash.Recent = recent
	return dash
}

// InstructorDashboard summarizes the caller's courses and students.
type InstructorDashboard struct {
	Courses   []api.Course
	Published int
	Pending   int
	Drafts    int
	Students  []progress.StudentAggregate
	Stats     progress.Stats
	Problems  []error
}

// LoadInstructorDashboard fetches the instructor's courses and student
// enrollments concurrently and aggregates the student progress.
func (l *Loader) LoadInstructorDashboard(ctx context.Context) InstructorDashboard {
	var dash InstructorDashboard
	var enrollments []api.Enrollment
	var g group

	g.Go(func() error {
		courses, err := allPages(ctx, l.client.MyCourses)
		if err != nil {
			return fmt.Errorf("courses: %w", err)
		}
		dash.Courses = courses
		return nil
	})
	g.Go(func() error {
		records, err := allPages(ctx, l.client.MyStudents)
		if err != nil {
			return fmt.Errorf("students: %w", err)
		}
		enrollments = records
		return nil
	})
	dash.Problems = g.Wait()

	for _, c := range dash.Courses {
		switch c.Status {
		case api.CourseStatusPublished:
			dash.Published++
		case api.CourseStatusPending:
			dash.Pending++
		case api.CourseStatusDraft:
			dash.Drafts++
		}
	}
	dash.Students = progress.AggregateStudentProgress(enrollments)
	dash.Stats = progress.SummarizeStats(dash.Students)
	return dash
}

// AdminDashboard summarizes platform-wide totals.
type AdminDashboard struct {
	TotalUsers       int
	TotalCourses     int
	TotalEnrollments int
	PendingCourses   []api.Course
	Problems         []error
}

// LoadAdminDashboard fetches the platform totals concurrently. Totals
// come from page envelopes, so only the first page of each list is
// requested.
func (l *Loader) LoadAdminDashboard(ctx context.Context) AdminDashboard {
	var dash AdminDashboard
	var g group
	first := api.PageParams{Page: 0, Size: 1}

	g.Go(func() error {
		page, err := l.client.AllUsers(ctx, first)
		if err != nil {
			return fmt.Errorf("users: %w", err)
		}
		dash.TotalUsers = page.TotalElements
		return nil
	})
	g.Go(func() error {
		page, err := l.client.AllCourses(ctx, first)
		if err != nil {
			return fmt.Errorf("courses: %w", err)
		}
		dash.TotalCourses = page.TotalElements
		return nil
	})
	g.Go(func() error {
		page, err := l.client.AllEnrollments(ctx, first)
		if err != nil {
			return fmt.Errorf("enrollments: %w", err)
		}
		dash.TotalEnrollments = page.TotalElements
		return nil
	})
	g.Go(func() error {
		pending, err := allPages(ctx, l.client.PendingCourses)
		if err != nil {
			return fmt.Errorf("pending courses: %w", err)
		}
		dash.PendingCourses = pending
		return nil
	})

	dash.Problems = g.Wait()
	return dash
}

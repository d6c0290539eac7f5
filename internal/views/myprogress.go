package views

import (
	"context"
	"fmt"

	"github.com/learnhub-io/learnhub-cli/internal/api"
	"github.com/learnhub-io/learnhub-cli/internal/progress"
)

// MyProgress is the self-view of the caller's learning progress.
type MyProgress struct {
	Courses  []progress.CourseEntry
	Total    int
	Average  int // mean completion percentage, 0 when no enrollments
	Problems []error
}

// LoadMyProgress fetches every enrollment and recomputes per-course
// completion from lesson counts.
func (l *Loader) LoadMyProgress(ctx context.Context) MyProgress {
	var view MyProgress
	var enrollments []api.Enrollment
	var g group

	g.Go(func() error {
		records, err := allPages(ctx, l.client.MyEnrollments)
		if err != nil {
			return fmt.Errorf("enrollments: %w", err)
		}
		enrollments = records
		return nil
	})
	view.Problems = g.Wait()

	aggregates := progress.AggregateStudentProgress(enrollments)
	if len(aggregates) > 0 {
		// the self view is a single student by construction
		view.Courses = aggregates[0].Enrollments
	}
	view.Total = len(view.Courses)

	if view.Total > 0 {
		sum := 0
		for _, c := range view.Courses {
			sum += c.Progress
		}
		view.Average = sum / view.Total
	}
	return view
}

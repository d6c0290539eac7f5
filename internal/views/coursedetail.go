package views

import (
	"context"
	"fmt"

	"github.com/learnhub-io/learnhub-cli/internal/api"
)

// CourseDetail is everything the course screen shows. Fields whose
// fetch failed keep their zero value; the failure is in Problems.
type CourseDetail struct {
	Course      api.Course
	Lessons     []api.Lesson
	Reviews     []api.Review
	Discussions []api.Discussion
	Enrolled    bool

	// Problems holds per-fetch failures. The view is still renderable
	// when it is non-empty.
	Problems []error
}

// LoadCourseDetail fetches the course, its lessons, reviews and
// discussions concurrently. Enrollment status is only checked when
// authenticated is true.
func (l *Loader) LoadCourseDetail(ctx context.Context, courseID int64, authenticated bool) CourseDetail {
	var detail CourseDetail
	var g group

	g.Go(func() error {
		course, err := l.client.GetCourse(ctx, courseID)
		if err != nil {
			return fmt.Errorf("course: %w", err)
		}
		detail.Course = course
		return nil
	})
	g.Go(func() error {
		lessons, err := l.client.ListLessons(ctx, courseID)
		if err != nil {
			return fmt.Errorf("lessons: %w", err)
		}
		detail.Lessons = lessons
		return nil
	})
	g.Go(func() error {
		reviews, err := l.client.ListReviews(ctx, courseID)
		if err != nil {
			return fmt.Errorf("reviews: %w", err)
		}
		detail.Reviews = reviews
		return nil
	})
	g.Go(func() error {
		discussions, err := l.client.ListDiscussions(ctx, courseID, "recent")
		if err != nil {
			return fmt.Errorf("discussions: %w", err)
		}
		detail.Discussions = discussions
		return nil
	})
	if authenticated {
		g.Go(func() error {
			enrolled, err := l.client.CheckEnrollment(ctx, courseID)
			if err != nil {
				return fmt.Errorf("enrollment status: %w", err)
			}
			detail.Enrolled = enrolled
			return nil
		})
	}

	detail.Problems = g.Wait()
	return detail
}

// LessonState pairs a lesson with its completion status.
type LessonState struct {
	Lesson    api.Lesson
	Completed bool
}

// CourseWork is the enrolled-student working view of a course: the
// lesson list joined with per-lesson completion.
type CourseWork struct {
	Course   api.Course
	Lessons  []LessonState
	Done     int
	Problems []error
}

// LoadCourseWork fetches the course, lessons and the caller's lesson
// progress concurrently and joins them by lesson id.
func (l *Loader) LoadCourseWork(ctx context.Context, courseID int64) CourseWork {
	var work CourseWork
	var lessons []api.Lesson
	var records []api.LessonProgress
	var g group

	g.Go(func() error {
		course, err := l.client.GetCourse(ctx, courseID)
		if err != nil {
			return fmt.Errorf("course: %w", err)
		}
		work.Course = course
		return nil
	})
	g.Go(func() error {
		ls, err := l.client.ListLessons(ctx, courseID)
		if err != nil {
			return fmt.Errorf("lessons: %w", err)
		}
		lessons = ls
		return nil
	})
	g.Go(func() error {
		recs, err := l.client.CourseProgress(ctx, courseID)
		if err != nil {
			return fmt.Errorf("progress: %w", err)
		}
		records = recs
		return nil
	})
	work.Problems = g.Wait()

	completed := make(map[int64]bool, len(records))
	for _, r := range records {
		if r.Completed {
			completed[r.LessonID] = true
		}
	}
	for _, lesson := range lessons {
		state := LessonState{Lesson: lesson, Completed: completed[lesson.ID]}
		if state.Completed {
			work.Done++
		}
		work.Lessons = append(work.Lessons, state)
	}
	return work
}

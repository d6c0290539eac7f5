package views

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/learnhub-io/learnhub-cli/internal/api"
	"github.com/learnhub-io/learnhub-cli/internal/progress"
)

// ErrCourseIncomplete is returned when a certificate is requested for
// a course the student has not finished.
var ErrCourseIncomplete = errors.New("course is not complete")

// Certificate holds the data printed on a completion certificate.
type Certificate struct {
	StudentName  string
	CourseTitle  string
	Instructor   string
	TotalLessons int
	CompletedAt  time.Time
}

// BuildCertificate verifies that the named course is fully complete
// for the given identity and assembles the certificate data. A course
// with no lessons is never considered complete.
func (l *Loader) BuildCertificate(ctx context.Context, identity api.Identity, courseID int64) (Certificate, error) {
	var enrollment api.Enrollment
	found := false

	enrollments, err := allPages(ctx, l.client.MyEnrollments)
	if err != nil {
		return Certificate{}, fmt.Errorf("enrollments: %w", err)
	}
	for _, e := range enrollments {
		if e.CourseID == courseID {
			enrollment = e
			found = true
			break
		}
	}
	if !found {
		return Certificate{}, fmt.Errorf("not enrolled in course %d", courseID)
	}

	if progress.CompletionPercentage(enrollment.CompletedLessons, enrollment.TotalLessons) < 100 {
		return Certificate{}, ErrCourseIncomplete
	}

	course, err := l.client.GetCourse(ctx, courseID)
	if err != nil {
		return Certificate{}, fmt.Errorf("course: %w", err)
	}

	// prefer the latest lesson completion time when available
	completedAt := time.Now()
	if records, err := l.client.CourseProgress(ctx, courseID); err == nil {
		var latest time.Time
		for _, r := range records {
			if r.CompletedAt != nil && r.CompletedAt.After(latest) {
				latest = *r.CompletedAt
			}
		}
		if !latest.IsZero() {
			completedAt = latest
		}
	}

	name := identity.FirstName + " " + identity.LastName
	if identity.FirstName == "" && identity.LastName == "" {
		name = identity.Username
	}

	return Certificate{
		StudentName:  name,
		CourseTitle:  course.Title,
		Instructor:   course.InstructorName,
		TotalLessons: enrollment.TotalLessons,
		CompletedAt:  completedAt,
	}, nil
}

package api

import (
	"context"
	"fmt"
)

// Enroll enrolls the caller in a published course.
func (c *Client) Enroll(ctx context.Context, courseID int64) (Enrollment, error) {
	var e Enrollment
	err := c.post(ctx, fmt.Sprintf("/enrollments/enroll/%d", courseID), nil, &e)
	return e, err
}

// MyEnrollments returns a page of the caller's enrollments.
func (c *Client) MyEnrollments(ctx context.Context, p PageParams) (Page[Enrollment], error) {
	var page Page[Enrollment]
	err := c.get(ctx, "/enrollments/my-enrollments", pageQuery(p), &page)
	return page, err
}

// Unenroll removes an enrollment, clearing its lesson progress with it.
func (c *Client) Unenroll(ctx context.Context, enrollmentID int64) error {
	return c.delete(ctx, fmt.Sprintf("/enrollments/%d/unenroll", enrollmentID))
}

// CheckEnrollment reports whether the caller is enrolled in the course.
func (c *Client) CheckEnrollment(ctx context.Context, courseID int64) (bool, error) {
	var enrolled bool
	err := c.get(ctx, fmt.Sprintf("/enrollments/check/%d", courseID), nil, &enrolled)
	return enrolled, err
}

// SetLessonComplete toggles the caller's completion state for one lesson.
// The progress record is created on the first toggle.
func (c *Client) SetLessonComplete(ctx context.Context, courseID, lessonID int64, completed bool) (LessonProgress, error) {
	action := "incomplete"
	if completed {
		action = "complete"
	}
	var p LessonProgress
	err := c.post(ctx, fmt.Sprintf("/enrollments/progress/%d/lessons/%d/%s", courseID, lessonID, action), nil, &p)
	return p, err
}

// CourseProgress returns the caller's per-lesson progress for a course.
func (c *Client) CourseProgress(ctx context.Context, courseID int64) ([]LessonProgress, error) {
	var progress []LessonProgress
	err := c.get(ctx, fmt.Sprintf("/enrollments/progress/%d", courseID), nil, &progress)
	return progress, err
}

// GetLessonProgress returns the caller's progress for a single lesson.
func (c *Client) GetLessonProgress(ctx context.Context, courseID, lessonID int64) (LessonProgress, error) {
	var p LessonProgress
	err := c.get(ctx, fmt.Sprintf("/enrollments/progress/%d/lessons/%d", courseID, lessonID), nil, &p)
	return p, err
}

// Instructor endpoints.

// MyStudents returns enrollment records across the caller's courses, one
// record per (student, course) pair.
func (c *Client) MyStudents(ctx context.Context, p PageParams) (Page[Enrollment], error) {
	var page Page[Enrollment]
	err := c.get(ctx, "/enrollments/instructor/my-students", pageQuery(p), &page)
	return page, err
}

// CourseEnrollments returns the enrollments of one of the caller's courses.
func (c *Client) CourseEnrollments(ctx context.Context, courseID int64, p PageParams) (Page[Enrollment], error) {
	var page Page[Enrollment]
	err := c.get(ctx, fmt.Sprintf("/enrollments/course/%d", courseID), pageQuery(p), &page)
	return page, err
}

// Admin endpoints.

// AllEnrollments returns every enrollment on the platform.
func (c *Client) AllEnrollments(ctx context.Context, p PageParams) (Page[Enrollment], error) {
	var page Page[Enrollment]
	err := c.get(ctx, "/enrollments/admin/all", pageQuery(p), &page)
	return page, err
}

// AdminDeleteEnrollment removes any enrollment.
func (c *Client) AdminDeleteEnrollment(ctx context.Context, enrollmentID int64) error {
	return c.delete(ctx, fmt.Sprintf("/enrollments/admin/%d", enrollmentID))
}

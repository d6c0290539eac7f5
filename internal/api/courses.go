package api

import (
	"context"
	"fmt"
	"net/url"
)

// ListPublishedCourses returns a page of the public catalog.
func (c *Client) ListPublishedCourses(ctx context.Context, p PageParams) (Page[Course], error) {
	var page Page[Course]
	err := c.get(ctx, "/courses/public", pageQuery(p), &page)
	return page, err
}

// SearchCourses searches the public catalog.
func (c *Client) SearchCourses(ctx context.Context, query string, p PageParams) (Page[Course], error) {
	q := pageQuery(p)
	q.Set("query", query)
	var page Page[Course]
	err := c.get(ctx, "/courses/public/search", q, &page)
	return page, err
}

// GetCourse fetches a single published course.
func (c *Client) GetCourse(ctx context.Context, id int64) (Course, error) {
	var course Course
	err := c.get(ctx, fmt.Sprintf("/courses/public/%d", id), nil, &course)
	return course, err
}

// ListLessons returns the ordered lessons of a course.
func (c *Client) ListLessons(ctx context.Context, courseID int64) ([]Lesson, error) {
	var lessons []Lesson
	err := c.get(ctx, fmt.Sprintf("/courses/public/%d/lessons", courseID), nil, &lessons)
	return lessons, err
}

// Instructor endpoints.

// CreateCourse creates a draft course owned by the caller.
func (c *Client) CreateCourse(ctx context.Context, draft CourseDraft) (Course, error) {
	var course Course
	err := c.post(ctx, "/courses", draft, &course)
	return course, err
}

// UpdateCourse updates a course the caller owns.
func (c *Client) UpdateCourse(ctx context.Context, id int64, draft CourseDraft) (Course, error) {
	var course Course
	err := c.put(ctx, fmt.Sprintf("/courses/%d", id), draft, &course)
	return course, err
}

// MyCourses returns the caller's own courses in any status.
func (c *Client) MyCourses(ctx context.Context, p PageParams) (Page[Course], error) {
	var page Page[Course]
	err := c.get(ctx, "/courses/my-courses", pageQuery(p), &page)
	return page, err
}

// SubmitForApproval moves a draft course to PENDING.
func (c *Client) SubmitForApproval(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/courses/%d/submit", id), nil, nil)
}

// DeleteCourse deletes a course the caller owns.
func (c *Client) DeleteCourse(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/courses/%d", id))
}

// AddLesson appends a lesson to a course.
func (c *Client) AddLesson(ctx context.Context, courseID int64, draft LessonDraft) (Lesson, error) {
	var lesson Lesson
	err := c.post(ctx, fmt.Sprintf("/courses/%d/lessons", courseID), draft, &lesson)
	return lesson, err
}

// UpdateLesson updates a lesson.
func (c *Client) UpdateLesson(ctx context.Context, courseID, lessonID int64, draft LessonDraft) (Lesson, error) {
	var lesson Lesson
	err := c.put(ctx, fmt.Sprintf("/courses/%d/lessons/%d", courseID, lessonID), draft, &lesson)
	return lesson, err
}

// DeleteLesson removes a lesson from a course.
func (c *Client) DeleteLesson(ctx context.Context, courseID, lessonID int64) error {
	return c.delete(ctx, fmt.Sprintf("/courses/%d/lessons/%d", courseID, lessonID))
}

// Reviews and discussions.

// ListReviews returns the reviews of a published course.
func (c *Client) ListReviews(ctx context.Context, courseID int64) ([]Review, error) {
	var reviews []Review
	err := c.get(ctx, fmt.Sprintf("/courses/public/%d/reviews", courseID), nil, &reviews)
	return reviews, err
}

// SubmitReview posts a review for a course the caller is enrolled in.
func (c *Client) SubmitReview(ctx context.Context, courseID int64, req ReviewRequest) (Review, error) {
	var review Review
	err := c.post(ctx, fmt.Sprintf("/courses/%d/reviews", courseID), req, &review)
	return review, err
}

// ListDiscussions returns the discussion threads of a course. sortBy is
// passed through to the server ("recent", "popular", ...).
func (c *Client) ListDiscussions(ctx context.Context, courseID int64, sortBy string) ([]Discussion, error) {
	q := url.Values{}
	if sortBy != "" {
		q.Set("sortBy", sortBy)
	}
	var discussions []Discussion
	err := c.get(ctx, fmt.Sprintf("/courses/%d/discussions", courseID), q, &discussions)
	return discussions, err
}

// CreateDiscussion starts a discussion thread on a course.
func (c *Client) CreateDiscussion(ctx context.Context, courseID int64, req DiscussionRequest) (Discussion, error) {
	var d Discussion
	err := c.post(ctx, fmt.Sprintf("/courses/%d/discussions", courseID), req, &d)
	return d, err
}

// ReplyToDiscussion replies to a thread.
func (c *Client) ReplyToDiscussion(ctx context.Context, courseID, discussionID int64, req ReplyRequest) (DiscussionReply, error) {
	var r DiscussionReply
	err := c.post(ctx, fmt.Sprintf("/courses/%d/discussions/%d/replies", courseID, discussionID), req, &r)
	return r, err
}

// LikeDiscussion likes a thread.
func (c *Client) LikeDiscussion(ctx context.Context, courseID, discussionID int64) error {
	return c.post(ctx, fmt.Sprintf("/courses/%d/discussions/%d/like", courseID, discussionID), nil, nil)
}

// ReportDiscussion flags a thread for moderation.
func (c *Client) ReportDiscussion(ctx context.Context, courseID, discussionID int64) error {
	return c.post(ctx, fmt.Sprintf("/courses/%d/discussions/%d/report", courseID, discussionID), nil, nil)
}

// Admin endpoints.

// AdminCreateCourse creates a course on behalf of an instructor.
func (c *Client) AdminCreateCourse(ctx context.Context, draft AdminCourseDraft) (Course, error) {
	var course Course
	err := c.post(ctx, "/courses/admin/create", draft, &course)
	return course, err
}

// AllCourses returns every course regardless of status.
func (c *Client) AllCourses(ctx context.Context, p PageParams) (Page[Course], error) {
	var page Page[Course]
	err := c.get(ctx, "/courses/admin/all", pageQuery(p), &page)
	return page, err
}

// PendingCourses returns courses awaiting approval.
func (c *Client) PendingCourses(ctx context.Context, p PageParams) (Page[Course], error) {
	var page Page[Course]
	err := c.get(ctx, "/courses/admin/pending", pageQuery(p), &page)
	return page, err
}

// ApproveCourse publishes a pending course.
func (c *Client) ApproveCourse(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/courses/admin/%d/approve", id), nil, nil)
}

// RejectCourse rejects a pending course.
func (c *Client) RejectCourse(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/courses/admin/%d/reject", id), nil, nil)
}

// AdminDeleteCourse deletes any course.
func (c *Client) AdminDeleteCourse(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/courses/admin/%d", id))
}

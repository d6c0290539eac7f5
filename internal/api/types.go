package api

import "time"

// Course publication states as the server reports them.
const (
	CourseStatusDraft     = "DRAFT"
	CourseStatusPending   = "PENDING"
	CourseStatusPublished = "PUBLISHED"
	CourseStatusRejected  = "REJECTED"
)

// Page is the envelope every list endpoint returns.
type Page[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// PageParams selects a page of a list endpoint. Pages are zero-based.
type PageParams struct {
	Page int
	Size int
}

// Credentials is the sign-in request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the sign-up request body.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role,omitempty"`
}

// Identity is the authenticated account as the server describes it.
type Identity struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// AuthResponse is the sign-in response: a bearer token plus the identity
// fields flattened alongside it.
type AuthResponse struct {
	Token string `json:"token"`
	Identity
}

// Course is a course record.
type Course struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category,omitempty"`
	InstructorID    int64     `json:"instructorId"`
	InstructorName  string    `json:"instructorName"`
	Status          string    `json:"status"`
	TotalLessons    int       `json:"totalLessons"`
	EnrollmentCount int       `json:"enrollmentCount"`
	AverageRating   *float64  `json:"averageRating,omitempty"`
	ThumbnailURL    string    `json:"thumbnailUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitzero"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero"`
}

// CourseDraft is the create/update request body for a course.
type CourseDraft struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// AdminCourseDraft creates a course on behalf of an instructor.
type AdminCourseDraft struct {
	CourseDraft
	InstructorID int64 `json:"instructorId"`
}

// Lesson is a lesson within a course.
type Lesson struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content,omitempty"`
	VideoURL   string `json:"videoUrl,omitempty"`
	OrderIndex int    `json:"orderIndex"`
}

// LessonDraft is the create/update request body for a lesson.
type LessonDraft struct {
	Title      string `json:"title"`
	Content    string `json:"content,omitempty"`
	VideoURL   string `json:"videoUrl,omitempty"`
	OrderIndex int    `json:"orderIndex"`
}

// Enrollment associates a student with a course and carries progress state.
// Student naming comes in two server formats: separate first/last fields or
// a single full-name string; progress resolves them once at aggregation.
type Enrollment struct {
	ID                 int64     `json:"id"`
	StudentID          int64     `json:"studentId"`
	StudentName        string    `json:"studentName,omitempty"`
	StudentFirstName   string    `json:"studentFirstName,omitempty"`
	StudentLastName    string    `json:"studentLastName,omitempty"`
	StudentUsername    string    `json:"studentUsername,omitempty"`
	StudentEmail       string    `json:"studentEmail,omitempty"`
	CourseID           int64     `json:"courseId"`
	CourseTitle        string    `json:"courseTitle"`
	CompletedLessons   int       `json:"completedLessons"`
	TotalLessons       int       `json:"totalLessons"`
	ProgressPercentage float64   `json:"progressPercentage"`
	EnrolledAt         time.Time `json:"enrolledAt"`
}

// LessonProgress is the per-lesson completion record for an enrollment.
type LessonProgress struct {
	ID          int64      `json:"id"`
	LessonID    int64      `json:"lessonId"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Review is a course review.
type Review struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"courseId"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// ReviewRequest submits a course review.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Discussion is a course discussion thread.
type Discussion struct {
	ID        int64             `json:"id"`
	CourseID  int64             `json:"courseId"`
	Author    string            `json:"author"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Likes     int               `json:"likes"`
	Replies   []DiscussionReply `json:"replies,omitempty"`
	CreatedAt time.Time         `json:"createdAt,omitzero"`
}

// DiscussionReply is a reply within a discussion thread.
type DiscussionReply struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// DiscussionRequest creates a discussion thread.
type DiscussionRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ReplyRequest replies to a discussion thread.
type ReplyRequest struct {
	Content string `json:"content"`
}

// User is an account record from the admin user endpoints.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
}

// UserUpdate is the admin user update request body.
type UserUpdate struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role,omitempty"`
}

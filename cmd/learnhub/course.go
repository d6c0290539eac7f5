package main

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/learnhub-io/learnhub-cli/internal/api"
)

func (a *app) cmdCourse(ctx context.Context, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}
	if !a.session.IsInstructor() && !a.session.IsAdmin() {
		return fmt.Errorf("course management requires an instructor account")
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: learnhub course <mine|create|update|submit|delete|lesson|enrollments>")
	}

	switch args[0] {
	case "mine":
		return a.courseMine(ctx)
	case "enrollments":
		return a.courseEnrollments(ctx, args[1:])
	case "create":
		return a.courseCreate(ctx, args[1:])
	case "update":
		return a.courseUpdate(ctx, args[1:])
	case "submit":
		return a.courseSubmit(ctx, args[1:])
	case "delete":
		return a.courseDelete(ctx, args[1:])
	case "lesson":
		return a.courseLesson(ctx, args[1:])
	default:
		return fmt.Errorf("unknown course subcommand %q", args[0])
	}
}

func (a *app) courseMine(ctx context.Context) error {
	page, err := a.client.MyCourses(ctx, api.PageParams{Page: 0, Size: 50})
	if err != nil {
		return fmt.Errorf("list my courses: %w", err)
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tLESSONS\tENROLLED")
	for _, c := range page.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", c.ID, c.Title, c.Status, c.TotalLessons, c.EnrollmentCount)
	}
	w.Flush()
	return nil
}

// courseEnrollments lists who is enrolled in one of the caller's courses.
func (a *app) courseEnrollments(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: learnhub course enrollments <course-id>")
	}
	id, err := parseID(args[0], "course")
	if err != nil {
		return err
	}

	page, err := a.client.CourseEnrollments(ctx, id, api.PageParams{Page: 0, Size: 50})
	if err != nil {
		return fmt.Errorf("list enrollments: %w", err)
	}
	if len(page.Content) == 0 {
		fmt.Fprintln(a.out, "No students enrolled yet.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ENROLLMENT\tSTUDENT\tLESSONS\tENROLLED AT")
	for _, e := range page.Content {
		name := e.StudentName
		if name == "" {
			name = e.StudentUsername
		}
		enrolled := ""
		if !e.EnrolledAt.IsZero() {
			enrolled = e.EnrolledAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%d\t%s\t%d/%d\t%s\n", e.ID, name, e.CompletedLessons, e.TotalLessons, enrolled)
	}
	w.Flush()
	fmt.Fprintf(a.out, "%d enrollments total\n", page.TotalElements)
	return nil
}

func courseDraftFlags(fs *flag.FlagSet) (title, description, category *string) {
	title = fs.String("title", "", "course title")
	description = fs.String("description", "", "course description")
	category = fs.String("category", "", "course category")
	return
}

func (a *app) courseCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("course create", flag.ContinueOnError)
	title, description, category := courseDraftFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" {
		return fmt.Errorf("course create requires --title")
	}

	course, err := a.client.CreateCourse(ctx, api.CourseDraft{
		Title:       *title,
		Description: *description,
		Category:    *category,
	})
	if err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	fmt.Fprintf(a.out, "Created draft course #%d %q\n", course.ID, course.Title)
	return nil
}

func (a *app) courseUpdate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: learnhub course update <id> [flags]")
	}
	id, err := parseID(args[0], "course")
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("course update", flag.ContinueOnError)
	title, description, category := courseDraftFlags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	course, err := a.client.UpdateCourse(ctx, id, api.CourseDraft{
		Title:       *title,
		Description: *description,
		Category:    *category,
	})
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	fmt.Fprintf(a.out, "Updated course #%d %q\n", course.ID, course.Title)
	return nil
}

func (a *app) courseSubmit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: learnhub course submit <id>")
	}
	id, err := parseID(args[0], "course")
	if err != nil {
		return err
	}
	if err := a.client.SubmitForApproval(ctx, id); err != nil {
		return fmt.Errorf("submit course: %w", err)
	}
	fmt.Fprintf(a.out, "Submitted course #%d for approval\n", id)
	return nil
}

func (a *app) courseDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: learnhub course delete <id>")
	}
	id, err := parseID(args[0], "course")
	if err != nil {
		return err
	}
	if err := a.client.DeleteCourse(ctx, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	fmt.Fprintf(a.out, "Deleted course #%d\n", id)
	return nil
}

func (a *app) courseLesson(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: learnhub course lesson <add|update|delete> <course-id> ...")
	}
	courseID, err := parseID(args[1], "course")
	if err != nil {
		return err
	}

	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("course lesson add", flag.ContinueOnError)
		title := fs.String("title", "", "lesson title")
		content := fs.String("content", "", "lesson content")
		video := fs.String("video-url", "", "lesson video URL")
		order := fs.Int("order", 0, "position within the course")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *title == "" {
			return fmt.Errorf("lesson add requires --title")
		}
		lesson, err := a.client.AddLesson(ctx, courseID, api.LessonDraft{
			Title:      *title,
			Content:    *content,
			VideoURL:   *video,
			OrderIndex: *order,
		})
		if err != nil {
			return fmt.Errorf("add lesson: %w", err)
		}
		fmt.Fprintf(a.out, "Added lesson #%d %q\n", lesson.ID, lesson.Title)
		return nil

	case "update":
		if len(args) < 3 {
			return fmt.Errorf("usage: learnhub course lesson update <course-id> <lesson-id> [flags]")
		}
		lessonID, err := parseID(args[2], "lesson")
		if err != nil {
			return err
		}
		fs := flag.NewFlagSet("course lesson update", flag.ContinueOnError)
		title := fs.String("title", "", "lesson title")
		content := fs.String("content", "", "lesson content")
		video := fs.String("video-url", "", "lesson video URL")
		order := fs.Int("order", 0, "position within the course")
		if err := fs.Parse(args[3:]); err != nil {
			return err
		}
		lesson, err := a.client.UpdateLesson(ctx, courseID, lessonID, api.LessonDraft{
			Title:      *title,
			Content:    *content,
			VideoURL:   *video,
			OrderIndex: *order,
		})
		if err != nil {
			return fmt.Errorf("update lesson: %w", err)
		}
		fmt.Fprintf(a.out, "Updated lesson #%d %q\n", lesson.ID, lesson.Title)
		return nil

	case "delete":
		if len(args) != 3 {
			return fmt.Errorf("usage: learnhub course lesson delete <course-id> <lesson-id>")
		}
		lessonID, err := parseID(args[2], "lesson")
		if err != nil {
			return err
		}
		if err := a.client.DeleteLesson(ctx, courseID, lessonID); err != nil {
			return fmt.Errorf("delete lesson: %w", err)
		}
		fmt.Fprintf(a.out, "Deleted lesson #%d\n", lessonID)
		return nil

	default:
		return fmt.Errorf("unknown lesson subcommand %q", args[0])
	}
}

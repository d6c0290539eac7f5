package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/learnhub-io/learnhub-cli/internal/api"
	"github.com/learnhub-io/learnhub-cli/internal/session"
)

func (a *app) cmdCourses(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.listCourses(ctx, nil)
	}
	switch args[0] {
	case "list":
		return a.listCourses(ctx, args[1:])
	case "search":
		return a.searchCourses(ctx, args[1:])
	case "show":
		return a.showCourse(ctx, args[1:])
	default:
		return fmt.Errorf("usage: learnhub courses [list|search <query>|show <id>]")
	}
}

func (a *app) listCourses(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("courses list", flag.ContinueOnError)
	page := fs.Int("page", 0, "page number")
	size := fs.Int("size", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.client.ListPublishedCourses(ctx, api.PageParams{Page: *page, Size: *size})
	if err != nil {
		return fmt.Errorf("list courses: %w", err)
	}
	a.printCoursePage(result, *page)
	return nil
}

func (a *app) searchCourses(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("courses search", flag.ContinueOnError)
	page := fs.Int("page", 0, "page number")
	size := fs.Int("size", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	query := strings.Join(fs.Args(), " ")
	if query == "" {
		return fmt.Errorf("usage: learnhub courses search <query>")
	}

	result, err := a.client.SearchCourses(ctx, query, api.PageParams{Page: *page, Size: *size})
	if err != nil {
		return fmt.Errorf("search courses: %w", err)
	}
	a.printCoursePage(result, *page)
	return nil
}

func (a *app) showCourse(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: learnhub courses show <id>")
	}
	id, err := parseID(args[0], "course")
	if err != nil {
		return err
	}

	detail := a.views.LoadCourseDetail(ctx, id, a.session.State() == session.Authenticated)
	a.reportProblems(detail.Problems)

	c := detail.Course
	fmt.Fprintf(a.out, "%s (#%d)\n", c.Title, c.ID)
	if c.InstructorName != "" {
		fmt.Fprintf(a.out, "Instructor: %s\n", c.InstructorName)
	}
	if c.AverageRating != nil {
		fmt.Fprintf(a.out, "Rating:     %.1f\n", *c.AverageRating)
	}
	fmt.Fprintf(a.out, "Lessons:    %d\nEnrolled:   %d students\n", c.TotalLessons, c.EnrollmentCount)
	if detail.Enrolled {
		fmt.Fprintln(a.out, "You are enrolled in this course.")
	}
	if c.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", c.Description)
	}

	if len(detail.Lessons) > 0 {
		fmt.Fprintln(a.out, "\nLessons:")
		for i, l := range detail.Lessons {
			fmt.Fprintf(a.out, "  %2d. %s\n", i+1, l.Title)
		}
	}
	if len(detail.Reviews) > 0 {
		fmt.Fprintln(a.out, "\nReviews:")
		for _, r := range detail.Reviews {
			fmt.Fprintf(a.out, "  %s %s: %s\n", stars(r.Rating), r.Author, r.Comment)
		}
	}
	if len(detail.Discussions) > 0 {
		fmt.Fprintf(a.out, "\n%d discussion threads\n", len(detail.Discussions))
	}
	return nil
}

func (a *app) printCoursePage(page api.Page[api.Course], pageNum int) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tINSTRUCTOR\tLESSONS\tRATING")
	for _, c := range page.Content {
		rating := "-"
		if c.AverageRating != nil {
			rating = fmt.Sprintf("%.1f", *c.AverageRating)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", c.ID, c.Title, c.InstructorName, c.TotalLessons, rating)
	}
	w.Flush()
	fmt.Fprintf(a.out, "Page %d of %d (%d courses)\n", pageNum+1, max(page.TotalPages, 1), page.TotalElements)
}

func (a *app) cmdEnroll(ctx context.Context, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: learnhub enroll <course-id>")
	}
	id, err := parseID(args[0], "course")
	if err != nil {
		return err
	}

	enrollment, err := a.client.Enroll(ctx, id)
	if err != nil {
		return fmt.Errorf("enroll: %w", err)
	}
	fmt.Fprintf(a.out, "Enrolled in %q (%d lessons)\n", enrollment.CourseTitle, enrollment.TotalLessons)
	return nil
}

func (a *app) cmdUnenroll(ctx context.Context, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: learnhub unenroll <enrollment-id>")
	}
	id, err := parseID(args[0], "enrollment")
	if err != nil {
		return err
	}

	if err := a.client.Unenroll(ctx, id); err != nil {
		return fmt.Errorf("unenroll: %w", err)
	}
	fmt.Fprintln(a.out, "Enrollment removed.")
	return nil
}

func (a *app) cmdLesson(ctx context.Context, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("usage: learnhub lesson <complete|incomplete|status> <course-id> <lesson-id>")
	}
	courseID, err := parseID(args[1], "course")
	if err != nil {
		return err
	}
	lessonID, err := parseID(args[2], "lesson")
	if err != nil {
		return err
	}

	switch args[0] {
	case "status":
		record, err := a.client.GetLessonProgress(ctx, courseID, lessonID)
		if err != nil {
			return fmt.Errorf("lesson progress: %w", err)
		}
		if record.Completed {
			when := ""
			if record.CompletedAt != nil {
				when = " on " + record.CompletedAt.Format("2006-01-02")
			}
			fmt.Fprintf(a.out, "Lesson #%d is complete%s.\n", lessonID, when)
		} else {
			fmt.Fprintf(a.out, "Lesson #%d is not complete.\n", lessonID)
		}
		return nil
	case "complete", "incomplete":
	default:
		return fmt.Errorf("usage: learnhub lesson <complete|incomplete|status> <course-id> <lesson-id>")
	}

	record, err := a.client.SetLessonComplete(ctx, courseID, lessonID, args[0] == "complete")
	if err != nil {
		return fmt.Errorf("update lesson: %w", err)
	}
	if record.Completed {
		fmt.Fprintln(a.out, "Lesson marked complete.")
	} else {
		fmt.Fprintln(a.out, "Lesson marked incomplete.")
	}
	return nil
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

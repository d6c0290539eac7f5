package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/learnhub-io/learnhub-cli/internal/progress"
	"github.com/learnhub-io/learnhub-cli/internal/report"
)

func (a *app) cmdProgress(ctx context.Context, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}

	view := a.views.LoadMyProgress(ctx)
	a.reportProblems(view.Problems)

	if view.Total == 0 {
		fmt.Fprintln(a.out, "No enrollments yet. Browse with `learnhub courses`.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COURSE\tPROGRESS\tLESSONS\tSTATUS")
	for _, c := range view.Courses {
		status := "in progress"
		switch {
		case c.Completed:
			status = "completed"
		case c.Progress == 0:
			status = "not started"
		}
		fmt.Fprintf(w, "%s\t%d%%\t%d/%d\t%s\n", c.CourseName, c.Progress, c.CompletedLessons, c.TotalLessons, status)
	}
	w.Flush()
	fmt.Fprintf(a.out, "%d courses, %d%% average completion\n", view.Total, view.Average)
	return nil
}

func (a *app) cmdStudents(ctx context.Context, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}
	if !a.session.IsInstructor() && !a.session.IsAdmin() {
		return fmt.Errorf("students requires an instructor account")
	}

	fs := flag.NewFlagSet("students", flag.ContinueOnError)
	search := fs.String("search", "", "filter by name, username or email")
	course := fs.String("course", "", "filter by course name")
	export := fs.String("export", "", "write an XLSX report to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dash := a.views.LoadInstructorDashboard(ctx)
	a.reportProblems(dash.Problems)

	students := progress.FilterStudents(dash.Students, *search, *course)
	stats := progress.SummarizeStats(students)

	if *export != "" {
		f, err := os.Create(*export)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		if err := report.ExportStudents(students, stats, f); err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		fmt.Fprintf(a.out, "Report written to %s\n", *export)
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STUDENT\tUSERNAME\tCOURSE\tPROGRESS")
	for _, s := range students {
		for _, e := range s.Enrollments {
			fmt.Fprintf(w, "%s %s\t%s\t%s\t%d%%\n", s.FirstName, s.LastName, s.Username, e.CourseName, e.Progress)
		}
	}
	w.Flush()
	fmt.Fprintf(a.out, "%d students, %d enrollments, %d active\n",
		stats.TotalStudents, stats.TotalEnrollments, stats.ActiveStudents)
	return nil
}

func (a *app) cmdCertificate(ctx context.Context, args []string) error {
	identity, err := a.requireAuth()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: learnhub certificate <course-id>")
	}
	id, err := parseID(args[0], "course")
	if err != nil {
		return err
	}

	cert, err := a.views.BuildCertificate(ctx, identity, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Certificate of Completion")
	fmt.Fprintln(a.out, "=========================")
	fmt.Fprintf(a.out, "Awarded to: %s\n", cert.StudentName)
	fmt.Fprintf(a.out, "Course:     %s\n", cert.CourseTitle)
	if cert.Instructor != "" {
		fmt.Fprintf(a.out, "Instructor: %s\n", cert.Instructor)
	}
	fmt.Fprintf(a.out, "Lessons:    %d\n", cert.TotalLessons)
	fmt.Fprintf(a.out, "Completed:  %s\n", cert.CompletedAt.Format("January 2, 2006"))
	return nil
}

func (a *app) cmdDashboard(ctx context.Context, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}

	switch {
	case a.session.IsAdmin():
		return a.adminDashboard(ctx)
	case a.session.IsInstructor():
		return a.instructorDashboard(ctx)
	default:
		return a.studentDashboard(ctx)
	}
}

func (a *app) studentDashboard(ctx context.Context) error {
	dash := a.views.LoadStudentDashboard(ctx)
	a.reportProblems(dash.Problems)

	fmt.Fprintf(a.out, "Enrolled courses: %d\n", dash.Total)
	fmt.Fprintf(a.out, "  completed:   %d\n", dash.Completed)
	fmt.Fprintf(a.out, "  in progress: %d\n", dash.InProgress)
	fmt.Fprintf(a.out, "  not started: %d\n", dash.NotStarted)

	if len(dash.Recent) > 0 {
		fmt.Fprintln(a.out, "\nRecent enrollments:")
		for _, e := range dash.Recent {
			fmt.Fprintf(a.out, "  %s (%d/%d lessons)\n", e.CourseTitle, e.CompletedLessons, e.TotalLessons)
		}
	}
	return nil
}

func (a *app) instructorDashboard(ctx context.Context) error {
	dash := a.views.LoadInstructorDashboard(ctx)
	a.reportProblems(dash.Problems)

	fmt.Fprintf(a.out, "Courses: %d (%d published, %d pending, %d drafts)\n",
		len(dash.Courses), dash.Published, dash.Pending, dash.Drafts)
	fmt.Fprintf(a.out, "Students: %d across %d enrollments, %d active\n",
		dash.Stats.TotalStudents, dash.Stats.TotalEnrollments, dash.Stats.ActiveStudents)
	return nil
}

func (a *app) adminDashboard(ctx context.Context) error {
	dash := a.views.LoadAdminDashboard(ctx)
	a.reportProblems(dash.Problems)

	fmt.Fprintf(a.out, "Users:       %d\n", dash.TotalUsers)
	fmt.Fprintf(a.out, "Courses:     %d\n", dash.TotalCourses)
	fmt.Fprintf(a.out, "Enrollments: %d\n", dash.TotalEnrollments)

	if len(dash.PendingCourses) > 0 {
		fmt.Fprintln(a.out, "\nAwaiting review:")
		for _, c := range dash.PendingCourses {
			fmt.Fprintf(a.out, "  #%d %s (by %s)\n", c.ID, c.Title, c.InstructorName)
		}
	}
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/learnhub-io/learnhub-cli/internal/api"
)

func (a *app) cmdAdmin(ctx context.Context, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}
	if !a.session.IsAdmin() {
		return fmt.Errorf("admin requires an administrator account")
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: learnhub admin <pending|approve|reject|courses|create-course|enrollment|users|user>")
	}

	switch args[0] {
	case "pending":
		return a.adminPending(ctx)
	case "approve":
		return a.adminReview(ctx, args[1:], true)
	case "reject":
		return a.adminReview(ctx, args[1:], false)
	case "courses":
		return a.adminCourses(ctx)
	case "create-course":
		return a.adminCreateCourse(ctx, args[1:])
	case "enrollment":
		return a.adminEnrollment(ctx, args[1:])
	case "users":
		return a.adminUsers(ctx, args[1:])
	case "user":
		return a.adminUser(ctx, args[1:])
	default:
		return fmt.Errorf("unknown admin subcommand %q", args[0])
	}
}

// adminCreateCourse creates a course on behalf of an instructor.
func (a *app) adminCreateCourse(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin create-course", flag.ContinueOnError)
	instructor := fs.Int64("instructor", 0, "instructor user id the course belongs to")
	title, description, category := courseDraftFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *instructor <= 0 || *title == "" {
		return fmt.Errorf("admin create-course requires --instructor and --title")
	}

	course, err := a.client.AdminCreateCourse(ctx, api.AdminCourseDraft{
		CourseDraft: api.CourseDraft{
			Title:       *title,
			Description: *description,
			Category:    *category,
		},
		InstructorID: *instructor,
	})
	if err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	fmt.Fprintf(a.out, "Created course #%d %q for instructor #%d\n", course.ID, course.Title, *instructor)
	return nil
}

func (a *app) adminEnrollment(ctx context.Context, args []string) error {
	if len(args) != 2 || args[0] != "delete" {
		return fmt.Errorf("usage: learnhub admin enrollment delete <enrollment-id>")
	}
	id, err := parseID(args[1], "enrollment")
	if err != nil {
		return err
	}
	if err := a.client.AdminDeleteEnrollment(ctx, id); err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	fmt.Fprintf(a.out, "Enrollment #%d deleted.\n", id)
	return nil
}

func (a *app) adminPending(ctx context.Context) error {
	page, err := a.client.PendingCourses(ctx, api.PageParams{Page: 0, Size: 50})
	if err != nil {
		return fmt.Errorf("list pending courses: %w", err)
	}
	if len(page.Content) == 0 {
		fmt.Fprintln(a.out, "No courses awaiting review.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tINSTRUCTOR\tLESSONS")
	for _, c := range page.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", c.ID, c.Title, c.InstructorName, c.TotalLessons)
	}
	w.Flush()
	return nil
}

func (a *app) adminReview(ctx context.Context, args []string, approve bool) error {
	verb := "approve"
	if !approve {
		verb = "reject"
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: learnhub admin %s <course-id>", verb)
	}
	id, err := parseID(args[0], "course")
	if err != nil {
		return err
	}

	if approve {
		err = a.client.ApproveCourse(ctx, id)
	} else {
		err = a.client.RejectCourse(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("%s course: %w", verb, err)
	}
	fmt.Fprintf(a.out, "Course #%d %sd.\n", id, verb)
	return nil
}

func (a *app) adminCourses(ctx context.Context) error {
	page, err := a.client.AllCourses(ctx, api.PageParams{Page: 0, Size: 50})
	if err != nil {
		return fmt.Errorf("list courses: %w", err)
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tINSTRUCTOR\tENROLLED")
	for _, c := range page.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", c.ID, c.Title, c.Status, c.InstructorName, c.EnrollmentCount)
	}
	w.Flush()
	fmt.Fprintf(a.out, "%d courses total\n", page.TotalElements)
	return nil
}

func (a *app) adminUsers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin users", flag.ContinueOnError)
	role := fs.String("role", "", "filter by role (STUDENT, INSTRUCTOR, ADMIN)")
	active := fs.Bool("active", false, "only active accounts")
	page := fs.Int("page", 0, "page number")
	size := fs.Int("size", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := api.PageParams{Page: *page, Size: *size}
	var result api.Page[api.User]
	var err error
	switch {
	case *role != "":
		result, err = a.client.UsersByRole(ctx, *role, params)
	case *active:
		result, err = a.client.ActiveUsers(ctx, params)
	default:
		result, err = a.client.AllUsers(ctx, params)
	}
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tEMAIL\tROLE\tACTIVE")
	for _, u := range result.Content {
		fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%s\t%t\n", u.ID, u.Username, u.FirstName, u.LastName, u.Email, u.Role, u.Active)
	}
	w.Flush()
	fmt.Fprintf(a.out, "Page %d of %d (%d users)\n", *page+1, max(result.TotalPages, 1), result.TotalElements)
	return nil
}

func (a *app) adminUser(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: learnhub admin user <show|update|activate|deactivate|delete> <user-id>")
	}
	id, err := parseID(args[1], "user")
	if err != nil {
		return err
	}

	switch args[0] {
	case "show":
		user, err := a.client.GetUser(ctx, id)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		fmt.Fprintf(a.out, "%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
		fmt.Fprintf(a.out, "Username: %s\nRole:     %s\nActive:   %t\n", user.Username, user.Role, user.Active)
		return nil
	case "update":
		fs := flag.NewFlagSet("admin user update", flag.ContinueOnError)
		email := fs.String("email", "", "new email")
		first := fs.String("first-name", "", "new first name")
		last := fs.String("last-name", "", "new last name")
		role := fs.String("role", "", "new role")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		user, err := a.client.UpdateUser(ctx, id, api.UserUpdate{
			Email:     *email,
			FirstName: *first,
			LastName:  *last,
			Role:      *role,
		})
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		fmt.Fprintf(a.out, "User #%d updated (%s, %s).\n", user.ID, user.Username, user.Role)
		return nil
	case "activate":
		if err := a.client.ActivateUser(ctx, id); err != nil {
			return fmt.Errorf("activate user: %w", err)
		}
		fmt.Fprintf(a.out, "User #%d activated.\n", id)
	case "deactivate":
		if err := a.client.DeactivateUser(ctx, id); err != nil {
			return fmt.Errorf("deactivate user: %w", err)
		}
		fmt.Fprintf(a.out, "User #%d deactivated.\n", id)
	case "delete":
		if err := a.client.DeleteUser(ctx, id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		fmt.Fprintf(a.out, "User #%d deleted.\n", id)
	default:
		return fmt.Errorf("unknown user subcommand %q", args[0])
	}
	return nil
}

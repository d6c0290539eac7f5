package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/learnhub-io/learnhub-cli/internal/platform/database"
	"github.com/learnhub-io/learnhub-cli/internal/wishlist"
)

func (a *app) cmdWishlist(ctx context.Context, args []string) error {
	store, cleanup, err := a.openWishlist(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		return a.wishlistList(ctx, store)
	case "add":
		return a.wishlistAdd(ctx, store, args[1:])
	case "remove":
		return a.wishlistRemove(ctx, store, args[1:])
	default:
		return fmt.Errorf("usage: learnhub wishlist [list|add <course-id>|remove <course-id>]")
	}
}

// openWishlist picks the PostgreSQL store when configured and signed
// in, otherwise the local state-backed store.
func (a *app) openWishlist(ctx context.Context) (wishlist.Store, func(), error) {
	noop := func() {}

	if url := a.cfg.Wishlist.PostgresURL; url != "" {
		identity, err := a.requireAuth()
		if err != nil {
			return nil, nil, fmt.Errorf("the shared wishlist requires a session: %w", err)
		}
		db, err := database.New(ctx, url, a.cfg.Wishlist.MaxConns, a.cfg.Wishlist.MinConns)
		if err != nil {
			return nil, nil, fmt.Errorf("connect wishlist database: %w", err)
		}
		store, err := wishlist.NewPostgresStore(ctx, db.Pool, identity.Username)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil
	}

	store, err := wishlist.NewLocalStore(ctx, a.store)
	if err != nil {
		return nil, nil, err
	}
	return store, noop, nil
}

func (a *app) wishlistList(ctx context.Context, store wishlist.Store) error {
	courses, err := store.Courses(ctx)
	if err != nil {
		return fmt.Errorf("read wishlist: %w", err)
	}
	if len(courses) == 0 {
		fmt.Fprintln(a.out, "Wishlist is empty.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tINSTRUCTOR\tLESSONS")
	for _, c := range courses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", c.ID, c.Title, c.InstructorName, c.TotalLessons)
	}
	w.Flush()
	return nil
}

func (a *app) wishlistAdd(ctx context.Context, store wishlist.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: learnhub wishlist add <course-id>")
	}
	id, err := parseID(args[0], "course")
	if err != nil {
		return err
	}

	course, err := a.client.GetCourse(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch course: %w", err)
	}
	added, err := store.Add(ctx, course)
	if err != nil {
		return fmt.Errorf("save wishlist: %w", err)
	}
	if !added {
		fmt.Fprintf(a.out, "%q is already on the wishlist.\n", course.Title)
		return nil
	}
	fmt.Fprintf(a.out, "Added %q to the wishlist.\n", course.Title)
	return nil
}

func (a *app) wishlistRemove(ctx context.Context, store wishlist.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: learnhub wishlist remove <course-id>")
	}
	id, err := parseID(args[0], "course")
	if err != nil {
		return err
	}

	removed, err := store.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("save wishlist: %w", err)
	}
	if !removed {
		fmt.Fprintf(a.out, "Course %d is not on the wishlist.\n", id)
		return nil
	}
	fmt.Fprintf(a.out, "Removed course %d from the wishlist.\n", id)
	return nil
}

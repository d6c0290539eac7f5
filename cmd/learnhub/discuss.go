package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/learnhub-io/learnhub-cli/internal/api"
)

func (a *app) cmdDiscuss(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: learnhub discuss <list|post|reply|like|report> <course-id> ...")
	}
	courseID, err := parseID(args[1], "course")
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return a.discussList(ctx, courseID, args[2:])
	case "post":
		return a.discussPost(ctx, courseID, args[2:])
	case "reply":
		return a.discussReply(ctx, courseID, args[2:])
	case "like":
		return a.discussLike(ctx, courseID, args[2:])
	case "report":
		return a.discussReport(ctx, courseID, args[2:])
	default:
		return fmt.Errorf("unknown discuss subcommand %q", args[0])
	}
}

func (a *app) discussList(ctx context.Context, courseID int64, args []string) error {
	fs := flag.NewFlagSet("discuss list", flag.ContinueOnError)
	sortBy := fs.String("sort", "recent", "sort order (recent or popular)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	threads, err := a.client.ListDiscussions(ctx, courseID, *sortBy)
	if err != nil {
		return fmt.Errorf("list discussions: %w", err)
	}
	if len(threads) == 0 {
		fmt.Fprintln(a.out, "No discussions yet.")
		return nil
	}

	for _, d := range threads {
		fmt.Fprintf(a.out, "#%d %s (by %s, %d likes, %d replies)\n", d.ID, d.Title, d.Author, d.Likes, len(d.Replies))
		if d.Content != "" {
			fmt.Fprintf(a.out, "    %s\n", d.Content)
		}
		for _, r := range d.Replies {
			fmt.Fprintf(a.out, "    > %s: %s\n", r.Author, r.Content)
		}
	}
	return nil
}

func (a *app) discussPost(ctx context.Context, courseID int64, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}
	fs := flag.NewFlagSet("discuss post", flag.ContinueOnError)
	title := fs.String("title", "", "thread title")
	content := fs.String("content", "", "thread body")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" || *content == "" {
		return fmt.Errorf("discuss post requires --title and --content")
	}

	thread, err := a.client.CreateDiscussion(ctx, courseID, api.DiscussionRequest{Title: *title, Content: *content})
	if err != nil {
		return fmt.Errorf("post discussion: %w", err)
	}
	fmt.Fprintf(a.out, "Posted thread #%d %q\n", thread.ID, thread.Title)
	return nil
}

func (a *app) discussReply(ctx context.Context, courseID int64, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: learnhub discuss reply <course-id> <thread-id> --content <text>")
	}
	threadID, err := parseID(args[0], "thread")
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("discuss reply", flag.ContinueOnError)
	content := fs.String("content", "", "reply body")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *content == "" {
		return fmt.Errorf("discuss reply requires --content")
	}

	reply, err := a.client.ReplyToDiscussion(ctx, courseID, threadID, api.ReplyRequest{Content: *content})
	if err != nil {
		return fmt.Errorf("reply: %w", err)
	}
	fmt.Fprintf(a.out, "Replied to thread #%d (reply #%d)\n", threadID, reply.ID)
	return nil
}

func (a *app) discussLike(ctx context.Context, courseID int64, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: learnhub discuss like <course-id> <thread-id>")
	}
	threadID, err := parseID(args[0], "thread")
	if err != nil {
		return err
	}
	if err := a.client.LikeDiscussion(ctx, courseID, threadID); err != nil {
		return fmt.Errorf("like: %w", err)
	}
	fmt.Fprintf(a.out, "Liked thread #%d\n", threadID)
	return nil
}

func (a *app) discussReport(ctx context.Context, courseID int64, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: learnhub discuss report <course-id> <thread-id>")
	}
	threadID, err := parseID(args[0], "thread")
	if err != nil {
		return err
	}
	if err := a.client.ReportDiscussion(ctx, courseID, threadID); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	fmt.Fprintf(a.out, "Reported thread #%d for moderation\n", threadID)
	return nil
}

func (a *app) cmdReview(ctx context.Context, args []string) error {
	if _, err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: learnhub review <course-id> --rating <1-5> [--comment <text>]")
	}
	courseID, err := parseID(args[0], "course")
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("review", flag.ContinueOnError)
	rating := fs.Int("rating", 0, "rating from 1 to 5")
	comment := fs.String("comment", "", "review text")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *rating < 1 || *rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	review, err := a.client.SubmitReview(ctx, courseID, api.ReviewRequest{Rating: *rating, Comment: *comment})
	if err != nil {
		return fmt.Errorf("submit review: %w", err)
	}
	fmt.Fprintf(a.out, "Review #%d submitted: %s\n", review.ID, stars(review.Rating))
	return nil
}

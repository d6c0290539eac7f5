// Command learnhub is a terminal client for the LearnHub LMS.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/learnhub-io/learnhub-cli/internal/api"
	"github.com/learnhub-io/learnhub-cli/internal/platform/config"
	"github.com/learnhub-io/learnhub-cli/internal/platform/storage"
	"github.com/learnhub-io/learnhub-cli/internal/session"
	"github.com/learnhub-io/learnhub-cli/internal/views"
)

const usage = `Usage: learnhub <command> [arguments]

Account:
  login       sign in and store the session
  logout      discard the stored session
  register    create an account and sign in
  whoami      show the current identity

Learning:
  courses     list, search and inspect courses
  enroll      enroll in a course
  unenroll    drop an enrollment
  lesson      mark lessons complete or incomplete
  progress    show your learning progress
  certificate show completion certificate data
  dashboard   show the dashboard for your role
  path        browse learning paths
  wishlist    manage saved courses
  discuss     read and post course discussions
  review      rate a course

Teaching:
  students    list your students' progress
  course      create and manage your courses

Administration:
  admin       review courses and manage users

Configuration is read from LEARNHUB_* environment variables.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "learnhub:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	setupLogging(cfg.Log)

	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprint(out, usage)
		return nil
	}

	store, closeStore, err := newStateStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	client := api.New(cfg.API.BaseURL)
	sess := session.NewManager(client, store)
	if err := sess.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	app := &app{
		cfg:     cfg,
		out:     out,
		client:  client,
		store:   store,
		session: sess,
		views:   views.NewLoader(client),
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return app.cmdLogin(ctx, rest)
	case "logout":
		return app.cmdLogout(ctx, rest)
	case "register":
		return app.cmdRegister(ctx, rest)
	case "whoami":
		return app.cmdWhoami(ctx, rest)
	case "courses":
		return app.cmdCourses(ctx, rest)
	case "enroll":
		return app.cmdEnroll(ctx, rest)
	case "unenroll":
		return app.cmdUnenroll(ctx, rest)
	case "lesson":
		return app.cmdLesson(ctx, rest)
	case "progress":
		return app.cmdProgress(ctx, rest)
	case "certificate":
		return app.cmdCertificate(ctx, rest)
	case "dashboard":
		return app.cmdDashboard(ctx, rest)
	case "path":
		return app.cmdPath(ctx, rest)
	case "wishlist":
		return app.cmdWishlist(ctx, rest)
	case "discuss":
		return app.cmdDiscuss(ctx, rest)
	case "review":
		return app.cmdReview(ctx, rest)
	case "students":
		return app.cmdStudents(ctx, rest)
	case "course":
		return app.cmdCourse(ctx, rest)
	case "admin":
		return app.cmdAdmin(ctx, rest)
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// app carries the wired dependencies for command handlers.
type app struct {
	cfg     *config.Config
	out     io.Writer
	client  *api.Client
	store   storage.Store
	session *session.Manager
	views   *views.Loader
}

func setupLogging(cfg config.LogConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func newStateStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.State.Backend {
	case "memory":
		return storage.NewMemory(), func() {}, nil
	case "redis":
		r, err := storage.NewRedis(ctx, cfg.State.Redis.URL, "learnhub")
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis state backend: %w", err)
		}
		return r, func() {
			if err := r.Close(); err != nil {
				slog.Warn("closing redis", "error", err)
			}
		}, nil
	default:
		f, err := storage.NewFile(cfg.State.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("open state dir: %w", err)
		}
		return f, func() {}, nil
	}
}

// requireAuth fails with a uniform message when no session is active.
func (a *app) requireAuth() (api.Identity, error) {
	identity, ok := a.session.Identity()
	if !ok {
		return api.Identity{}, fmt.Errorf("%w; run `learnhub login` first", session.ErrNotAuthenticated)
	}
	return identity, nil
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}

// reportProblems prints non-fatal fetch failures; the view still
// renders with whatever data arrived.
func (a *app) reportProblems(problems []error) {
	for _, p := range problems {
		fmt.Fprintf(a.out, "warning: %v\n", p)
	}
}

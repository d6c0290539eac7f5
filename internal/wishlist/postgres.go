package wishlist

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learnhub-io/learnhub-cli/internal/api"
)

const dbTimeout = 5 * time.Second

// PostgresStore is a PostgreSQL-backed wishlist shared across machines,
// scoped to a single user.
type PostgresStore struct {
	pool     *pgxpool.Pool
	username string
}

// NewPostgresStore creates a PostgreSQL-backed wishlist store for the
// given user, creating the backing table if needed.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, username string) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	_, err := pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS wishlist_items (
		   username        TEXT NOT NULL,
		   course_id       BIGINT NOT NULL,
		   course_title    TEXT NOT NULL DEFAULT '',
		   instructor_name TEXT NOT NULL DEFAULT '',
		   total_lessons   INT NOT NULL DEFAULT 0,
		   added_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		   PRIMARY KEY (username, course_id)
		 )`)
	if err != nil {
		return nil, fmt.Errorf("create wishlist table: %w", err)
	}

	return &PostgresStore{pool: pool, username: username}, nil
}

func (s *PostgresStore) Courses(ctx context.Context) ([]api.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT course_id, course_title, instructor_name, total_lessons
		 FROM wishlist_items
		 WHERE username = $1
		 ORDER BY added_at ASC`,
		s.username,
	)
	if err != nil {
		return nil, fmt.Errorf("query wishlist: %w", err)
	}
	defer rows.Close()

	var courses []api.Course
	for rows.Next() {
		var c api.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.InstructorName, &c.TotalLessons); err != nil {
			return nil, fmt.Errorf("scan wishlist item: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wishlist: %w", err)
	}
	return courses, nil
}

func (s *PostgresStore) Add(ctx context.Context, course api.Course) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	cmd, err := s.pool.Exec(ctx,
		`INSERT INTO wishlist_items (username, course_id, course_title, instructor_name, total_lessons)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (username, course_id) DO NOTHING`,
		s.username,
		course.ID,
		course.Title,
		course.InstructorName,
		course.TotalLessons,
	)
	if err != nil {
		return false, fmt.Errorf("add wishlist item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (s *PostgresStore) Remove(ctx context.Context, courseID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	cmd, err := s.pool.Exec(ctx,
		`DELETE FROM wishlist_items
		 WHERE username = $1 AND course_id = $2`,
		s.username,
		courseID,
	)
	if err != nil {
		return false, fmt.Errorf("remove wishlist item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (s *PostgresStore) Contains(ctx context.Context, courseID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var found bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM wishlist_items
		   WHERE username = $1 AND course_id = $2
		 )`,
		s.username,
		courseID,
	).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("check wishlist item: %w", err)
	}
	return found, nil
}

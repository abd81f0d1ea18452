package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/cinevision/internal/model"
)

// Every catalog repository exposes the same three operations (Count, List,
// Create) so the seeder can treat each collection uniformly.  List returns
// rows in insertion (id) order.

func countRows(ctx context.Context, db *sql.DB, table string) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	return n, err
}

func insertRow(ctx context.Context, db *sql.DB, q string, args ...any) (uint64, error) {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// listRows runs q and scans each row with scan.
func listRows[T any](ctx context.Context, db *sql.DB, q string, scan func(*sql.Rows, *T) error) ([]T, error) {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryRepo reads and writes the categories table.
type CategoryRepo struct{ db *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "categories")
}

func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	return listRows(ctx, r.db, `SELECT id, name FROM categories ORDER BY id`,
		func(rows *sql.Rows, c *model.Category) error { return rows.Scan(&c.ID, &c.Name) })
}

func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	id, err := insertRow(ctx, r.db, `INSERT INTO categories (name) VALUES (?)`, c.Name)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// DirectorRepo reads and writes the directors table.
type DirectorRepo struct{ db *sql.DB }

func NewDirectorRepo(db *sql.DB) *DirectorRepo { return &DirectorRepo{db: db} }

func (r *DirectorRepo) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "directors")
}

func (r *DirectorRepo) List(ctx context.Context) ([]model.Director, error) {
	return listRows(ctx, r.db, `SELECT id, name FROM directors ORDER BY id`,
		func(rows *sql.Rows, d *model.Director) error { return rows.Scan(&d.ID, &d.Name) })
}

func (r *DirectorRepo) Create(ctx context.Context, d *model.Director) error {
	id, err := insertRow(ctx, r.db, `INSERT INTO directors (name) VALUES (?)`, d.Name)
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}

// MovieRepo reads and writes the movies table.
type MovieRepo struct{ db *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

func (r *MovieRepo) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "movies")
}

func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT id, name, description, duration_min, release_date, is_display, trailer_url, category_id, director_id
	           FROM movies ORDER BY id`
	return listRows(ctx, r.db, q, func(rows *sql.Rows, m *model.Movie) error {
		return rows.Scan(&m.ID, &m.Name, &m.Description, &m.DurationMin, &m.ReleaseDate,
			&m.IsDisplay, &m.TrailerURL, &m.CategoryID, &m.DirectorID)
	})
}

func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	const q = `INSERT INTO movies (name, description, duration_min, release_date, is_display, trailer_url, category_id, director_id)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	id, err := insertRow(ctx, r.db, q, m.Name, m.Description, m.DurationMin, m.ReleaseDate,
		m.IsDisplay, m.TrailerURL, m.CategoryID, m.DirectorID)
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

// CityRepo reads and writes the cities table.
type CityRepo struct{ db *sql.DB }

func NewCityRepo(db *sql.DB) *CityRepo { return &CityRepo{db: db} }

func (r *CityRepo) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "cities")
}

func (r *CityRepo) List(ctx context.Context) ([]model.City, error) {
	return listRows(ctx, r.db, `SELECT id, name, movie_id FROM cities ORDER BY id`,
		func(rows *sql.Rows, c *model.City) error { return rows.Scan(&c.ID, &c.Name, &c.MovieID) })
}

func (r *CityRepo) Create(ctx context.Context, c *model.City) error {
	id, err := insertRow(ctx, r.db, `INSERT INTO cities (name, movie_id) VALUES (?, ?)`, c.Name, c.MovieID)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// SaloonRepo reads and writes the saloons table.
type SaloonRepo struct{ db *sql.DB }

func NewSaloonRepo(db *sql.DB) *SaloonRepo { return &SaloonRepo{db: db} }

func (r *SaloonRepo) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "saloons")
}

func (r *SaloonRepo) List(ctx context.Context) ([]model.Saloon, error) {
	return listRows(ctx, r.db, `SELECT id, name, city_id FROM saloons ORDER BY id`,
		func(rows *sql.Rows, s *model.Saloon) error { return rows.Scan(&s.ID, &s.Name, &s.CityID) })
}

func (r *SaloonRepo) Create(ctx context.Context, s *model.Saloon) error {
	id, err := insertRow(ctx, r.db, `INSERT INTO saloons (name, city_id) VALUES (?, ?)`, s.Name, s.CityID)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// MovieImageRepo reads and writes the movie_images table.
type MovieImageRepo struct{ db *sql.DB }

func NewMovieImageRepo(db *sql.DB) *MovieImageRepo { return &MovieImageRepo{db: db} }

func (r *MovieImageRepo) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "movie_images")
}

func (r *MovieImageRepo) List(ctx context.Context) ([]model.MovieImage, error) {
	return listRows(ctx, r.db, `SELECT id, image_url, movie_id FROM movie_images ORDER BY id`,
		func(rows *sql.Rows, i *model.MovieImage) error { return rows.Scan(&i.ID, &i.ImageURL, &i.MovieID) })
}

func (r *MovieImageRepo) Create(ctx context.Context, i *model.MovieImage) error {
	id, err := insertRow(ctx, r.db, `INSERT INTO movie_images (image_url, movie_id) VALUES (?, ?)`, i.ImageURL, i.MovieID)
	if err != nil {
		return err
	}
	i.ID = id
	return nil
}

// ActorRepo reads and writes the actors table.
type ActorRepo struct{ db *sql.DB }

func NewActorRepo(db *sql.DB) *ActorRepo { return &ActorRepo{db: db} }

func (r *ActorRepo) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "actors")
}

func (r *ActorRepo) List(ctx context.Context) ([]model.Actor, error) {
	return listRows(ctx, r.db, `SELECT id, name, movie_id FROM actors ORDER BY id`,
		func(rows *sql.Rows, a *model.Actor) error { return rows.Scan(&a.ID, &a.Name, &a.MovieID) })
}

func (r *ActorRepo) Create(ctx context.Context, a *model.Actor) error {
	id, err := insertRow(ctx, r.db, `INSERT INTO actors (name, movie_id) VALUES (?, ?)`, a.Name, a.MovieID)
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

// CommentRepo reads and writes the comments table.
type CommentRepo struct{ db *sql.DB }

func NewCommentRepo(db *sql.DB) *CommentRepo { return &CommentRepo{db: db} }

func (r *CommentRepo) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "comments")
}

func (r *CommentRepo) List(ctx context.Context) ([]model.Comment, error) {
	return listRows(ctx, r.db, `SELECT id, text, author_name, author_id, movie_id FROM comments ORDER BY id`,
		func(rows *sql.Rows, c *model.Comment) error {
			return rows.Scan(&c.ID, &c.Text, &c.AuthorName, &c.AuthorID, &c.MovieID)
		})
}

func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	id, err := insertRow(ctx, r.db, `INSERT INTO comments (text, author_name, author_id, movie_id) VALUES (?, ?, ?, ?)`,
		c.Text, c.AuthorName, c.AuthorID, c.MovieID)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// ShowtimeRepo reads and writes the movie_saloon_times table.
type ShowtimeRepo struct{ db *sql.DB }

func NewShowtimeRepo(db *sql.DB) *ShowtimeRepo { return &ShowtimeRepo{db: db} }

func (r *ShowtimeRepo) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "movie_saloon_times")
}

func (r *ShowtimeRepo) List(ctx context.Context) ([]model.MovieSaloonTime, error) {
	return listRows(ctx, r.db, `SELECT id, begin_time, movie_id, saloon_id FROM movie_saloon_times ORDER BY id`,
		func(rows *sql.Rows, s *model.MovieSaloonTime) error {
			return rows.Scan(&s.ID, &s.BeginTime, &s.MovieID, &s.SaloonID)
		})
}

func (r *ShowtimeRepo) Create(ctx context.Context, s *model.MovieSaloonTime) error {
	id, err := insertRow(ctx, r.db, `INSERT INTO movie_saloon_times (begin_time, movie_id, saloon_id) VALUES (?, ?, ?)`,
		s.BeginTime, s.MovieID, s.SaloonID)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

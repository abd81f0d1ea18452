package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Tables are created from the entity definitions on startup.  There is no
// migration history; statements are idempotent and never alter an
// existing table.

var catalogSchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS directors (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(150) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS movies (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		description TEXT NOT NULL,
		duration_min INT UNSIGNED NOT NULL,
		release_date DATE NOT NULL,
		is_display TINYINT(1) NOT NULL DEFAULT 0,
		trailer_url VARCHAR(500) NOT NULL DEFAULT '',
		category_id BIGINT UNSIGNED NOT NULL,
		director_id BIGINT UNSIGNED NOT NULL,
		FOREIGN KEY (category_id) REFERENCES categories(id),
		FOREIGN KEY (director_id) REFERENCES directors(id)
	)`,
	`CREATE TABLE IF NOT EXISTS cities (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		movie_id BIGINT UNSIGNED NOT NULL,
		FOREIGN KEY (movie_id) REFERENCES movies(id)
	)`,
	`CREATE TABLE IF NOT EXISTS saloons (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		city_id BIGINT UNSIGNED NOT NULL,
		FOREIGN KEY (city_id) REFERENCES cities(id)
	)`,
	`CREATE TABLE IF NOT EXISTS movie_images (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		image_url VARCHAR(500) NOT NULL,
		movie_id BIGINT UNSIGNED NOT NULL,
		FOREIGN KEY (movie_id) REFERENCES movies(id)
	)`,
	`CREATE TABLE IF NOT EXISTS actors (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		movie_id BIGINT UNSIGNED NOT NULL,
		FOREIGN KEY (movie_id) REFERENCES movies(id)
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		text TEXT NOT NULL,
		author_name VARCHAR(150) NOT NULL,
		author_id VARCHAR(255) NOT NULL,
		movie_id BIGINT UNSIGNED NOT NULL,
		FOREIGN KEY (movie_id) REFERENCES movies(id)
	)`,
	`CREATE TABLE IF NOT EXISTS movie_saloon_times (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		begin_time CHAR(5) NOT NULL,
		movie_id BIGINT UNSIGNED NOT NULL,
		saloon_id BIGINT UNSIGNED NOT NULL,
		FOREIGN KEY (movie_id) REFERENCES movies(id),
		FOREIGN KEY (saloon_id) REFERENCES saloons(id)
	)`,
}

var identitySchema = []string{
	`CREATE TABLE IF NOT EXISTS claims (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		UNIQUE KEY uq_claims_name (name)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		full_name VARCHAR(200) NOT NULL DEFAULT '',
		claim_id BIGINT UNSIGNED NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email),
		FOREIGN KEY (claim_id) REFERENCES claims(id)
	)`,
}

// EnsureCatalogSchema creates the movie catalog tables if they are missing.
func EnsureCatalogSchema(ctx context.Context, db *sql.DB) error {
	return apply(ctx, db, catalogSchema)
}

// EnsureIdentitySchema creates the claims and users tables if they are missing.
func EnsureIdentitySchema(ctx context.Context, db *sql.DB) error {
	return apply(ctx, db, identitySchema)
}

func apply(ctx context.Context, db *sql.DB, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

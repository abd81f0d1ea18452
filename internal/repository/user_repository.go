package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/cinevision/internal/model"
)

// UserRepo reads and writes the users table.  Reads join the claims table
// so callers receive the claim together with the user.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userSelect = `SELECT u.id, u.email, u.password_hash, u.full_name, u.claim_id, c.name, u.created_at, u.updated_at
	FROM users u LEFT JOIN claims c ON c.id = u.claim_id`

type rowScanner interface{ Scan(dest ...any) error }

func scanUser(s rowScanner) (model.User, error) {
	var (
		u         model.User
		claimID   sql.NullInt64
		claimName sql.NullString
	)
	if err := s.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &claimID, &claimName, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return model.User{}, err
	}
	if claimID.Valid {
		id := uint64(claimID.Int64)
		u.ClaimID = &id
		u.Claim = &model.Claim{ID: id, Name: claimName.String}
	}
	return u, nil
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create inserts u and sets its ID.  PasswordHash must already be hashed.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = NormalizeEmail(u.Email)
	var claimID any
	if u.Claim != nil {
		u.ClaimID = &u.Claim.ID
	}
	if u.ClaimID != nil {
		claimID = *u.ClaimID
	}
	id, err := insertRow(ctx, r.DB,
		"INSERT INTO users (email, password_hash, full_name, claim_id) VALUES (?,?,?,?)",
		u.Email, u.PasswordHash, u.FullName, claimID)
	if err != nil {
		if isDuplicate(err) {
			return ErrEmailExists
		}
		return err
	}
	u.ID = id
	return nil
}

// GetByEmail fetches a user by normalized email.  It returns ErrNotFound
// when no row matches.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, userSelect+" WHERE u.email=? LIMIT 1", NormalizeEmail(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns every user ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx, userSelect+" ORDER BY u.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SetClaim points the user at claimID.  Returns ErrNotFound when the user
// does not exist.
func (r *UserRepo) SetClaim(ctx context.Context, userID, claimID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET claim_id=?, updated_at=CURRENT_TIMESTAMP WHERE id=?", claimID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

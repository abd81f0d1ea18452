package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/cinevision/internal/model"
)

// ClaimRepo reads and writes the claims table.
type ClaimRepo struct{ DB *sql.DB }

func NewClaimRepo(db *sql.DB) *ClaimRepo { return &ClaimRepo{DB: db} }

// GetByName returns the claim with the given name or ErrNotFound.
func (r *ClaimRepo) GetByName(ctx context.Context, name string) (*model.Claim, error) {
	var c model.Claim
	err := r.DB.QueryRowContext(ctx, "SELECT id, name FROM claims WHERE name=? LIMIT 1", name).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts c and sets its ID.  A duplicate name yields ErrConflict.
func (r *ClaimRepo) Create(ctx context.Context, c *model.Claim) error {
	id, err := insertRow(ctx, r.DB, "INSERT INTO claims (name) VALUES (?)", c.Name)
	if err != nil {
		if isDuplicate(err) {
			return ErrConflict
		}
		return err
	}
	c.ID = id
	return nil
}

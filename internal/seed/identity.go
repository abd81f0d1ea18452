package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/iliyamo/cinevision/internal/model"
	"github.com/iliyamo/cinevision/internal/repository"
)

// ClaimStore is the claims storage used by the identity seeder.
type ClaimStore interface {
	GetByName(ctx context.Context, name string) (*model.Claim, error)
	Create(ctx context.Context, c *model.Claim) error
}

// UserStore is the users storage used by the identity seeder.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, u *model.User) error
	SetClaim(ctx context.Context, userID, claimID uint64) error
}

// PasswordHasher turns a plain password into its stored form.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// AdminAccount is the administrator created when it does not exist yet.
type AdminAccount struct {
	Email    string
	Password string
	FullName string
}

// IdentitySeeder ensures the CUSTOMER and ADMIN claims and the admin
// account exist, then assigns CUSTOMER to every user without a claim.
// Unlike CatalogSeeder it stops at the first error and returns it.
type IdentitySeeder struct {
	claims ClaimStore
	users  UserStore
	hasher PasswordHasher
	admin  AdminAccount
	log    *zap.Logger
}

func NewIdentitySeeder(claims ClaimStore, users UserStore, hasher PasswordHasher, admin AdminAccount, log *zap.Logger) *IdentitySeeder {
	return &IdentitySeeder{claims: claims, users: users, hasher: hasher, admin: admin, log: log}
}

// Run executes the identity bootstrap steps in order.
func (s *IdentitySeeder) Run(ctx context.Context) error {
	customer, err := s.ensureClaim(ctx, model.ClaimCustomer)
	if err != nil {
		return err
	}
	admin, err := s.ensureClaim(ctx, model.ClaimAdmin)
	if err != nil {
		return err
	}
	if err := s.ensureAdmin(ctx, admin); err != nil {
		return err
	}
	return s.repairUsers(ctx, customer)
}

func (s *IdentitySeeder) ensureClaim(ctx context.Context, name string) (*model.Claim, error) {
	c, err := s.claims.GetByName(ctx, name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup claim %s: %w", name, err)
	}
	c = &model.Claim{Name: name}
	if err := s.claims.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create claim %s: %w", name, err)
	}
	s.log.Info("claim created", zap.String("claim", name))
	return c, nil
}

func (s *IdentitySeeder) ensureAdmin(ctx context.Context, claim *model.Claim) error {
	_, err := s.users.GetByEmail(ctx, s.admin.Email)
	if err == nil {
		s.log.Info("admin user already exists", zap.String("email", s.admin.Email))
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("lookup admin user: %w", err)
	}

	hash, err := s.hasher.Hash(s.admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	u := &model.User{
		Email:        s.admin.Email,
		PasswordHash: hash,
		FullName:     s.admin.FullName,
		ClaimID:      &claim.ID,
		Claim:        claim,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	s.log.Info("default admin user created", zap.String("email", u.Email))
	return nil
}

func (s *IdentitySeeder) repairUsers(ctx context.Context, customer *model.Claim) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		if u.HasClaim() {
			continue
		}
		if err := s.users.SetClaim(ctx, u.ID, customer.ID); err != nil {
			return fmt.Errorf("assign claim to %s: %w", u.Email, err)
		}
		s.log.Info("assigned default claim", zap.String("email", u.Email), zap.String("claim", customer.Name))
	}
	return nil
}

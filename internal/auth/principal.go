// Package auth adapts stored users into authenticated principals.
package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/iliyamo/cinevision/internal/model"
	"github.com/iliyamo/cinevision/internal/repository"
)

// RolePrefix is prepended to a claim name to form the granted authority.
const RolePrefix = "ROLE_"

// ErrPrincipalNotFound is returned when no usable user matches an email.
// A user without a claim yields the same error as a missing user.
var ErrPrincipalNotFound = errors.New("principal not found")

// AuthenticationFailedError hides the cause of an unexpected lookup
// failure from the caller.  The cause is logged by the Bridge.
type AuthenticationFailedError struct {
	Email string
}

func (e *AuthenticationFailedError) Error() string {
	return "authentication failed for " + e.Email
}

// Principal is what the authentication layer needs to know about a user.
type Principal struct {
	Email        string
	PasswordHash string
	Authorities  []string
}

// Role returns the single authority of the principal.
func (p Principal) Role() string {
	if len(p.Authorities) == 0 {
		return ""
	}
	return p.Authorities[0]
}

// UserLookup finds a user by email, returning repository.ErrNotFound when
// there is none.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// Bridge loads principals through a UserLookup.  It holds no state of its
// own and is safe for concurrent use.
type Bridge struct {
	users UserLookup
	log   *zap.Logger
}

func NewBridge(users UserLookup, log *zap.Logger) *Bridge {
	return &Bridge{users: users, log: log}
}

// LoadPrincipal returns the principal for email.  The returned error is
// either ErrPrincipalNotFound or an *AuthenticationFailedError.
func (b *Bridge) LoadPrincipal(ctx context.Context, email string) (p Principal, err error) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("load principal panicked", zap.String("email", email), zap.Any("panic", r))
			p, err = Principal{}, &AuthenticationFailedError{Email: email}
		}
	}()

	u, err := b.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		b.log.Info("principal not found", zap.String("email", email))
		return Principal{}, ErrPrincipalNotFound
	case err != nil:
		b.log.Error("load principal", zap.String("email", email), zap.Error(err))
		return Principal{}, &AuthenticationFailedError{Email: email}
	case u == nil:
		b.log.Info("principal not found", zap.String("email", email))
		return Principal{}, ErrPrincipalNotFound
	case !u.HasClaim():
		b.log.Warn("user has no claim", zap.String("email", email))
		return Principal{}, ErrPrincipalNotFound
	}

	role := RolePrefix + u.Claim.Name
	b.log.Debug("principal loaded", zap.String("email", u.Email), zap.String("role", role))
	return Principal{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Authorities:  []string{role},
	}, nil
}

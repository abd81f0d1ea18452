package model

import "time"

// Claim names seeded at startup.
const (
    ClaimCustomer = "CUSTOMER"
    ClaimAdmin    = "ADMIN"
)

// Claim represents a row in the `claims` table.  A claim is a named
// role; the authority granted to a user is derived from it.
//
// Fields:
//  ID   – numeric identifier of the claim.
//  Name – unique claim name (e.g. CUSTOMER, ADMIN).
type Claim struct {
    ID   uint64 // claims.id
    Name string // claims.name
}

// User represents an application user record as stored in the
// `users` table of the identity database.  Legacy rows may carry no
// claim, in which case ClaimID and Claim are both nil.  Claim is populated
// by the repository with a join when the user is read.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  FullName     – display name.
//  ClaimID      – foreign key into the claims table (nullable).
//  Claim        – the referenced claim, nil when ClaimID is nil.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    FullName     string    // users.full_name
    ClaimID      *uint64   // users.claim_id (nullable)
    Claim        *Claim    // joined from claims
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}

// HasClaim reports whether the user references a claim.
func (u *User) HasClaim() bool {
    return u != nil && u.Claim != nil
}

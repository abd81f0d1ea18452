package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/cinevision/internal/model"
    "github.com/iliyamo/cinevision/internal/repository"
)

// UserDirectory is the user storage behind the user-management endpoints.
type UserDirectory interface {
    GetByEmail(ctx context.Context, email string) (*model.User, error)
    List(ctx context.Context) ([]model.User, error)
    Create(ctx context.Context, u *model.User) error
}

// ClaimFinder resolves a claim by name.
type ClaimFinder interface {
    GetByName(ctx context.Context, name string) (*model.Claim, error)
}

// Hasher hashes plain passwords before they are stored.
type Hasher interface {
    Hash(plain string) (string, error)
}

// UserHandler serves the user-management endpoints.
type UserHandler struct {
    Users  UserDirectory
    Claims ClaimFinder
    Hasher Hasher
    Log    *zap.Logger
}

func NewUserHandler(users UserDirectory, claims ClaimFinder, hasher Hasher, log *zap.Logger) *UserHandler {
    return &UserHandler{Users: users, Claims: claims, Hasher: hasher, Log: log}
}

type registerReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
    FullName string `json:"full_name"`
}

type userResp struct {
    ID       uint64 `json:"id"`
    Email    string `json:"email"`
    FullName string `json:"full_name"`
    Claim    string `json:"claim,omitempty"`
}

func toUserResp(u *model.User) userResp {
    r := userResp{ID: u.ID, Email: u.Email, FullName: u.FullName}
    if u.Claim != nil {
        r.Claim = u.Claim.Name
    }
    return r
}

// Register creates a user with the CUSTOMER claim.
func (h *UserHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = repository.NormalizeEmail(req.Email)
    req.FullName = strings.TrimSpace(req.FullName)
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    // New accounts always start as customers.
    claim, err := h.Claims.GetByName(ctx, model.ClaimCustomer)
    if err != nil {
        h.Log.Error("load customer claim", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
    }
    // Never store the plain password.
    hash, err := h.Hasher.Hash(req.Password)
    if err != nil {
        h.Log.Error("hash password", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
    }
    u := &model.User{Email: req.Email, PasswordHash: hash, FullName: req.FullName, ClaimID: &claim.ID, Claim: claim}
    // The unique index on users.email turns a duplicate into 409.
    if err := h.Users.Create(ctx, u); err != nil {
        if errors.Is(err, repository.ErrEmailExists) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
        }
        h.Log.Error("create user", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
    }
    return c.JSON(http.StatusCreated, toUserResp(u))
}

// Get returns the public fields of the user identified by :email.
func (h *UserHandler) Get(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByEmail(ctx, c.Param("email"))
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        h.Log.Error("get user", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, toUserResp(u))
}

// List returns every user.  Mounted behind the admin role.
func (h *UserHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    users, err := h.Users.List(ctx)
    if err != nil {
        h.Log.Error("list users", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    out := make([]userResp, 0, len(users))
    for i := range users {
        out = append(out, toUserResp(&users[i]))
    }
    return c.JSON(http.StatusOK, out)
}

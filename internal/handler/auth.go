package handler

import (
    "context"  // provides context with cancellation for lookups
    "errors"   // errors.Is / errors.As on bridge failures
    "net/http" // HTTP status codes and primitives
    "time"     // timeouts for lookups

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing
    "go.uber.org/zap"

    "github.com/iliyamo/cinevision/internal/auth"
    "github.com/iliyamo/cinevision/internal/config"
    "github.com/iliyamo/cinevision/internal/middleware"
    "github.com/iliyamo/cinevision/internal/repository"
    "github.com/iliyamo/cinevision/internal/utils"
)

// PrincipalLoader resolves an email to an authenticated principal.
type PrincipalLoader interface {
    LoadPrincipal(ctx context.Context, email string) (auth.Principal, error)
}

// AuthHandler bundles dependencies for the token-issuing endpoints.
type AuthHandler struct {
    Cfg        config.AuthConfig
    Principals PrincipalLoader
    Log        *zap.Logger
}

func NewAuthHandler(cfg config.AuthConfig, p PrincipalLoader, log *zap.Logger) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Principals: p, Log: log}
}

// ----- DTOs -----

type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

type tokenPart struct {
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}

type loginResp struct {
    Email  string    `json:"email"`
    Role   string    `json:"role"`
    Access tokenPart `json:"access"`
}

// Login verifies credentials and returns an access token.  Unknown users,
// users without a claim, lookup failures and wrong passwords all answer
// the same 401 body.
func (h *AuthHandler) Login(c echo.Context) error {
    // Decode and normalize the credentials.
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = repository.NormalizeEmail(req.Email)
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    // Resolve the principal.  The bridge already logged the cause of a
    // failure; only unexpected error types are logged here.
    p, err := h.Principals.LoadPrincipal(ctx, req.Email)
    if err != nil {
        var failed *auth.AuthenticationFailedError
        if !errors.Is(err, auth.ErrPrincipalNotFound) && !errors.As(err, &failed) {
            h.Log.Error("unexpected principal error", zap.Error(err))
        }
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }
    // Compare the bcrypt hash with the supplied password.
    if !utils.VerifyPassword(p.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }

    // Issue a short-lived access token carrying the email and the role.
    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, p.Email, p.Role(), h.Cfg.AccessTTLMin)
    if err != nil {
        h.Log.Error("issue access token", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }
    return c.JSON(http.StatusOK, loginResp{
        Email:  p.Email,
        Role:   p.Role(),
        Access: tokenPart{Token: access.Token, Expires: access.Exp},
    })
}

// Me returns the principal carried by the verified access token.
func (h *AuthHandler) Me(c echo.Context) error {
    role, _ := c.Get(middleware.CtxRole).(string)
    return c.JSON(http.StatusOK, echo.Map{"email": middleware.Subject(c), "role": role})
}

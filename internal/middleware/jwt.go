package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/cinevision/internal/utils"
)

// Context keys set by TokenVerifier.
const (
    CtxSubject = "subject" // authenticated email
    CtxRole    = "role"    // granted authority, e.g. ROLE_CUSTOMER
)

// TokenVerifier returns an Echo middleware that validates a Bearer access
// token and injects the token's subject and role into the request
// context.  No session state is kept: every request carries its own token.
func TokenVerifier(secret string) echo.MiddlewareFunc {
    // Echo calls the outer function once when the middleware is attached.
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        // The returned handler runs for every request on the route.
        return func(c echo.Context) error {
            // The header must read "Bearer <jwt>"; anything else is an
            // anonymous request and gets 401.
            auth := c.Request().Header.Get(echo.HeaderAuthorization)
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            // Signature, expiry and a non-empty subject are checked by
            // ParseAccessToken.  Only HMAC tokens are accepted.
            claims, err := utils.ParseAccessToken(secret, strings.TrimPrefix(auth, "Bearer "))
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }
            // Downstream handlers read these through Subject and CtxRole.
            c.Set(CtxSubject, claims.Subject)
            c.Set(CtxRole, claims.Role)
            return next(c)
        }
    }
}

// Subject returns the authenticated email, or "" for anonymous requests.
func Subject(c echo.Context) string {
    s, _ := c.Get(CtxSubject).(string)
    return s
}

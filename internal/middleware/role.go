package middleware // middleware provides shared request processing for handlers

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// RequireRole returns a middleware that lets a request through only when
// the role stored by TokenVerifier is one of roles (full authority names,
// e.g. "ROLE_ADMIN").  Other requests get 403 Forbidden.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    // Build the lookup set once, at registration time.
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // TokenVerifier must run first; without it no role is set and
            // the request is refused.
            role, ok := c.Get(CtxRole).(string)
            if !ok || !allowed[role] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}

package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinevision/internal/handler"
	"github.com/iliyamo/cinevision/internal/middleware"
)

// Authority required by the administration endpoints.
const adminRole = "ROLE_ADMIN"

// RegisterRoutes registers the routes every service exposes without
// authentication.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// UserRoutes carries the handlers and middleware of the user service.
type UserRoutes struct {
	Auth      *handler.AuthHandler
	Users     *handler.UserHandler
	JWTSecret string
	Limiter   echo.MiddlewareFunc // applied to the token-issuing endpoints; may be nil
}

// RegisterUser wires the user service's authorization policy:
//   - POST /api/user/auth/**  open (token issuing)
//   - /api/user/users/**      open (user management)
//   - every other declared /api route requires a verified bearer token
//
// The open user-management path is the platform's existing posture, kept
// as-is.  Keep the verifier on routes, not on an /api group: Echo applies
// group middleware to unmatched paths too, which would turn 404/405 under
// the open prefix into 401.
func RegisterUser(e *echo.Echo, r UserRoutes) {
	authGroup := e.Group("/api/user/auth")
	if r.Limiter != nil {
		authGroup.Use(r.Limiter)
	}
	authGroup.POST("/login", r.Auth.Login)

	users := e.Group("/api/user/users")
	users.POST("", r.Users.Register)
	users.GET("/:email", r.Users.Get)

	verify := middleware.TokenVerifier(r.JWTSecret)
	account := e.Group("/api/user")
	account.GET("/me", r.Auth.Me, verify)
	account.GET("/admin/users", r.Users.List, verify, middleware.RequireRole(adminRole))
}

// RegisterCatalog registers the catalog service's read endpoints.
func RegisterCatalog(e *echo.Echo, c *handler.CatalogHandler) {
	e.GET("/api/movie/summary", c.Summary)
}

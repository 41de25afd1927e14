package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"c2hr/internal/model"
	"c2hr/internal/repository"
)

const currentUserKey = "currentUser"

// ParseToken adapts JWTService validation to echo-jwt's ParseTokenFunc so the
// middleware and the token service share one validation path.
func ParseToken(jwtService *JWTService) func(c echo.Context, auth string) (interface{}, error) {
	return func(c echo.Context, auth string) (interface{}, error) {
		return jwtService.ValidateToken(auth)
	}
}

// LoadUser resolves the verified token's subject to a full user record and
// stashes it on the request context, so handlers always see the caller's
// current role and approval state. A token whose user no longer exists is
// rejected with 401 before any core logic runs.
func LoadUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user stashed by LoadUser, or nil on
// routes outside the secured group.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}

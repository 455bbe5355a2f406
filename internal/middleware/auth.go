package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aruiz-dev/tasklist/internal/logging"
	"github.com/aruiz-dev/tasklist/internal/models"
	"github.com/aruiz-dev/tasklist/internal/tokens"
)

// UserKey is the echo context key holding the resolved *models.User.
const UserKey = "user"

type UserFinder interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type BearerAuth struct {
	Tokens *tokens.Service
	Users  UserFinder
}

func NewBearerAuth(tokenSvc *tokens.Service, users UserFinder) *BearerAuth {
	return &BearerAuth{Tokens: tokenSvc, Users: users}
}

// RequireAuth resolves the Authorization header into a user. The subject is
// looked up fresh on every request; no resolved identity is cached.
func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		l := logging.FromContext(ctx).With("middleware", "bearer_auth")

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			l.Warn("auth_failed", "status", 401, "reason", "missing authorization header")
			return unauthorized(c, "invalid or missing token")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			l.Warn("auth_failed", "status", 401, "reason", "malformed authorization header")
			return unauthorized(c, "invalid or missing token")
		}

		claims, err := m.Tokens.Parse(parts[1])
		if err != nil {
			if errors.Is(err, tokens.ErrExpired) {
				l.Warn("auth_failed", "status", 401, "reason", "token expired")
				return unauthorized(c, "token expired")
			}
			l.Warn("auth_failed", "status", 401, "reason", "invalid token", "error", err)
			return unauthorized(c, "invalid or missing token")
		}

		user, err := m.Users.FindUserByUsername(ctx, claims.Subject)
		if err != nil {
			l.Warn("auth_failed", "status", 401, "reason", "unknown subject")
			return unauthorized(c, "invalid or missing token")
		}

		c.Set(UserKey, user)
		return next(c)
	}
}

func unauthorized(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}

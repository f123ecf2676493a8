package middleware

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/arkforge/arkpid/internal/present/rest/presenter"
)

var tracer = otel.Tracer("auth")

// AdminAuthMiddleware gates administrative operations behind a bearer
// token. The core only ever sees already-authorized calls; everything
// about the credential lives here.
type AdminAuthMiddleware struct {
	token string
}

func NewAdminAuthMiddleware(token string) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{token: token}
}

func (m *AdminAuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, span := tracer.Start(c.Request().Context(), "Auth.RequireAdmin")
		defer span.End()

		if m.token == "" {
			span.RecordError(fmt.Errorf("admin token not configured"))
			return presenter.Unauthorized(c, "administrative access is disabled")
		}

		authHeader := c.Request().Header.Get("Authorization")
		split := strings.Split(authHeader, " ")
		if len(split) != 2 || split[0] != "Bearer" {
			span.RecordError(fmt.Errorf("invalid authorization header"))
			return presenter.Unauthorized(c, "bearer token required")
		}

		if subtle.ConstantTimeCompare([]byte(split[1]), []byte(m.token)) != 1 {
			span.RecordError(fmt.Errorf("token mismatch"))
			return presenter.Unauthorized(c, "unauthorized")
		}

		return next(c)
	}
}

package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/clientdesk/portal/internal/core/domain"
)

// RequireRole gates a route on the role claim injected by Auth. The portal
// has a strict admin/client split, so each route allows exactly one role.
// Rejections surface as domain.ErrForbidden through the central error handler.
func RequireRole(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != expected {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

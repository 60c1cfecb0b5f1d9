package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

// RBAC restricts a route to the given roles. Denials surface as
// domain.ErrForbidden so the central error handler renders them.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty role and
// user_id prove the middleware ran and the token carried a usable identity.
func ctxClaims(c echo.Context) (userID, role string, err error) {
	role, _ = c.Get("role").(string)
	userID, _ = c.Get("user_id").(string)
	if role == "" || userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: subject id and role
// must both be present. A token without them is structurally valid but
// operationally unusable.
func ctxClaims(c echo.Context) (subjectID, username, role string, err error) {
	subjectID, _ = c.Get("subject_id").(string)
	role, _ = c.Get("role").(string)
	if subjectID == "" || role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ = c.Get("username").(string)
	return subjectID, username, role, nil
}

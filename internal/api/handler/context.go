package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/medilog/medilog-api/internal/api/middleware"
)

// ctxIdentity extracts the identity attached by the Identity middleware.
// ok is false when the request carried no valid token; handlers that
// require identity respond 401 in that case.
func ctxIdentity(c echo.Context) (userID int64, email string, ok bool) {
	userID, ok = c.Get(middleware.CtxUserID).(int64)
	if !ok {
		return 0, "", false
	}
	email, _ = c.Get(middleware.CtxUserEmail).(string)
	return userID, email, true
}

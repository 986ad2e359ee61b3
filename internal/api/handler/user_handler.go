package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medilog/medilog-api/internal/core/domain"
	"github.com/medilog/medilog-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile returns the authenticated user's account. The password hash is
// never serialized (json:"-" on the domain type).
//
// @Summary      Get the authenticated user's profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Router       /api/user/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	userID, _, ok := ctxIdentity(c)
	if !ok {
		return domain.ErrUnauthenticated
	}

	user, err := h.userService.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return OK(c, http.StatusOK, "Profile retrieved successfully", user)
}

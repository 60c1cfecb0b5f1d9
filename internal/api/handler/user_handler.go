package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodbridge/coordination-api/internal/core/domain"
	"github.com/foodbridge/coordination-api/internal/core/ports"
)

// UserHandler serves the lightweight user listing used by the dashboard.
type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

type basicUserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	DisplayLabel string `json:"display_label"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	Role         string `json:"role"`
}

// ListBasic handles GET /v1/users/basic.
//
// @Summary      List all users in a lightweight projection
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   basicUserResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/basic [get]
func (h *UserHandler) ListBasic(c echo.Context) error {
	users, err := h.users.ListBasic(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]basicUserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toBasicUser(u))
	}
	return c.JSON(http.StatusOK, resp)
}

func toBasicUser(u domain.User) basicUserResponse {
	return basicUserResponse{
		ID:           u.ID,
		Email:        u.Email,
		DisplayLabel: u.DisplayLabel(),
		AvatarURL:    u.AvatarURL,
		Role:         u.Role,
	}
}

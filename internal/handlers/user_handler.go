package handlers

import (
	"net/http"

	"inventory-backend/internal/dto"
	"inventory-backend/internal/errors"
	"inventory-backend/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler handles user administration endpoints
type UserHandler struct {
	userService services.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List returns a page of users. Admin only; the route is guarded by the
// role middleware.
// @Summary List users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListUsersResponse "Users"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 403 {object} errors.ErrorResponse "Forbidden - AUTH_005"
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}
	params.Normalize()

	users, total, err := h.userService.ListUsers(params.Offset(), params.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListUsersResponse{
		Users:      dto.ToUserProfileResponses(users),
		Pagination: dto.NewPaginationMeta(params, total),
	})
}

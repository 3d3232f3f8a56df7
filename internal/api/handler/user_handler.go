package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindlink/dashboard-api/internal/core/ports"
)

// UserHandler serves the admin user directory.
type UserHandler struct {
	directory ports.DirectoryService
}

func NewUserHandler(directory ports.DirectoryService) *UserHandler {
	return &UserHandler{directory: directory}
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=patient doctor caregiver admin"`
	Avatar   string `json:"avatar"`
}

type updateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive suspended"`
}

// ListUsers returns the directory narrowed by search/role/status. The search
// matches name or email, case-insensitively; role and status accept "all".
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        search  query     string  false  "substring match on name or email"
// @Param        role    query     string  false  "patient|doctor|caregiver|admin|all"
// @Param        status  query     string  false  "active|inactive|suspended|all"
// @Success      200     {object}  ports.ListUsersResult
// @Failure      401     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/admin/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	res, err := h.directory.ListUsers(c.Request().Context(), ports.ListUsersInput{
		Search: c.QueryParam("search"),
		Role:   c.QueryParam("role"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// CreateUser adds a directory entry.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/admin/users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.directory.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateUserStatus moves an account between active/inactive/suspended.
//
// @Summary      Update user status
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "User ID"
// @Param        body  body      updateUserStatusRequest  true  "New status"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/admin/users/{id}/status [patch]
func (h *UserHandler) UpdateUserStatus(c echo.Context) error {
	var req updateUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.directory.UpdateUserStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteUser removes a directory entry.
//
// @Summary      Delete user
// @Tags         users
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.directory.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

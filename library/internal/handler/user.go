package handler

import (
	"net/http"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListUsers(c echo.Context) error {
	pg, err := pager(c, "current", "size")
	if err != nil {
		return err
	}
	filter := model.UserFilter{
		Username: c.QueryParam("username"),
		FullName: c.QueryParam("full_name"),
		Phone:    c.QueryParam("phone"),
		Email:    c.QueryParam("email"),
	}
	if filter.IsActive, err = queryBool(c, "is_active"); err != nil {
		return err
	}
	if filter.IsAdmin, err = queryBool(c, "is_admin"); err != nil {
		return err
	}
	users, err := h.userSvc.ListUsers(c.Request().Context(), filter, pg)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userSvc.GetUser(c.Request().Context(), p, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.UserCreate
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.userSvc.CreateUser(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var patch model.UserUpdate
	if err := bind(c, &patch); err != nil {
		return err
	}
	user, err := h.userSvc.UpdateProfile(c.Request().Context(), p, patch)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var patch model.UserUpdate
	if err := bind(c, &patch); err != nil {
		return err
	}
	user, err := h.userSvc.UpdateUser(c.Request().Context(), p, id, patch)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.userSvc.DeleteUser(c.Request().Context(), p, id); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.Message{Message: "user deleted"})
}

func (h *Handler) DeleteUsers(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req model.UserIDs
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.userSvc.DeleteUsers(c.Request().Context(), p, req.IDs); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.Message{Message: "users deleted"})
}

func (h *Handler) ChangePassword(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req model.ChangePassword
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.userSvc.ChangePassword(c.Request().Context(), p, req); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.Message{Message: "password changed"})
}

func (h *Handler) ResetPassword(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.ResetPassword
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.userSvc.ResetPassword(c.Request().Context(), id, req.NewPassword); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.Message{Message: "password reset"})
}

func (h *Handler) ToggleUserStatus(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	active, err := h.userSvc.ToggleUserStatus(c.Request().Context(), p, id)
	if err != nil {
		return h.httpError(err)
	}
	msg := "user disabled"
	if active {
		msg = "user enabled"
	}
	return c.JSON(http.StatusOK, model.ToggleStatus{Message: msg, IsActive: active})
}

func (h *Handler) UserStats(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	stats, err := h.userSvc.UserStats(c.Request().Context(), p)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) Statistics(c echo.Context) error {
	stats, err := h.userSvc.Statistics(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

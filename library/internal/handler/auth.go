package handler

import (
	"net/http"
	"strings"

	"github.com/Astemirdum/library-management/library/internal/model"
	md "github.com/Astemirdum/library-management/pkg/middleware"
	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	tokens, err := h.authSvc.Login(c.Request().Context(), req.UserName, req.Password)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, tokens)
}

// LoginForm accepts OAuth2 password-flow form fields.
func (h *Handler) LoginForm(c echo.Context) error {
	username, password := c.FormValue("username"), c.FormValue("password")
	if username == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}
	tokens, err := h.authSvc.Login(c.Request().Context(), username, password)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, tokens)
}

func (h *Handler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	tokens, err := h.authSvc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, tokens)
}

// RefreshFromHeader reads the refresh token from the bearer header.
func (h *Handler) RefreshFromHeader(c echo.Context) error {
	token := strings.TrimPrefix(c.Request().Header.Get(md.AuthorizationHeader), "Bearer ")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authorization header")
	}
	tokens, err := h.authSvc.Refresh(c.Request().Context(), token)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, tokens)
}

// BackendError echoes a client supplied error code.
func (h *Handler) BackendError(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"code":    c.QueryParam("code"),
		"message": c.QueryParam("msg"),
	})
}

func (h *Handler) Register(c echo.Context) error {
	var req model.UserCreate
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.authSvc.Register(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Logout is stateless, the client drops its tokens.
func (h *Handler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Message{Message: "logged out"})
}

func (h *Handler) GetUserInfo(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	info, err := h.authSvc.UserInfo(c.Request().Context(), p)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, info)
}

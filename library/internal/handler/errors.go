package handler

import (
	"net/http"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var kindStatus = map[errs.Kind]int{
	errs.KindNotFound:      http.StatusNotFound,
	errs.KindConflict:      http.StatusBadRequest,
	errs.KindUnauthorized:  http.StatusUnauthorized,
	errs.KindForbidden:     http.StatusForbidden,
	errs.KindUnprocessable: http.StatusBadRequest,
}

func (h *Handler) httpError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	if code, ok := kindStatus[errs.KindOf(err)]; ok {
		return echo.NewHTTPError(code, err.Error())
	}
	h.log.Error("internal", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func badRequest(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func principal(c echo.Context) (auth.Principal, error) {
	p, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return auth.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return p, nil
}

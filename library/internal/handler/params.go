package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/labstack/echo/v4"
)

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	param := c.QueryParam(name)
	if param == "" {
		return def, nil
	}
	v, err := strconv.Atoi(param)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return v, nil
}

func queryInt64(c echo.Context, name string) (*int64, error) {
	param := c.QueryParam(name)
	if param == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return &v, nil
}

func queryBool(c echo.Context, name string) (*bool, error) {
	param := c.QueryParam(name)
	if param == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(param)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return &v, nil
}

// pager reads 1-based paging from pageParam and sizeParam.
func pager(c echo.Context, pageParam, sizeParam string) (model.Pager, error) {
	page, err := queryInt(c, pageParam, 1)
	if err != nil {
		return model.Pager{}, err
	}
	size, err := queryInt(c, sizeParam, model.DefaultPageSize)
	if err != nil {
		return model.Pager{}, err
	}
	if page < 1 || size < 1 || size > model.MaxPageSize || !model.OffsetFits(page, size) {
		return model.Pager{}, echo.NewHTTPError(http.StatusBadRequest, "page is out of range")
	}
	return model.NewPager(page, size), nil
}

// bind decodes and validates the request body.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

package handler

import (
	"net/http"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/labstack/echo/v4"
)

func queryStatus(c echo.Context) (model.BorrowStatus, error) {
	status := model.BorrowStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return "", echo.NewHTTPError(http.StatusBadRequest, "status is invalid")
	}
	return status, nil
}

func (h *Handler) ListBorrows(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	pg, err := pager(c, "page", "page_size")
	if err != nil {
		return err
	}
	filter := model.BorrowFilter{Search: c.QueryParam("search")}
	if filter.UserID, err = queryInt64(c, "user_id"); err != nil {
		return err
	}
	if filter.BookID, err = queryInt64(c, "book_id"); err != nil {
		return err
	}
	if filter.Status, err = queryStatus(c); err != nil {
		return err
	}
	overdue, err := queryBool(c, "overdue_only")
	if err != nil {
		return err
	}
	filter.OverdueOnly = overdue != nil && *overdue

	borrows, err := h.borrowSvc.ListBorrows(c.Request().Context(), p, filter, pg)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, borrows)
}

func (h *Handler) GetBorrow(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	borrow, err := h.borrowSvc.GetBorrow(c.Request().Context(), p, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, borrow)
}

func (h *Handler) UserBorrows(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	status, err := queryStatus(c)
	if err != nil {
		return err
	}
	borrows, err := h.borrowSvc.UserBorrows(c.Request().Context(), p, userID, status)
	if err != nil {
		return h.httpError(err)
	}
	if borrows == nil {
		borrows = []model.BorrowDetails{}
	}
	return c.JSON(http.StatusOK, echo.Map{"borrows": borrows})
}

func (h *Handler) BorrowBook(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req model.BorrowRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.borrowSvc.BorrowBook(c.Request().Context(), p, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.ReturnRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.borrowSvc.ReturnBook(c.Request().Context(), p, id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) RenewBook(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.RenewRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.borrowSvc.RenewBook(c.Request().Context(), p, id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) BorrowStats(c echo.Context) error {
	stats, err := h.borrowSvc.BorrowStats(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) OverdueBorrows(c echo.Context) error {
	borrows, err := h.borrowSvc.OverdueBorrows(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	if borrows == nil {
		borrows = []model.OverdueBorrow{}
	}
	return c.JSON(http.StatusOK, echo.Map{"overdue_borrows": borrows})
}

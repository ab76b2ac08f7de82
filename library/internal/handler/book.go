package handler

import (
	"net/http"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListBooks(c echo.Context) error {
	pg, err := pager(c, "current", "size")
	if err != nil {
		return err
	}
	filter := model.BookFilter{
		Search:    c.QueryParam("search"),
		Title:     c.QueryParam("title"),
		Author:    c.QueryParam("author"),
		Publisher: c.QueryParam("publisher"),
		Category:  c.QueryParam("category"),
	}
	books, err := h.bookSvc.ListBooks(c.Request().Context(), filter, pg)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	book, err := h.bookSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookCreate
	if err := bind(c, &req); err != nil {
		return err
	}
	book, err := h.bookSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var patch model.BookUpdate
	if err := bind(c, &patch); err != nil {
		return err
	}
	book, err := h.bookSvc.UpdateBook(c.Request().Context(), id, patch)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.bookSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.Message{Message: "book deleted"})
}

func (h *Handler) DeleteBooks(c echo.Context) error {
	var req model.BookIDs
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.bookSvc.DeleteBooks(c.Request().Context(), req.IDs); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.Message{Message: "books deleted"})
}

func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.bookSvc.Categories(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": nonNil(categories)})
}

func (h *Handler) Authors(c echo.Context) error {
	authors, err := h.bookSvc.Authors(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"authors": nonNil(authors)})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

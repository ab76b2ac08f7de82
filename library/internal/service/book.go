package service

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
)

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter, pager model.Pager) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, filter, pager)
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, req model.BookCreate) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, patch model.BookUpdate) (model.Book, error) {
	return s.repo.UpdateBook(ctx, id, patch)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) DeleteBooks(ctx context.Context, ids []int64) error {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return errs.ErrEmptyIDs
	}
	return s.repo.RunInTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		n, err := tx.CountBooks(ctx, ids)
		if err != nil {
			return err
		}
		if n != len(ids) {
			return errs.ErrBookNotFound
		}
		return tx.DeleteBooks(ctx, ids)
	})
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *Service) Authors(ctx context.Context) ([]string, error) {
	return s.repo.Authors(ctx)
}

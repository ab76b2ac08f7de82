package service

import (
	"context"
	"time"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/Astemirdum/library-management/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (s *Service) BorrowBook(ctx context.Context, p auth.Principal, req model.BorrowRequest) (model.BorrowCreated, error) {
	userID := p.UserID
	if req.UserID != nil {
		if !p.CanAccessUser(*req.UserID) {
			return model.BorrowCreated{}, errs.ErrForbidden
		}
		userID = *req.UserID
	}
	days, err := s.period(req.BorrowDays)
	if err != nil {
		return model.BorrowCreated{}, err
	}

	now := s.now()
	var created model.Borrow
	err = s.repo.RunInTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		user, err := tx.LockUser(ctx, userID)
		if err != nil {
			return err
		}
		if !user.IsActive {
			return errs.ErrUserInactive
		}
		book, err := tx.GetBook(ctx, req.BookID)
		if err != nil {
			return err
		}
		if book.StockQuantity <= 0 {
			return errs.ErrOutOfStock
		}
		borrowed, err := tx.HasActiveBorrow(ctx, userID, req.BookID)
		if err != nil {
			return errors.Wrap(err, "has active borrow")
		}
		if borrowed {
			return errs.ErrAlreadyBorrowed
		}
		active, err := tx.CountActiveBorrows(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "count active borrows")
		}
		if active >= s.policy.MaxActive {
			return errs.ErrBorrowLimitExceeded
		}

		created, err = tx.CreateBorrow(ctx, model.Borrow{
			UserID:     userID,
			BookID:     req.BookID,
			BorrowDate: now,
			DueDate:    model.AddDays(now, days),
			Status:     model.BorrowStatusBorrowed,
			Notes:      req.Notes,
		})
		if err != nil {
			return err
		}
		if s.policy.TrackStock {
			return tx.AdjustStock(ctx, req.BookID, -1)
		}
		return nil
	})
	if err != nil {
		return model.BorrowCreated{}, err
	}

	s.log.Info("book borrowed",
		zap.Int64("borrow_id", created.ID),
		zap.Int64("user_id", userID),
		zap.Int64("book_id", req.BookID))
	s.publish(ctx, kafka.EventBorrowed, created)

	return model.BorrowCreated{
		Message:  "book borrowed",
		BorrowID: created.ID,
		DueDate:  created.DueDate,
	}, nil
}

// lockOwnBorrow locks an active record the caller is allowed to change.
// Records of other users are reported as missing.
func lockOwnBorrow(ctx context.Context, tx repository.Repository, p auth.Principal, id int64, to model.BorrowStatus) (model.Borrow, error) {
	b, err := tx.LockActiveBorrow(ctx, id)
	if err != nil {
		return model.Borrow{}, err
	}
	if !p.CanAccessUser(b.UserID) || !b.Status.CanTransition(to) {
		return model.Borrow{}, errs.ErrBorrowNotFound
	}
	return b, nil
}

func (s *Service) ReturnBook(ctx context.Context, p auth.Principal, id int64, req model.ReturnRequest) (model.ReturnResult, error) {
	now := s.now()
	var returned model.Borrow
	err := s.repo.RunInTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		b, err := lockOwnBorrow(ctx, tx, p, id, model.BorrowStatusReturned)
		if err != nil {
			return err
		}
		b.FineAmount = Fine(b.DueDate, now, s.policy.FinePerDay)
		if err := tx.CompleteReturn(ctx, id, now, b.FineAmount, noteSuffix("return note", req.Notes)); err != nil {
			return err
		}
		returned = b
		if s.policy.TrackStock {
			return tx.AdjustStock(ctx, b.BookID, 1)
		}
		return nil
	})
	if err != nil {
		return model.ReturnResult{}, err
	}

	s.log.Info("book returned",
		zap.Int64("borrow_id", id),
		zap.Float64("fine", returned.FineAmount))
	s.publish(ctx, kafka.EventReturned, returned)

	return model.ReturnResult{
		Message:    "book returned",
		ReturnDate: now,
		FineAmount: returned.FineAmount,
	}, nil
}

func (s *Service) RenewBook(ctx context.Context, p auth.Principal, id int64, req model.RenewRequest) (model.RenewResult, error) {
	days, err := s.period(req.RenewalDays)
	if err != nil {
		return model.RenewResult{}, err
	}
	now := s.now()
	var renewed model.Borrow
	err = s.repo.RunInTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		b, err := lockOwnBorrow(ctx, tx, p, id, model.BorrowStatusBorrowed)
		if err != nil {
			return err
		}
		if b.RenewalCount >= s.policy.MaxRenewals {
			return errs.ErrRenewalLimitExceeded
		}
		if now.After(b.DueDate) {
			return errs.ErrOverdueCannotRenew
		}
		b.DueDate = model.AddDays(b.DueDate, days)
		b.RenewalCount++
		if err := tx.ExtendDueDate(ctx, id, b.DueDate, noteSuffix("renewal note", req.Notes)); err != nil {
			return err
		}
		renewed = b
		return nil
	})
	if err != nil {
		return model.RenewResult{}, err
	}

	s.publish(ctx, kafka.EventRenewed, renewed)

	return model.RenewResult{
		Message:      "book renewed",
		NewDueDate:   renewed.DueDate,
		RenewalCount: renewed.RenewalCount,
	}, nil
}

func (s *Service) ListBorrows(ctx context.Context, p auth.Principal, filter model.BorrowFilter, pager model.Pager) (model.ListBorrows, error) {
	filter = ScopeBorrowFilter(p, filter)
	filter.Now = s.now()
	list, err := s.repo.ListBorrows(ctx, filter, pager)
	if err != nil {
		return model.ListBorrows{}, err
	}
	for i := range list.Records {
		list.Records[i].Derive(filter.Now)
	}
	return list, nil
}

func (s *Service) GetBorrow(ctx context.Context, p auth.Principal, id int64) (model.BorrowDetails, error) {
	b, err := s.repo.GetBorrowDetails(ctx, id)
	if err != nil {
		return model.BorrowDetails{}, err
	}
	if !p.CanAccessUser(b.UserID) {
		return model.BorrowDetails{}, errs.ErrBorrowNotFound
	}
	b.Derive(s.now())
	return b, nil
}

func (s *Service) UserBorrows(ctx context.Context, p auth.Principal, userID int64, status model.BorrowStatus) ([]model.BorrowDetails, error) {
	if !p.CanAccessUser(userID) {
		return nil, errs.ErrForbidden
	}
	borrows, err := s.repo.ListUserBorrows(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range borrows {
		borrows[i].Derive(now)
	}
	return borrows, nil
}

func (s *Service) BorrowStats(ctx context.Context) (model.BorrowStats, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.repo.BorrowStats(ctx, now, dayStart, dayStart.AddDate(0, 0, 1))
}

func (s *Service) OverdueBorrows(ctx context.Context) ([]model.OverdueBorrow, error) {
	now := s.now()
	borrows, err := s.repo.ListOverdue(ctx, now)
	if err != nil {
		return nil, err
	}
	for i := range borrows {
		borrows[i].DaysOverdue = model.DaysBetween(borrows[i].DueDate, now)
	}
	return borrows, nil
}

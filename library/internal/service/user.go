package service

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/Astemirdum/library-management/pkg/validate"
	"go.uber.org/zap"
)

func checkPhone(phone *string) error {
	if phone != nil && !validate.Phone(*phone) {
		return errs.ErrInvalidPhone
	}
	return nil
}

func (s *Service) ListUsers(ctx context.Context, filter model.UserFilter, pager model.Pager) (model.ListUsers, error) {
	return s.repo.ListUsers(ctx, filter, pager)
}

func (s *Service) GetUser(ctx context.Context, p auth.Principal, id int64) (model.User, error) {
	if !p.CanAccessUser(id) {
		return model.User{}, errs.ErrForbidden
	}
	return s.repo.GetUser(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, req model.UserCreate) (model.User, error) {
	if !validate.Password(req.Password) {
		return model.User{}, errs.ErrWeakPassword
	}
	if err := checkPhone(req.Phone); err != nil {
		return model.User{}, err
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.User{}, err
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	user, err := s.repo.CreateUser(ctx, model.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hash,
		FullName:       req.FullName,
		Phone:          req.Phone,
		IsActive:       active,
		IsAdmin:        req.IsAdmin,
	})
	if err != nil {
		return model.User{}, err
	}
	s.log.Info("user created", zap.Int64("user_id", user.ID), zap.Bool("admin", user.IsAdmin))
	return user, nil
}

// UpdateUser applies an admin patch. Admins cannot change their own role or status.
func (s *Service) UpdateUser(ctx context.Context, p auth.Principal, id int64, patch model.UserUpdate) (model.User, error) {
	if p.UserID == id && (patch.IsActive != nil || patch.IsAdmin != nil) {
		return model.User{}, errs.ErrSelfModification
	}
	return s.updateUser(ctx, id, patch)
}

func (s *Service) updateUser(ctx context.Context, id int64, patch model.UserUpdate) (model.User, error) {
	if err := checkPhone(patch.Phone); err != nil {
		return model.User{}, err
	}
	return s.repo.UpdateUser(ctx, id, patch)
}

// UpdateProfile lets a user edit their own account without touching role or status.
func (s *Service) UpdateProfile(ctx context.Context, p auth.Principal, patch model.UserUpdate) (model.User, error) {
	return s.updateUser(ctx, p.UserID, patch.Profile())
}

func (s *Service) DeleteUser(ctx context.Context, p auth.Principal, id int64) error {
	if p.UserID == id {
		return errs.ErrSelfModification
	}
	return s.repo.DeleteUser(ctx, id)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *Service) DeleteUsers(ctx context.Context, p auth.Principal, ids []int64) error {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return errs.ErrEmptyIDs
	}
	for _, id := range ids {
		if id == p.UserID {
			return errs.ErrSelfModification
		}
	}
	return s.repo.RunInTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		n, err := tx.CountUsers(ctx, ids)
		if err != nil {
			return err
		}
		if n != len(ids) {
			return errs.ErrUserNotFound
		}
		return tx.DeleteUsers(ctx, ids)
	})
}

func (s *Service) ChangePassword(ctx context.Context, p auth.Principal, req model.ChangePassword) error {
	if !validate.Password(req.NewPassword) {
		return errs.ErrWeakPassword
	}
	user, err := s.repo.GetUser(ctx, p.UserID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.HashedPassword, req.OldPassword) {
		return errs.ErrWrongPassword
	}
	return s.setPassword(ctx, user.ID, req.NewPassword)
}

func (s *Service) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	if !validate.Password(newPassword) {
		return errs.ErrWeakPassword
	}
	return s.setPassword(ctx, id, newPassword)
}

func (s *Service) setPassword(ctx context.Context, id int64, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, hash)
}

func (s *Service) ToggleUserStatus(ctx context.Context, p auth.Principal, id int64) (bool, error) {
	if p.UserID == id {
		return false, errs.ErrSelfModification
	}
	return s.repo.ToggleUserActive(ctx, id)
}

func (s *Service) UserStats(ctx context.Context, p auth.Principal) (model.UserStats, error) {
	return s.repo.UserStats(ctx, p.UserID, s.now())
}

func (s *Service) Statistics(ctx context.Context) (model.SiteStatistics, error) {
	return s.repo.SiteStatistics(ctx, s.now())
}

package service

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func principalOf(u model.User) auth.Principal {
	return auth.Principal{
		UserID:   u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
		IsActive: u.IsActive,
	}
}

func (s *Service) Login(ctx context.Context, username, password string) (auth.Tokens, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return auth.Tokens{}, errs.ErrInvalidCredentials
		}
		return auth.Tokens{}, err
	}
	if !auth.CheckPassword(user.HashedPassword, password) {
		return auth.Tokens{}, errs.ErrInvalidCredentials
	}
	if !user.IsActive {
		return auth.Tokens{}, errs.ErrAccountDisabled
	}
	s.log.Info("login", zap.Int64("user_id", user.ID))
	return s.tokens.Issue(principalOf(user))
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.Tokens, error) {
	claims, err := s.tokens.Parse(refreshToken, auth.TokenRefresh)
	if err != nil {
		return auth.Tokens{}, err
	}
	p, err := s.Principal(ctx, claims.UserID)
	if err != nil {
		return auth.Tokens{}, err
	}
	return s.tokens.IssueAccess(p)
}

// Principal reloads the caller so deactivation and role changes apply immediately.
func (s *Service) Principal(ctx context.Context, userID int64) (auth.Principal, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return auth.Principal{}, errs.ErrAccountDisabled
		}
		return auth.Principal{}, err
	}
	if !user.IsActive {
		return auth.Principal{}, errs.ErrAccountDisabled
	}
	return principalOf(user), nil
}

func (s *Service) UserInfo(ctx context.Context, p auth.Principal) (model.UserInfo, error) {
	user, err := s.repo.GetUser(ctx, p.UserID)
	if err != nil {
		return model.UserInfo{}, err
	}
	return model.UserInfo{
		UserID:   user.ID,
		UserName: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Phone:    user.Phone,
		IsActive: user.IsActive,
		Roles:    principalOf(user).Roles(),
	}, nil
}

func (s *Service) Register(ctx context.Context, req model.UserCreate) (model.User, error) {
	req.IsAdmin = false
	req.IsActive = nil
	return s.CreateUser(ctx, req)
}

package handler

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/service"
	"github.com/Astemirdum/library-management/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	Login(ctx context.Context, username, password string) (auth.Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (auth.Tokens, error)
	Register(ctx context.Context, req model.UserCreate) (model.User, error)
	Principal(ctx context.Context, userID int64) (auth.Principal, error)
	UserInfo(ctx context.Context, p auth.Principal) (model.UserInfo, error)
}

type UserService interface {
	ListUsers(ctx context.Context, filter model.UserFilter, pager model.Pager) (model.ListUsers, error)
	GetUser(ctx context.Context, p auth.Principal, id int64) (model.User, error)
	CreateUser(ctx context.Context, req model.UserCreate) (model.User, error)
	UpdateUser(ctx context.Context, p auth.Principal, id int64, patch model.UserUpdate) (model.User, error)
	UpdateProfile(ctx context.Context, p auth.Principal, patch model.UserUpdate) (model.User, error)
	DeleteUser(ctx context.Context, p auth.Principal, id int64) error
	DeleteUsers(ctx context.Context, p auth.Principal, ids []int64) error
	ChangePassword(ctx context.Context, p auth.Principal, req model.ChangePassword) error
	ResetPassword(ctx context.Context, id int64, newPassword string) error
	ToggleUserStatus(ctx context.Context, p auth.Principal, id int64) (bool, error)
	UserStats(ctx context.Context, p auth.Principal) (model.UserStats, error)
	Statistics(ctx context.Context) (model.SiteStatistics, error)
}

type BookService interface {
	ListBooks(ctx context.Context, filter model.BookFilter, pager model.Pager) (model.ListBooks, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	CreateBook(ctx context.Context, req model.BookCreate) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, patch model.BookUpdate) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	DeleteBooks(ctx context.Context, ids []int64) error
	Categories(ctx context.Context) ([]string, error)
	Authors(ctx context.Context) ([]string, error)
}

type BorrowService interface {
	BorrowBook(ctx context.Context, p auth.Principal, req model.BorrowRequest) (model.BorrowCreated, error)
	ReturnBook(ctx context.Context, p auth.Principal, id int64, req model.ReturnRequest) (model.ReturnResult, error)
	RenewBook(ctx context.Context, p auth.Principal, id int64, req model.RenewRequest) (model.RenewResult, error)
	ListBorrows(ctx context.Context, p auth.Principal, filter model.BorrowFilter, pager model.Pager) (model.ListBorrows, error)
	GetBorrow(ctx context.Context, p auth.Principal, id int64) (model.BorrowDetails, error)
	UserBorrows(ctx context.Context, p auth.Principal, userID int64, status model.BorrowStatus) ([]model.BorrowDetails, error)
	BorrowStats(ctx context.Context) (model.BorrowStats, error)
	OverdueBorrows(ctx context.Context) ([]model.OverdueBorrow, error)
}

type Services interface {
	AuthService
	UserService
	BookService
	BorrowService
}

var _ Services = (*service.Service)(nil)

package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Astemirdum/library-management/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Users interface {
	GetUser(ctx context.Context, id int64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	// LockUser reads the user row FOR UPDATE.
	LockUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context, filter model.UserFilter, pager model.Pager) (model.ListUsers, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	UpdateUser(ctx context.Context, id int64, patch model.UserUpdate) (model.User, error)
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
	ToggleUserActive(ctx context.Context, id int64) (bool, error)
	DeleteUser(ctx context.Context, id int64) error
	CountUsers(ctx context.Context, ids []int64) (int, error)
	DeleteUsers(ctx context.Context, ids []int64) error
}

type Books interface {
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter, pager model.Pager) (model.ListBooks, error)
	CreateBook(ctx context.Context, book model.BookCreate) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, patch model.BookUpdate) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	CountBooks(ctx context.Context, ids []int64) (int, error)
	DeleteBooks(ctx context.Context, ids []int64) error
	Categories(ctx context.Context) ([]string, error)
	Authors(ctx context.Context) ([]string, error)
	// AdjustStock adds delta to stock_quantity, refusing to go below zero.
	AdjustStock(ctx context.Context, id int64, delta int) error
}

type Borrows interface {
	CreateBorrow(ctx context.Context, borrow model.Borrow) (model.Borrow, error)
	// LockActiveBorrow reads a borrowed record FOR UPDATE.
	LockActiveBorrow(ctx context.Context, id int64) (model.Borrow, error)
	HasActiveBorrow(ctx context.Context, userID, bookID int64) (bool, error)
	CountActiveBorrows(ctx context.Context, userID int64) (int, error)
	CompleteReturn(ctx context.Context, id int64, returnedAt time.Time, fine float64, note string) error
	ExtendDueDate(ctx context.Context, id int64, dueDate time.Time, note string) error
	GetBorrowDetails(ctx context.Context, id int64) (model.BorrowDetails, error)
	ListBorrows(ctx context.Context, filter model.BorrowFilter, pager model.Pager) (model.ListBorrows, error)
	ListUserBorrows(ctx context.Context, userID int64, status model.BorrowStatus) ([]model.BorrowDetails, error)
	ListOverdue(ctx context.Context, now time.Time) ([]model.OverdueBorrow, error)
}

type Stats interface {
	BorrowStats(ctx context.Context, now, dayStart, dayEnd time.Time) (model.BorrowStats, error)
	UserStats(ctx context.Context, userID int64, now time.Time) (model.UserStats, error)
	SiteStatistics(ctx context.Context, now time.Time) (model.SiteStatistics, error)
}

type Repository interface {
	Users
	Books
	Borrows
	Stats
	// RunInTx runs fn in a read committed transaction; any error rolls it back.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	pool *pgxpool.Pool
	db   querier
	log  *zap.Logger
}

func NewRepository(pool *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		pool: pool,
		db:   pool,
		log:  log.Named("repo"),
	}, nil
}

const (
	usersTableName   = `users`
	booksTableName   = `books`
	borrowsTableName = `borrows`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error {
	if r.pool == nil {
		// already inside a transaction
		return fn(ctx, r)
	}
	return pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, log: r.log})
	})
}

func (r *repository) exec(ctx context.Context, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Debug("exec", zap.String("q", query), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repository) count(ctx context.Context, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func selectAll[T any](ctx context.Context, db querier, b sq.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func selectOne[T any](ctx context.Context, db querier, b sq.Sqlizer, notFound error) (T, error) {
	var zero T
	query, args, err := b.ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, notFound
		}
		return zero, err
	}
	return item, nil
}

// uniqueViolation returns the violated constraint name for SQLSTATE 23505.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func ilike(s string) string {
	return "%" + s + "%"
}

func columnList(cols []string) string {
	return strings.Join(cols, ", ")
}

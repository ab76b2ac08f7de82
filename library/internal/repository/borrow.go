package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

const activeBorrowIndex = "borrows_active_user_book_uidx"

var borrowColumns = []string{
	"id", "user_id", "book_id", "borrow_date", "due_date", "return_date", "status",
	"renewal_count", "fine_amount", "notes", "created_at", "updated_at",
}

func (r *repository) CreateBorrow(ctx context.Context, b model.Borrow) (model.Borrow, error) {
	q := qb.Insert(borrowsTableName).
		Columns("user_id", "book_id", "borrow_date", "due_date", "status", "renewal_count", "fine_amount", "notes").
		Values(b.UserID, b.BookID, b.BorrowDate, b.DueDate, string(model.BorrowStatusBorrowed), 0, 0, b.Notes).
		Suffix("returning " + columnList(borrowColumns))
	created, err := selectOne[model.Borrow](ctx, r.db, q, errs.ErrBorrowNotFound)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == activeBorrowIndex {
			return model.Borrow{}, errs.ErrAlreadyBorrowed
		}
		return model.Borrow{}, err
	}
	return created, nil
}

func (r *repository) LockActiveBorrow(ctx context.Context, id int64) (model.Borrow, error) {
	q := qb.Select(borrowColumns...).
		From(borrowsTableName).
		Where(sq.Eq{"id": id, "status": string(model.BorrowStatusBorrowed)}).
		Suffix("for update")
	return selectOne[model.Borrow](ctx, r.db, q, errs.ErrBorrowNotFound)
}

func (r *repository) HasActiveBorrow(ctx context.Context, userID, bookID int64) (bool, error) {
	query, args, err := qb.Select("1").
		From(borrowsTableName).
		Where(sq.Eq{"user_id": userID, "book_id": bookID, "status": string(model.BorrowStatusBorrowed)}).
		Prefix("select exists (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}
	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) CountActiveBorrows(ctx context.Context, userID int64) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(borrowsTableName).
		Where(sq.Eq{"user_id": userID, "status": string(model.BorrowStatusBorrowed)}))
}

// appendNote keeps previous notes and adds note to the end.
func appendNote(note string) sq.Sqlizer {
	return sq.Expr("nullif(coalesce(notes, '') || ?::text, '')", note)
}

func (r *repository) CompleteReturn(ctx context.Context, id int64, returnedAt time.Time, fine float64, note string) error {
	n, err := r.exec(ctx, qb.Update(borrowsTableName).
		Set("status", string(model.BorrowStatusReturned)).
		Set("return_date", returnedAt).
		Set("fine_amount", fine).
		Set("notes", appendNote(note)).
		Set("updated_at", returnedAt).
		Where(sq.Eq{"id": id, "status": string(model.BorrowStatusBorrowed)}))
	if err != nil {
		return errors.Wrap(err, "complete return")
	}
	if n == 0 {
		return errs.ErrBorrowNotFound
	}
	return nil
}

func (r *repository) ExtendDueDate(ctx context.Context, id int64, dueDate time.Time, note string) error {
	n, err := r.exec(ctx, qb.Update(borrowsTableName).
		Set("due_date", dueDate).
		Set("renewal_count", sq.Expr("renewal_count + 1")).
		Set("notes", appendNote(note)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": string(model.BorrowStatusBorrowed)}))
	if err != nil {
		return errors.Wrap(err, "extend due date")
	}
	if n == 0 {
		return errs.ErrBorrowNotFound
	}
	return nil
}

func borrowDetailsColumns() []string {
	return []string{
		"b.id", "b.user_id", "u.username as user_name", "u.email as user_email",
		"b.book_id", "bk.title as book_title", "bk.author as book_author", "bk.isbn as book_isbn",
		"b.borrow_date", "b.due_date", "b.return_date", "b.status",
		"b.renewal_count", "b.fine_amount", "b.notes",
	}
}

func joinUsersBooks(q sq.SelectBuilder) sq.SelectBuilder {
	return q.From(borrowsTableName + " b").
		Join(fmt.Sprintf("%s u on u.id = b.user_id", usersTableName)).
		Join(fmt.Sprintf("%s bk on bk.id = b.book_id", booksTableName))
}

func borrowWhere(f model.BorrowFilter) sq.And {
	where := sq.And{}
	if f.UserID != nil {
		where = append(where, sq.Eq{"b.user_id": *f.UserID})
	}
	if f.BookID != nil {
		where = append(where, sq.Eq{"b.book_id": *f.BookID})
	}
	if f.Status != "" {
		where = append(where, sq.Eq{"b.status": string(f.Status)})
	}
	if f.Search != "" {
		s := ilike(f.Search)
		where = append(where, sq.Or{
			sq.ILike{"u.username": s},
			sq.ILike{"bk.title": s},
			sq.ILike{"bk.author": s},
		})
	}
	if f.OverdueOnly {
		where = append(where,
			sq.Lt{"b.due_date": f.Now},
			sq.Eq{"b.status": string(model.BorrowStatusBorrowed)},
		)
	}
	return where
}

func (r *repository) GetBorrowDetails(ctx context.Context, id int64) (model.BorrowDetails, error) {
	q := joinUsersBooks(qb.Select(borrowDetailsColumns()...)).
		Where(sq.Eq{"b.id": id})
	return selectOne[model.BorrowDetails](ctx, r.db, q, errs.ErrBorrowNotFound)
}

func (r *repository) ListBorrows(ctx context.Context, filter model.BorrowFilter, pager model.Pager) (model.ListBorrows, error) {
	where := borrowWhere(filter)
	total, err := r.count(ctx, joinUsersBooks(qb.Select("count(*)")).Where(where))
	if err != nil {
		return model.ListBorrows{}, errors.Wrap(err, "count borrows")
	}
	q := joinUsersBooks(qb.Select(borrowDetailsColumns()...)).
		Where(where).
		OrderBy("b.borrow_date desc", "b.id desc").
		Limit(pager.Limit()).
		Offset(pager.Offset())
	borrows, err := selectAll[model.BorrowDetails](ctx, r.db, q)
	if err != nil {
		return model.ListBorrows{}, errors.Wrap(err, "list borrows")
	}
	return model.ListBorrows{Records: borrows, Paging: pager.Paging(total)}, nil
}

func (r *repository) ListUserBorrows(ctx context.Context, userID int64, status model.BorrowStatus) ([]model.BorrowDetails, error) {
	q := joinUsersBooks(qb.Select(borrowDetailsColumns()...)).
		Where(borrowWhere(model.BorrowFilter{UserID: &userID, Status: status})).
		OrderBy("b.borrow_date desc", "b.id desc")
	return selectAll[model.BorrowDetails](ctx, r.db, q)
}

func (r *repository) ListOverdue(ctx context.Context, now time.Time) ([]model.OverdueBorrow, error) {
	q := joinUsersBooks(qb.Select(
		"b.id", "b.user_id", "u.username", "u.email", "u.phone",
		"b.book_id", "bk.title as book_title", "bk.author as book_author",
		"b.borrow_date", "b.due_date", "b.renewal_count",
	)).
		Where(sq.Eq{"b.status": string(model.BorrowStatusBorrowed)}).
		Where(sq.Lt{"b.due_date": now}).
		OrderBy("b.due_date asc")
	return selectAll[model.OverdueBorrow](ctx, r.db, q)
}

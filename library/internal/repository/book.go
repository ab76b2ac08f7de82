package repository

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var bookColumns = []string{
	"id", "title", "author", "isbn", "publisher", "publish_date", "category",
	"price", "stock_quantity", "description", "created_at", "updated_at",
}

func bookConflict(err error) error {
	if constraint, ok := uniqueViolation(err); ok && constraint == "books_isbn_key" {
		return errs.ErrDuplicateISBN
	}
	return err
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id})
	return selectOne[model.Book](ctx, r.db, q, errs.ErrBookNotFound)
}

func bookWhere(f model.BookFilter) sq.And {
	where := sq.And{}
	if f.Search != "" {
		s := ilike(f.Search)
		where = append(where, sq.Or{
			sq.ILike{"title": s},
			sq.ILike{"author": s},
			sq.ILike{"isbn": s},
		})
	}
	if f.Title != "" {
		where = append(where, sq.ILike{"title": ilike(f.Title)})
	}
	if f.Author != "" {
		where = append(where, sq.ILike{"author": ilike(f.Author)})
	}
	if f.Publisher != "" {
		where = append(where, sq.ILike{"publisher": ilike(f.Publisher)})
	}
	if f.Category != "" {
		where = append(where, sq.Eq{"category": f.Category})
	}
	return where
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter, pager model.Pager) (model.ListBooks, error) {
	where := bookWhere(filter)
	total, err := r.count(ctx, qb.Select("count(*)").From(booksTableName).Where(where))
	if err != nil {
		return model.ListBooks{}, errors.Wrap(err, "count books")
	}
	q := qb.Select(bookColumns...).
		From(booksTableName).
		Where(where).
		OrderBy("created_at desc", "id desc").
		Limit(pager.Limit()).
		Offset(pager.Offset())
	books, err := selectAll[model.Book](ctx, r.db, q)
	if err != nil {
		return model.ListBooks{}, errors.Wrap(err, "list books")
	}
	return model.ListBooks{Records: books, Paging: pager.Paging(total)}, nil
}

func (r *repository) CreateBook(ctx context.Context, b model.BookCreate) (model.Book, error) {
	q := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "publisher", "publish_date", "category", "price", "stock_quantity", "description").
		Values(b.Title, b.Author, b.ISBN, b.Publisher, b.PublishDate, b.Category, b.Price, b.StockQuantity, b.Description).
		Suffix("returning " + columnList(bookColumns))
	created, err := selectOne[model.Book](ctx, r.db, q, errs.ErrBookNotFound)
	if err != nil {
		return model.Book{}, bookConflict(err)
	}
	return created, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int64, patch model.BookUpdate) (model.Book, error) {
	set := patch.Apply()
	if len(set) == 0 {
		return model.Book{}, errs.ErrNothingToUpdate
	}
	set["updated_at"] = sq.Expr("now()")
	q := qb.Update(booksTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + columnList(bookColumns))
	updated, err := selectOne[model.Book](ctx, r.db, q, errs.ErrBookNotFound)
	if err != nil {
		return model.Book{}, bookConflict(err)
	}
	return updated, nil
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	n, err := r.exec(ctx, qb.Delete(booksTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrBookNotFound
	}
	return nil
}

func (r *repository) CountBooks(ctx context.Context, ids []int64) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(booksTableName).Where(sq.Eq{"id": ids}))
}

func (r *repository) DeleteBooks(ctx context.Context, ids []int64) error {
	_, err := r.exec(ctx, qb.Delete(booksTableName).Where(sq.Eq{"id": ids}))
	return err
}

func (r *repository) distinct(ctx context.Context, column string) ([]string, error) {
	query, args, err := qb.Select(column).
		Distinct().
		From(booksTableName).
		Where(sq.And{sq.NotEq{column: nil}, sq.NotEq{column: ""}}).
		OrderBy(column).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "category")
}

func (r *repository) Authors(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "author")
}

func (r *repository) AdjustStock(ctx context.Context, id int64, delta int) error {
	q := qb.Update(booksTableName).
		Set("stock_quantity", sq.Expr("stock_quantity + ?", delta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if delta < 0 {
		q = q.Where(sq.GtOrEq{"stock_quantity": -delta})
	}
	n, err := r.exec(ctx, q)
	if err != nil {
		return err
	}
	if n == 0 {
		if delta < 0 {
			return errs.ErrOutOfStock
		}
		return errs.ErrBookNotFound
	}
	return nil
}

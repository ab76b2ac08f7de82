package repository

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var userColumns = []string{
	"id", "username", "email", "hashed_password", "full_name", "phone",
	"is_active", "is_admin", "created_at", "updated_at",
}

func userConflict(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return err
	}
	switch constraint {
	case "users_username_key":
		return errs.ErrDuplicateUsername
	case "users_email_key":
		return errs.ErrDuplicateEmail
	}
	return err
}

func (r *repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	q := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": id})
	return selectOne[model.User](ctx, r.db, q, errs.ErrUserNotFound)
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	q := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"username": username})
	return selectOne[model.User](ctx, r.db, q, errs.ErrUserNotFound)
}

func (r *repository) LockUser(ctx context.Context, id int64) (model.User, error) {
	q := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update")
	return selectOne[model.User](ctx, r.db, q, errs.ErrUserNotFound)
}

func userWhere(f model.UserFilter) sq.And {
	where := sq.And{}
	if f.Username != "" {
		where = append(where, sq.ILike{"username": ilike(f.Username)})
	}
	if f.FullName != "" {
		where = append(where, sq.ILike{"full_name": ilike(f.FullName)})
	}
	if f.Phone != "" {
		where = append(where, sq.ILike{"phone": ilike(f.Phone)})
	}
	if f.Email != "" {
		where = append(where, sq.ILike{"email": ilike(f.Email)})
	}
	if f.IsActive != nil {
		where = append(where, sq.Eq{"is_active": *f.IsActive})
	}
	if f.IsAdmin != nil {
		where = append(where, sq.Eq{"is_admin": *f.IsAdmin})
	}
	return where
}

func (r *repository) ListUsers(ctx context.Context, filter model.UserFilter, pager model.Pager) (model.ListUsers, error) {
	where := userWhere(filter)
	total, err := r.count(ctx, qb.Select("count(*)").From(usersTableName).Where(where))
	if err != nil {
		return model.ListUsers{}, errors.Wrap(err, "count users")
	}
	q := qb.Select(userColumns...).
		From(usersTableName).
		Where(where).
		OrderBy("created_at desc", "id desc").
		Limit(pager.Limit()).
		Offset(pager.Offset())
	users, err := selectAll[model.User](ctx, r.db, q)
	if err != nil {
		return model.ListUsers{}, errors.Wrap(err, "list users")
	}
	return model.ListUsers{Records: users, Paging: pager.Paging(total)}, nil
}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	q := qb.Insert(usersTableName).
		Columns("username", "email", "hashed_password", "full_name", "phone", "is_active", "is_admin").
		Values(user.Username, user.Email, user.HashedPassword, user.FullName, user.Phone, user.IsActive, user.IsAdmin).
		Suffix("returning " + columnList(userColumns))
	created, err := selectOne[model.User](ctx, r.db, q, errs.ErrUserNotFound)
	if err != nil {
		return model.User{}, userConflict(err)
	}
	return created, nil
}

func (r *repository) UpdateUser(ctx context.Context, id int64, patch model.UserUpdate) (model.User, error) {
	set := patch.Apply()
	if len(set) == 0 {
		return model.User{}, errs.ErrNothingToUpdate
	}
	set["updated_at"] = sq.Expr("now()")
	q := qb.Update(usersTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + columnList(userColumns))
	updated, err := selectOne[model.User](ctx, r.db, q, errs.ErrUserNotFound)
	if err != nil {
		return model.User{}, userConflict(err)
	}
	return updated, nil
}

func (r *repository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	n, err := r.exec(ctx, qb.Update(usersTableName).
		Set("hashed_password", hashedPassword).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func (r *repository) ToggleUserActive(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Update(usersTableName).
		Set("is_active", sq.Expr("not is_active")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("returning is_active").
		ToSql()
	if err != nil {
		return false, err
	}
	var active bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, errs.ErrUserNotFound
		}
		return false, err
	}
	return active, nil
}

func (r *repository) DeleteUser(ctx context.Context, id int64) error {
	n, err := r.exec(ctx, qb.Delete(usersTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func (r *repository) CountUsers(ctx context.Context, ids []int64) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(usersTableName).Where(sq.Eq{"id": ids}))
}

func (r *repository) DeleteUsers(ctx context.Context, ids []int64) error {
	_, err := r.exec(ctx, qb.Delete(usersTableName).Where(sq.Eq{"id": ids}))
	return err
}

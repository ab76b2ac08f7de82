package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/library-management/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"golang.org/x/sync/errgroup"
)

func countBorrows(where sq.Sqlizer) sq.SelectBuilder {
	return qb.Select("count(*)").From(borrowsTableName).Where(where)
}

func activeBorrows() sq.Eq {
	return sq.Eq{"status": string(model.BorrowStatusBorrowed)}
}

func overdueBorrows(now time.Time) sq.And {
	return sq.And{activeBorrows(), sq.Lt{"due_date": now}}
}

// countInto runs each query concurrently, storing the result in the paired destination.
func (r *repository) countInto(ctx context.Context, queries map[*int]sq.SelectBuilder) error {
	g, ctx := errgroup.WithContext(ctx)
	for dst, q := range queries {
		dst, q := dst, q
		g.Go(func() error {
			n, err := r.count(ctx, q)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	return g.Wait()
}

func (r *repository) BorrowStats(ctx context.Context, now, dayStart, dayEnd time.Time) (model.BorrowStats, error) {
	var stats model.BorrowStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.countInto(gctx, map[*int]sq.SelectBuilder{
			&stats.CurrentBorrows: countBorrows(activeBorrows()),
			&stats.OverdueBorrows: countBorrows(overdueBorrows(now)),
			&stats.TodayBorrows: countBorrows(sq.And{
				sq.GtOrEq{"borrow_date": dayStart}, sq.Lt{"borrow_date": dayEnd},
			}),
			&stats.TodayReturns: countBorrows(sq.And{
				sq.GtOrEq{"return_date": dayStart}, sq.Lt{"return_date": dayEnd},
			}),
		})
	})
	g.Go(func() error {
		query, args, err := qb.Select("coalesce(sum(fine_amount), 0)::float8").
			From(borrowsTableName).
			Where(sq.Gt{"fine_amount": 0}).
			ToSql()
		if err != nil {
			return err
		}
		return r.db.QueryRow(gctx, query, args...).Scan(&stats.TotalFines)
	})
	if err := g.Wait(); err != nil {
		return model.BorrowStats{}, err
	}
	return stats, nil
}

func (r *repository) UserStats(ctx context.Context, userID int64, now time.Time) (model.UserStats, error) {
	var stats model.UserStats
	own := sq.Eq{"user_id": userID}
	err := r.countInto(ctx, map[*int]sq.SelectBuilder{
		&stats.TotalBorrows:   countBorrows(own),
		&stats.ActiveBorrows:  countBorrows(sq.And{own, activeBorrows()}),
		&stats.OverdueBorrows: countBorrows(sq.And{own, overdueBorrows(now)}),
	})
	if err != nil {
		return model.UserStats{}, err
	}
	return stats, nil
}

func (r *repository) SiteStatistics(ctx context.Context, now time.Time) (model.SiteStatistics, error) {
	var stats model.SiteStatistics
	err := r.countInto(ctx, map[*int]sq.SelectBuilder{
		&stats.TotalUsers:     qb.Select("count(*)").From(usersTableName),
		&stats.TotalBooks:     qb.Select("count(*)").From(booksTableName),
		&stats.TotalBorrows:   qb.Select("count(*)").From(borrowsTableName),
		&stats.ActiveBorrows:  countBorrows(activeBorrows()),
		&stats.OverdueBorrows: countBorrows(overdueBorrows(now)),
	})
	if err != nil {
		return model.SiteStatistics{}, err
	}
	return stats, nil
}
